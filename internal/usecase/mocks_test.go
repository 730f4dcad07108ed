package usecase

import (
	"context"
	"sync"

	"github.com/Finaxis002/FCOBackend/internal/domain"
	xerrors "github.com/Finaxis002/FCOBackend/pkg/xerrors"
)

// --- Mock repositories ---

type mockUserRepo struct {
	findByIDsFn func(ctx context.Context, ids []string) ([]*domain.User, error)
	calls       int
}

func (m *mockUserRepo) FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error) {
	m.calls++
	if m.findByIDsFn != nil {
		return m.findByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepo) CreateUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return nil, xerrors.ErrUserNotFound
}

func (m *mockUserRepo) GetUserByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	return nil, xerrors.ErrUserNotFound
}

func (m *mockUserRepo) ListUsers(ctx context.Context) ([]*domain.User, error) { return nil, nil }

func (m *mockUserRepo) UpdateUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (m *mockUserRepo) DeleteUser(ctx context.Context, id string) error { return nil }

type mockCaseRepo struct {
	getByIDFn func(ctx context.Context, id string) (*domain.Case, error)
	updateFn  func(ctx context.Context, c *domain.Case) (*domain.Case, error)
	createFn  func(ctx context.Context, c *domain.Case) (*domain.Case, error)
	deleteFn  func(ctx context.Context, id string) (*domain.Case, error)
}

func (m *mockCaseRepo) CreateCase(ctx context.Context, c *domain.Case) (*domain.Case, error) {
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	return c, nil
}

func (m *mockCaseRepo) GetCaseByID(ctx context.Context, id string) (*domain.Case, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, xerrors.ErrCaseNotFound
}

func (m *mockCaseRepo) ListCases(ctx context.Context) ([]*domain.Case, error) { return nil, nil }

func (m *mockCaseRepo) UpdateCase(ctx context.Context, c *domain.Case) (*domain.Case, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, c)
	}
	return c, nil
}

func (m *mockCaseRepo) DeleteCase(ctx context.Context, id string) (*domain.Case, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil, xerrors.ErrCaseNotFound
}

type mockAdminRepo struct {
	admins []*domain.Admin
	err    error
}

func (m *mockAdminRepo) ListAdmins(ctx context.Context) ([]*domain.Admin, error) {
	return m.admins, m.err
}

// mockNotificationRepo records every created notification; creation may run
// from concurrent fan-out goroutines.
type mockNotificationRepo struct {
	mu       sync.Mutex
	created  []*domain.Notification
	createFn func(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

func (m *mockNotificationRepo) CreateNotification(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	if m.createFn != nil {
		created, err := m.createFn(ctx, n)
		if err != nil {
			return nil, err
		}
		n = created
	}
	m.mu.Lock()
	m.created = append(m.created, n)
	m.mu.Unlock()
	return n, nil
}

func (m *mockNotificationRepo) all() []*domain.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Notification, len(m.created))
	copy(out, m.created)
	return out
}

func (m *mockNotificationRepo) ListAll(ctx context.Context, limit int) ([]*domain.Notification, error) {
	return m.all(), nil
}

func (m *mockNotificationRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Notification, error) {
	var out []*domain.Notification
	for _, n := range m.all() {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *mockNotificationRepo) MarkAsRead(ctx context.Context, id, userID string) (*domain.Notification, error) {
	return nil, xerrors.ErrNotFound
}

func (m *mockNotificationRepo) DeleteNotification(ctx context.Context, id, userID string) error {
	return xerrors.ErrNotFound
}

func (m *mockNotificationRepo) DeleteAllByUser(ctx context.Context, userID string) error { return nil }

func (m *mockNotificationRepo) DeleteAll(ctx context.Context) error { return nil }
