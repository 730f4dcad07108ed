package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Finaxis002/FCOBackend/internal/domain"
	xerrors "github.com/Finaxis002/FCOBackend/pkg/xerrors"
)

// UserRepository is the user directory. FindByIDs is the batch lookup the
// assignment resolver depends on; it must stay a single round trip.
type UserRepository interface {
	CreateUser(ctx context.Context, u *domain.User) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	GetUserByExternalID(ctx context.Context, externalID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, u *domain.User) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
	FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
}

// AdminRepository lists administrators, who are fanned-in on every case
// notification.
type AdminRepository interface {
	ListAdmins(ctx context.Context) ([]*domain.Admin, error)
}

type pgUserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &pgUserRepo{db: db}
}

const userColumns = `id, external_user_id, name, email, role, avatar_url, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.ExternalUserID,
		&u.Name,
		&u.Email,
		&u.Role,
		&u.AvatarURL,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (p *pgUserRepo) CreateUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, external_user_id, name, email, role, avatar_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	created, err := scanUser(p.db.QueryRow(ctx, query,
		u.ID, u.ExternalUserID, u.Name, u.Email, u.Role, u.AvatarURL, u.CreatedAt,
	))
	if err != nil {
		if xerrors.ParsePGErrorCode(err) == "23505" {
			return nil, xerrors.ErrUserAlreadyExists
		}
		return nil, err
	}
	return created, nil
}

func (p *pgUserRepo) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (p *pgUserRepo) GetUserByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE external_user_id = $1`

	u, err := scanUser(p.db.QueryRow(ctx, query, externalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (p *pgUserRepo) ListUsers(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return users, nil
}

func (p *pgUserRepo) UpdateUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	query := `
		UPDATE users SET external_user_id = $2, name = $3, email = $4, role = $5
		WHERE id = $1
		RETURNING ` + userColumns

	updated, err := scanUser(p.db.QueryRow(ctx, query,
		u.ID, u.ExternalUserID, u.Name, u.Email, u.Role,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrUserNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (p *pgUserRepo) DeleteUser(ctx context.Context, id string) error {
	ct, err := p.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return xerrors.ErrUserNotFound
	}
	return nil
}

// FindByIDs fetches the full identifier set in one query. Missing ids are
// simply absent from the result; callers degrade them to placeholders.
func (p *pgUserRepo) FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1)`

	rows, err := p.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return users, nil
}

type pgAdminRepo struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) AdminRepository {
	return &pgAdminRepo{db: db}
}

func (p *pgAdminRepo) ListAdmins(ctx context.Context) ([]*domain.Admin, error) {
	rows, err := p.db.Query(ctx, `SELECT id, name FROM admins`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []*domain.Admin
	for rows.Next() {
		var a domain.Admin
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		admins = append(admins, &a)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return admins, nil
}
