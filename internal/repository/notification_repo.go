package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Finaxis002/FCOBackend/internal/domain"
	xerrors "github.com/Finaxis002/FCOBackend/pkg/xerrors"
)

// NotificationRepository aggregates all notification DB operations.
type NotificationRepository interface {
	CreateNotification(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ListAll(ctx context.Context, limit int) ([]*domain.Notification, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Notification, error)
	MarkAsRead(ctx context.Context, id, userID string) (*domain.Notification, error)
	// DeleteNotification with empty userID deletes regardless of owner
	// (administrator path); otherwise it is owner-scoped.
	DeleteNotification(ctx context.Context, id, userID string) error
	DeleteAllByUser(ctx context.Context, userID string) error
	DeleteAll(ctx context.Context) error
}

type pgNotificationRepo struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) NotificationRepository {
	return &pgNotificationRepo{db: db}
}

const notificationColumns = `
	id, type, message, user_id, user_name, case_id, case_name,
	service_id, service_name, created_by, read, created_at
`

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var n domain.Notification
	err := row.Scan(
		&n.ID,
		&n.Type,
		&n.Message,
		&n.UserID,
		&n.UserName,
		&n.CaseID,
		&n.CaseName,
		&n.ServiceID,
		&n.ServiceName,
		&n.CreatedBy,
		&n.Read,
		&n.Timestamp,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (p *pgNotificationRepo) CreateNotification(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}

	query := `
		INSERT INTO notifications (
			id, type, message, user_id, user_name, case_id, case_name,
			service_id, service_name, created_by, read, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12
		)
		RETURNING ` + notificationColumns

	row := p.db.QueryRow(ctx, query,
		n.ID,
		n.Type,
		n.Message,
		n.UserID,
		n.UserName,
		n.CaseID,
		n.CaseName,
		n.ServiceID,
		n.ServiceName,
		n.CreatedBy,
		n.Read,
		n.Timestamp,
	)
	return scanNotification(row)
}

func (p *pgNotificationRepo) listQuery(ctx context.Context, query string, args ...interface{}) ([]*domain.Notification, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return notifications, nil
}

func (p *pgNotificationRepo) ListAll(ctx context.Context, limit int) ([]*domain.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		ORDER BY created_at DESC
		LIMIT $1
	`
	return p.listQuery(ctx, query, limit)
}

func (p *pgNotificationRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	return p.listQuery(ctx, query, userID, limit)
}

func (p *pgNotificationRepo) MarkAsRead(ctx context.Context, id, userID string) (*domain.Notification, error) {
	query := `
		UPDATE notifications
		SET read = TRUE
		WHERE id = $1 AND user_id = $2
		RETURNING ` + notificationColumns

	n, err := scanNotification(p.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

func (p *pgNotificationRepo) DeleteNotification(ctx context.Context, id, userID string) error {
	query := `DELETE FROM notifications WHERE id = $1`
	args := []interface{}{id}
	if userID != "" {
		query += ` AND user_id = $2`
		args = append(args, userID)
	}

	ct, err := p.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (p *pgNotificationRepo) DeleteAllByUser(ctx context.Context, userID string) error {
	_, err := p.db.Exec(ctx, `DELETE FROM notifications WHERE user_id = $1`, userID)
	return err
}

func (p *pgNotificationRepo) DeleteAll(ctx context.Context) error {
	_, err := p.db.Exec(ctx, `DELETE FROM notifications`)
	return err
}
