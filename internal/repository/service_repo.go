package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Finaxis002/FCOBackend/internal/domain"
	xerrors "github.com/Finaxis002/FCOBackend/pkg/xerrors"
)

// ServiceCatalogRepository holds the global list of services a case
// checklist can be assembled from.
type ServiceCatalogRepository interface {
	ListServices(ctx context.Context) ([]*domain.CatalogService, error)
	CreateService(ctx context.Context, s *domain.CatalogService) (*domain.CatalogService, error)
}

// RemarkRepository stores per-service remarks within a case.
type RemarkRepository interface {
	ListRemarks(ctx context.Context, caseID, serviceID string) ([]*domain.Remark, error)
	CreateRemark(ctx context.Context, r *domain.Remark) (*domain.Remark, error)
}

type pgServiceCatalogRepo struct {
	db *pgxpool.Pool
}

func NewServiceCatalogRepository(db *pgxpool.Pool) ServiceCatalogRepository {
	return &pgServiceCatalogRepo{db: db}
}

func (p *pgServiceCatalogRepo) ListServices(ctx context.Context) ([]*domain.CatalogService, error) {
	rows, err := p.db.Query(ctx, `SELECT id, name FROM service_catalog ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*domain.CatalogService
	for rows.Next() {
		var s domain.CatalogService
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		services = append(services, &s)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return services, nil
}

func (p *pgServiceCatalogRepo) CreateService(ctx context.Context, s *domain.CatalogService) (*domain.CatalogService, error) {
	query := `
		INSERT INTO service_catalog (id, name)
		VALUES ($1, $2)
		RETURNING id, name
	`

	var created domain.CatalogService
	err := p.db.QueryRow(ctx, query, s.ID, s.Name).Scan(&created.ID, &created.Name)
	if err != nil {
		// Unique index on LOWER(name) makes duplicates case-insensitive.
		if xerrors.ParsePGErrorCode(err) == "23505" {
			return nil, xerrors.ErrServiceExists
		}
		return nil, err
	}
	return &created, nil
}

type pgRemarkRepo struct {
	db *pgxpool.Pool
}

func NewRemarkRepository(db *pgxpool.Pool) RemarkRepository {
	return &pgRemarkRepo{db: db}
}

func (p *pgRemarkRepo) ListRemarks(ctx context.Context, caseID, serviceID string) ([]*domain.Remark, error) {
	query := `
		SELECT id, case_id, service_id, user_id, user_name, remark, created_at
		FROM remarks
		WHERE case_id = $1 AND service_id = $2
		ORDER BY created_at DESC
	`

	rows, err := p.db.Query(ctx, query, caseID, serviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var remarks []*domain.Remark
	for rows.Next() {
		var r domain.Remark
		err := rows.Scan(&r.ID, &r.CaseID, &r.ServiceID, &r.UserID, &r.UserName, &r.Remark, &r.CreatedAt)
		if err != nil {
			return nil, err
		}
		remarks = append(remarks, &r)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return remarks, nil
}

func (p *pgRemarkRepo) CreateRemark(ctx context.Context, r *domain.Remark) (*domain.Remark, error) {
	query := `
		INSERT INTO remarks (id, case_id, service_id, user_id, user_name, remark, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, case_id, service_id, user_id, user_name, remark, created_at
	`

	var created domain.Remark
	err := p.db.QueryRow(ctx, query,
		r.ID, r.CaseID, r.ServiceID, r.UserID, r.UserName, r.Remark, r.CreatedAt,
	).Scan(&created.ID, &created.CaseID, &created.ServiceID, &created.UserID, &created.UserName, &created.Remark, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}
