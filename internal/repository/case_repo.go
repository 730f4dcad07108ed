package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Finaxis002/FCOBackend/internal/domain"
	xerrors "github.com/Finaxis002/FCOBackend/pkg/xerrors"
)

// CaseRepository aggregates all case DB operations.
type CaseRepository interface {
	CreateCase(ctx context.Context, c *domain.Case) (*domain.Case, error)
	GetCaseByID(ctx context.Context, id string) (*domain.Case, error)
	ListCases(ctx context.Context) ([]*domain.Case, error)
	// UpdateCase replaces the stored case with the merged state in a single
	// statement; the orchestrator relies on this being atomic.
	UpdateCase(ctx context.Context, c *domain.Case) (*domain.Case, error)
	DeleteCase(ctx context.Context, id string) (*domain.Case, error)
}

type pgCaseRepo struct {
	db *pgxpool.Pool
}

func NewCaseRepository(db *pgxpool.Pool) CaseRepository {
	return &pgCaseRepo{db: db}
}

const caseColumns = `
	id, sr_no, owner_name, client_name, unit_name, franchise_address,
	promoters, authorized_person, services, status, overall_status,
	overall_completion_percentage, assigned_users, reason_for_status,
	created_at, last_update
`

func scanCase(row pgx.Row) (*domain.Case, error) {
	var c domain.Case
	err := row.Scan(
		&c.ID,
		&c.SrNo,
		&c.OwnerName,
		&c.ClientName,
		&c.UnitName,
		&c.FranchiseAddress,
		&c.Promoters,
		&c.AuthorizedPerson,
		&c.Services,
		&c.Status,
		&c.OverallStatus,
		&c.OverallCompletionPercentage,
		&c.AssignedUsers,
		&c.ReasonForStatus,
		&c.CreatedAt,
		&c.LastUpdate,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (p *pgCaseRepo) CreateCase(ctx context.Context, c *domain.Case) (*domain.Case, error) {
	query := `
		INSERT INTO cases (
			id, sr_no, owner_name, client_name, unit_name, franchise_address,
			promoters, authorized_person, services, status, overall_status,
			overall_completion_percentage, assigned_users, reason_for_status,
			created_at, last_update
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11,
			$12, $13, $14,
			$15, $16
		)
		RETURNING ` + caseColumns

	row := p.db.QueryRow(ctx, query,
		c.ID,
		c.SrNo,
		c.OwnerName,
		c.ClientName,
		c.UnitName,
		c.FranchiseAddress,
		c.Promoters,
		c.AuthorizedPerson,
		c.Services,
		c.Status,
		c.OverallStatus,
		c.OverallCompletionPercentage,
		c.AssignedUsers,
		c.ReasonForStatus,
		c.CreatedAt,
		c.LastUpdate,
	)
	return scanCase(row)
}

func (p *pgCaseRepo) GetCaseByID(ctx context.Context, id string) (*domain.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases WHERE id = $1`

	c, err := scanCase(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrCaseNotFound
		}
		return nil, err
	}
	return c, nil
}

func (p *pgCaseRepo) ListCases(ctx context.Context) ([]*domain.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases ORDER BY last_update DESC`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cases []*domain.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return cases, nil
}

func (p *pgCaseRepo) UpdateCase(ctx context.Context, c *domain.Case) (*domain.Case, error) {
	query := `
		UPDATE cases SET
			sr_no = $2,
			owner_name = $3,
			client_name = $4,
			unit_name = $5,
			franchise_address = $6,
			promoters = $7,
			authorized_person = $8,
			services = $9,
			status = $10,
			overall_status = $11,
			overall_completion_percentage = $12,
			assigned_users = $13,
			reason_for_status = $14,
			last_update = $15
		WHERE id = $1
		RETURNING ` + caseColumns

	row := p.db.QueryRow(ctx, query,
		c.ID,
		c.SrNo,
		c.OwnerName,
		c.ClientName,
		c.UnitName,
		c.FranchiseAddress,
		c.Promoters,
		c.AuthorizedPerson,
		c.Services,
		c.Status,
		c.OverallStatus,
		c.OverallCompletionPercentage,
		c.AssignedUsers,
		c.ReasonForStatus,
		c.LastUpdate,
	)

	updated, err := scanCase(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrCaseNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (p *pgCaseRepo) DeleteCase(ctx context.Context, id string) (*domain.Case, error) {
	query := `DELETE FROM cases WHERE id = $1 RETURNING ` + caseColumns

	deleted, err := scanCase(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrCaseNotFound
		}
		return nil, err
	}
	return deleted, nil
}
