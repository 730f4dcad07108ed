package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Finaxis002/FCOBackend/internal/domain"
	"github.com/Finaxis002/FCOBackend/internal/repository"
	xerrors "github.com/Finaxis002/FCOBackend/pkg/xerrors"
)

// ServiceUsecase covers the global service catalog and per-service remarks.
type ServiceUsecase struct {
	catalog repository.ServiceCatalogRepository
	remarks repository.RemarkRepository
}

func NewServiceUsecase(catalog repository.ServiceCatalogRepository, remarks repository.RemarkRepository) *ServiceUsecase {
	return &ServiceUsecase{catalog: catalog, remarks: remarks}
}

func (uc *ServiceUsecase) ListServices(ctx context.Context) ([]*domain.CatalogService, error) {
	return uc.catalog.ListServices(ctx)
}

func (uc *ServiceUsecase) CreateService(ctx context.Context, name string) (*domain.CatalogService, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, xerrors.ErrServiceNameRequired
	}
	return uc.catalog.CreateService(ctx, &domain.CatalogService{
		ID:   uuid.New().String(),
		Name: name,
	})
}

func (uc *ServiceUsecase) ListRemarks(ctx context.Context, caseID, serviceID string) ([]*domain.Remark, error) {
	return uc.remarks.ListRemarks(ctx, caseID, serviceID)
}

func (uc *ServiceUsecase) CreateRemark(ctx context.Context, r *domain.Remark) (*domain.Remark, error) {
	if r.Remark == "" || r.UserID == "" || r.UserName == "" {
		return nil, xerrors.ErrRemarkFields
	}
	r.ID = uuid.New().String()
	r.CreatedAt = time.Now()
	return uc.remarks.CreateRemark(ctx, r)
}
