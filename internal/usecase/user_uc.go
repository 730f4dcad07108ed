package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Finaxis002/FCOBackend/internal/domain"
	"github.com/Finaxis002/FCOBackend/internal/repository"
	xerrors "github.com/Finaxis002/FCOBackend/pkg/xerrors"
)

// UserUsecase is plain directory CRUD. Credentials live in the auth
// gateway; this service only keeps the directory fields notifications and
// assignment resolution need.
type UserUsecase struct {
	repo repository.UserRepository
}

func NewUserUsecase(repo repository.UserRepository) *UserUsecase {
	return &UserUsecase{repo: repo}
}

func (uc *UserUsecase) CreateUser(ctx context.Context, in *domain.User) (*domain.User, error) {
	if in.ExternalUserID == "" || strings.TrimSpace(in.Name) == "" {
		return nil, xerrors.ErrUserIDRequired
	}

	in.ID = uuid.New().String()
	in.CreatedAt = time.Now()
	if in.AvatarURL == "" {
		in.AvatarURL = fmt.Sprintf("https://api.dicebear.com/7.x/initials/svg?seed=%s", in.Name)
	}
	return uc.repo.CreateUser(ctx, in)
}

func (uc *UserUsecase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return uc.repo.GetUserByID(ctx, id)
}

func (uc *UserUsecase) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return uc.repo.ListUsers(ctx)
}

func (uc *UserUsecase) UpdateUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	return uc.repo.UpdateUser(ctx, u)
}

func (uc *UserUsecase) DeleteUser(ctx context.Context, id string) error {
	return uc.repo.DeleteUser(ctx, id)
}
