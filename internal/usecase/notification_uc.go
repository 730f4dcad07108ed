package usecase

import (
	"context"

	"github.com/Finaxis002/FCOBackend/internal/domain"
	"github.com/Finaxis002/FCOBackend/internal/repository"
)

const defaultNotificationLimit = 100

// NotificationUsecase serves the recipient-facing notification API.
// Administrators see the whole feed, everyone else only their own rows.
type NotificationUsecase struct {
	repo repository.NotificationRepository
}

func NewNotificationUsecase(repo repository.NotificationRepository) *NotificationUsecase {
	return &NotificationUsecase{repo: repo}
}

func (uc *NotificationUsecase) ListNotifications(ctx context.Context, userID string, isAdmin bool, limit int) ([]*domain.Notification, error) {
	if limit <= 0 || limit > defaultNotificationLimit {
		limit = defaultNotificationLimit
	}
	if isAdmin {
		return uc.repo.ListAll(ctx, limit)
	}
	return uc.repo.ListByUser(ctx, userID, limit)
}

func (uc *NotificationUsecase) MarkAsRead(ctx context.Context, id, userID string) (*domain.Notification, error) {
	return uc.repo.MarkAsRead(ctx, id, userID)
}

func (uc *NotificationUsecase) DeleteNotification(ctx context.Context, id, userID string, isAdmin bool) error {
	if isAdmin {
		return uc.repo.DeleteNotification(ctx, id, "")
	}
	return uc.repo.DeleteNotification(ctx, id, userID)
}

func (uc *NotificationUsecase) DeleteAll(ctx context.Context, userID string, isAdmin bool) error {
	if isAdmin {
		return uc.repo.DeleteAll(ctx)
	}
	return uc.repo.DeleteAllByUser(ctx, userID)
}
