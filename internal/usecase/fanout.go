package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Finaxis002/FCOBackend/internal/domain"
	"github.com/Finaxis002/FCOBackend/internal/repository"
	"github.com/Finaxis002/FCOBackend/pkg/ws"
)

// NotificationContext carries the case/service identifiers every persisted
// notification embeds so it stays meaningful after the case is gone.
type NotificationContext struct {
	Type        domain.NotificationType
	CaseID      string
	CaseName    string
	ServiceID   string
	ServiceName string
	CreatedBy   string
}

// Fanout persists one notification per recipient per logical event and
// pushes each stored record to the recipient's live websocket connections.
// Sends are best effort: they run after the case mutation is committed,
// never roll it back, and individual failures are logged and swallowed.
type Fanout struct {
	notifications repository.NotificationRepository
	manager       *ws.Manager
	logger        *zap.Logger
}

func NewFanout(notifications repository.NotificationRepository, manager *ws.Manager, logger *zap.Logger) *Fanout {
	return &Fanout{
		notifications: notifications,
		manager:       manager,
		logger:        logger,
	}
}

// Notify sends message to the union of the assigned users and the
// administrators, deduplicated by recipient id. An empty message sends
// nothing at all. All recipients are attempted even when some writes fail;
// partial success is acceptable and logged per recipient.
func (f *Fanout) Notify(ctx context.Context, message string, recipients []domain.AssignedUserRef, admins []*domain.Admin, nc NotificationContext) {
	if message == "" {
		return
	}

	audience := make([]domain.AssignedUserRef, 0, len(recipients)+len(admins))
	seen := make(map[string]struct{}, len(recipients)+len(admins))
	for _, r := range recipients {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		audience = append(audience, r)
	}
	for _, a := range admins {
		if _, ok := seen[a.ID]; ok {
			continue
		}
		seen[a.ID] = struct{}{}
		audience = append(audience, domain.AssignedUserRef{ID: a.ID, Name: a.Name})
	}

	now := time.Now()

	var wg sync.WaitGroup
	for _, recipient := range audience {
		wg.Add(1)
		go func(r domain.AssignedUserRef) {
			defer wg.Done()

			created, err := f.notifications.CreateNotification(ctx, &domain.Notification{
				Type:        nc.Type,
				Message:     message,
				UserID:      r.ID,
				UserName:    r.Name,
				CaseID:      nc.CaseID,
				CaseName:    nc.CaseName,
				ServiceID:   nc.ServiceID,
				ServiceName: nc.ServiceName,
				CreatedBy:   nc.CreatedBy,
				Timestamp:   now,
			})
			if err != nil {
				f.logger.Error("failed to create notification",
					zap.String("recipient_id", r.ID),
					zap.String("case_id", nc.CaseID),
					zap.String("type", string(nc.Type)),
					zap.Error(err))
				return
			}
			f.manager.Send(r.ID, created)
		}(recipient)
	}
	wg.Wait()
}
