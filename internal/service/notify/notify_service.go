package notify

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pmajay/portal/internal/domain"
	"github.com/pmajay/portal/internal/domain/dto"
	"github.com/pmajay/portal/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// Dispatch creates a notification as Sent, or Scheduled when the form asked
// for it. Audience is a role name or "all".
func (svc *Service) Dispatch(ctx context.Context, session *domain.Session, request *dto.CreateNotificationRequest) (*domain.Notification, error) {
	if request.Audience != "all" {
		if _, ok := domain.ParseRole(request.Audience); !ok {
			return nil, fmt.Errorf("unknown audience %q", request.Audience)
		}
	}

	status := domain.NotificationSent
	if request.Schedule {
		status = domain.NotificationScheduled
	}

	n := &domain.Notification{
		ID:        uuid.New(),
		Title:     request.Title,
		Message:   request.Message,
		Audience:  request.Audience,
		Priority:  domain.NotificationPriority(request.Priority),
		Status:    status,
		CreatedBy: session.UserID(),
	}

	if err := svc.store.InsertNotification(ctx, n); err != nil {
		return nil, fmt.Errorf("store.InsertNotification: %w", err)
	}

	return n, nil
}

func (svc *Service) List(ctx context.Context, audience string) ([]*domain.Notification, error) {
	return svc.store.ListNotifications(ctx, audience)
}

// Deactivate is allowed from any status.
func (svc *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	return svc.store.DeactivateNotification(ctx, id)
}
