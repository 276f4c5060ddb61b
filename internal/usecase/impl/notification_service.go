package impl

import (
	"context"
	"log/slog"

	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/errors"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

// ListUnread returns the recipient's unread notifications, newest first.
func (s *notificationService) ListUnread(ctx context.Context, recipient entity.Principal) ([]*entity.Notification, error) {
	notifications, err := s.notificationRepo.ListUnread(ctx, recipient.Ref())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list unread notifications")
	}

	return notifications, nil
}

// MarkRead flags one of the recipient's notifications as read. Repeating it succeeds.
func (s *notificationService) MarkRead(ctx context.Context, recipient entity.Principal, id uuid.UUID) error {
	err := s.notificationRepo.MarkRead(ctx, id, recipient.Ref())
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return domainerrors.ErrNotificationNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to mark notification as read")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Notification read", slog.Any("notificationID", id))

	return nil
}
