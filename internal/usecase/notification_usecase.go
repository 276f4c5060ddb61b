package usecase

import (
	"context"

	"servicehub/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines in-app notification reads.
type NotificationUsecase interface {
	ListUnread(ctx context.Context, recipient entity.Principal) ([]*entity.Notification, error)
	// MarkRead is idempotent and only succeeds for the recipient's own notifications.
	MarkRead(ctx context.Context, recipient entity.Principal, id uuid.UUID) error
}
