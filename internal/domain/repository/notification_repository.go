package repository

import (
	"context"
	"errors"

	"servicehub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when no notification with the id is addressed to the recipient.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// Create persists a new unread notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// ListUnread returns the recipient's unread notifications, newest first.
	ListUnread(ctx context.Context, recipient entity.PartyRef) ([]*entity.Notification, error)

	// MarkRead flags the notification as read. Marking an already read notification succeeds.
	MarkRead(ctx context.Context, id uuid.UUID, recipient entity.PartyRef) error
}
