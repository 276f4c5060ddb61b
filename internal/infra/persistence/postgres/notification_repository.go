package postgres

import (
	"context"

	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/repository"
	"servicehub/internal/errors"
	"servicehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// Create persists a new unread notification.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// ListUnread returns the recipient's unread notifications, newest first.
func (repo *notificationRepository) ListUnread(ctx context.Context, recipient entity.PartyRef) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("recipient_kind = ? AND recipient_id = ?", string(recipient.Kind), recipient.ID).
		Where("read = ?", false).
		Order("created_at DESC").
		Order("id DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list unread notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// MarkRead flags the notification as read. The update matches already read rows too,
// so a repeated call for the recipient succeeds.
func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID, recipient entity.PartyRef) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND recipient_kind = ? AND recipient_id = ?", id, string(recipient.Kind), recipient.ID).
		Update("read", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification as read")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func fromNotificationDomain(n *entity.Notification) *model.NotificationModel {
	return &model.NotificationModel{
		ID:            n.ID,
		Message:       n.Message,
		SenderKind:    string(n.SentBy.Kind),
		SenderID:      n.SentBy.ID,
		RecipientKind: string(n.ReceivedBy.Kind),
		RecipientID:   n.ReceivedBy.ID,
		RelatedKind:   string(n.Related.Kind),
		RelatedID:     n.Related.ID,
		Read:          n.Read,
		CreatedAt:     n.CreatedAt,
	}
}

func toNotificationDomain(m *model.NotificationModel) *entity.Notification {
	return &entity.Notification{
		ID:         m.ID,
		Message:    m.Message,
		SentBy:     entity.NewPartyRef(entity.Role(m.SenderKind), m.SenderID),
		ReceivedBy: entity.NewPartyRef(entity.Role(m.RecipientKind), m.RecipientID),
		Related:    entity.EntityRef{Kind: entity.EntityKind(m.RelatedKind), ID: m.RelatedID},
		Read:       m.Read,
		CreatedAt:  m.CreatedAt,
	}
}
