package impl

import (
	"context"
	"testing"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	mockRepo "servicehub/internal/mocks/repository"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (usecase.NotificationUsecase, *mockRepo.MockNotificationRepository) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)

	return NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		Logger:           newDiscardLogger(),
	}), notificationRepo
}

func TestNotificationService_ListUnread(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t)
	consumer := newAccount(entity.RoleConsumer, "carl")
	ctx := context.Background()

	notificationRepo.EXPECT().ListUnread(ctx, consumer.Ref()).Return([]*entity.Notification{
		{ID: uuid.New(), ReceivedBy: consumer.Ref(), Message: "Order accepted"},
	}, nil)

	notifications, err := service.ListUnread(ctx, consumer.Principal())

	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Order accepted", notifications[0].Message)
}

func TestNotificationService_MarkRead(t *testing.T) {
	provider := newAccount(entity.RoleServiceProvider, "vera")
	id := uuid.New()

	t.Run("repeat succeeds", func(t *testing.T) {
		service, notificationRepo := createTestNotificationService(t)
		ctx := context.Background()

		notificationRepo.EXPECT().MarkRead(ctx, id, provider.Ref()).Return(nil).Twice()

		require.NoError(t, service.MarkRead(ctx, provider.Principal(), id))
		require.NoError(t, service.MarkRead(ctx, provider.Principal(), id))
	})

	t.Run("not addressed to recipient", func(t *testing.T) {
		service, notificationRepo := createTestNotificationService(t)
		ctx := context.Background()

		notificationRepo.EXPECT().MarkRead(ctx, id, provider.Ref()).Return(repository.ErrNotificationNotFound)

		err := service.MarkRead(ctx, provider.Principal(), id)

		assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		service, notificationRepo := createTestNotificationService(t)
		ctx := context.Background()
		storeErr := errors.New("connection reset")

		notificationRepo.EXPECT().MarkRead(ctx, id, provider.Ref()).Return(storeErr)

		err := service.MarkRead(ctx, provider.Principal(), id)

		assert.ErrorIs(t, err, storeErr)
	})
}
