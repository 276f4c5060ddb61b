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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type disputeServiceFixtures struct {
	service     usecase.DisputeUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	orderRepo   *mockRepo.MockOrderRepository
	disputeRepo *mockRepo.MockDisputeRepository
	metrics     *recordingMetrics
}

func createTestDisputeService(t *testing.T) disputeServiceFixtures {
	fx := disputeServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		disputeRepo: mockRepo.NewMockDisputeRepository(t),
		metrics:     &recordingMetrics{},
	}

	fx.service = NewDisputeService(DisputeServiceParams{
		TxManager:   fx.txManager,
		AccountRepo: fx.accountRepo,
		OrderRepo:   fx.orderRepo,
		DisputeRepo: fx.disputeRepo,
		Metrics:     fx.metrics,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestDisputeService_File_Success(t *testing.T) {
	fx := createTestDisputeService(t)
	consumer := newAccount(entity.RoleConsumer, "carl")
	provider := newAccount(entity.RoleServiceProvider, "vera")
	order := &entity.ServiceOrder{ID: uuid.New(), ConsumerID: consumer.ID, ProviderID: provider.ID}

	ctx := context.Background()
	scope := repository.ClaimScope{FiledBy: consumer.ID, FiledAgainst: provider.ID, OrderID: &order.ID}

	fx.accountRepo.EXPECT().FindByID(ctx, entity.RoleServiceProvider, provider.ID).Return(provider, nil)
	fx.orderRepo.EXPECT().FindForParty(ctx, order.ID, consumer.Ref()).Return(order, nil)
	fx.disputeRepo.EXPECT().ExistsPending(ctx, scope).Return(false, nil)
	fx.disputeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Dispute")).
		Run(func(_ context.Context, dispute *entity.Dispute) {
			dispute.ID = uuid.New()
		}).
		Return(nil)

	dispute, err := fx.service.File(ctx, consumer.Principal(), usecase.FileDisputeInput{
		ProviderID: provider.ID,
		Title:      "  Late arrival ",
		Details:    "The provider arrived three hours late.",
		OrderID:    &order.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, "Late arrival", dispute.Title)
	assert.Equal(t, entity.DisputeStatusPending, dispute.Status)
	assert.Equal(t, provider.ID, dispute.FiledAgainst)
}

func TestDisputeService_File_PendingExists(t *testing.T) {
	fx := createTestDisputeService(t)
	consumer := newAccount(entity.RoleConsumer, "carl")
	provider := newAccount(entity.RoleServiceProvider, "vera")

	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByID(ctx, entity.RoleServiceProvider, provider.ID).Return(provider, nil)
	fx.disputeRepo.EXPECT().
		ExistsPending(ctx, repository.ClaimScope{FiledBy: consumer.ID, FiledAgainst: provider.ID}).
		Return(true, nil)

	_, err := fx.service.File(ctx, consumer.Principal(), usecase.FileDisputeInput{
		ProviderID: provider.ID,
		Title:      "Broken tap",
		Details:    "The tap still leaks.",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPendingDisputeExists)
}

func TestDisputeService_File_OrderOfAnotherProvider(t *testing.T) {
	fx := createTestDisputeService(t)
	consumer := newAccount(entity.RoleConsumer, "carl")
	provider := newAccount(entity.RoleServiceProvider, "vera")
	order := &entity.ServiceOrder{ID: uuid.New(), ConsumerID: consumer.ID, ProviderID: uuid.New()}

	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByID(ctx, entity.RoleServiceProvider, provider.ID).Return(provider, nil)
	fx.orderRepo.EXPECT().FindForParty(ctx, order.ID, consumer.Ref()).Return(order, nil)

	_, err := fx.service.File(ctx, consumer.Principal(), usecase.FileDisputeInput{
		ProviderID: provider.ID,
		Title:      "Broken tap",
		Details:    "The tap still leaks.",
		OrderID:    &order.ID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestDisputeService_File_Validation(t *testing.T) {
	fx := createTestDisputeService(t)
	consumer := newAccount(entity.RoleConsumer, "carl")

	tests := []struct {
		name  string
		input usecase.FileDisputeInput
	}{
		{name: "short title", input: usecase.FileDisputeInput{Title: "ab", Details: "long enough"}},
		{name: "short details", input: usecase.FileDisputeInput{Title: "Valid", Details: "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.File(context.Background(), consumer.Principal(), tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestDisputeService_Resolve_NotifiesFiler(t *testing.T) {
	fx := createTestDisputeService(t)
	consumer := newAccount(entity.RoleConsumer, "carl")
	admin := newAccount(entity.RoleAdmin, "ada")
	disputeID := uuid.New()

	var captured *capturedFanout
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		disputeRepo := mockRepo.NewMockDisputeRepository(t)
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().NewDisputeRepository().Return(disputeRepo)
		factory.EXPECT().NewAccountRepository().Return(accountRepo)

		disputeRepo.EXPECT().
			Resolve(mock.Anything, mock.MatchedBy(func(r repository.DisputeResolution) bool {
				return r.ID == disputeID && r.Status == entity.DisputeStatusResolved &&
					r.Resolution == "Refund issued" && r.AdminID == admin.ID
			})).
			Return(&entity.Dispute{
				ID:         disputeID,
				Title:      "Late arrival",
				Details:    "Three hours late",
				FiledBy:    consumer.ID,
				Status:     entity.DisputeStatusResolved,
				Resolution: "Refund issued",
			}, nil)
		accountRepo.EXPECT().FindByID(mock.Anything, entity.RoleConsumer, consumer.ID).Return(consumer, nil)
		accountRepo.EXPECT().FindByID(mock.Anything, entity.RoleAdmin, admin.ID).Return(admin, nil)

		captured = expectFanout(t, factory)
	})

	dispute, err := fx.service.Resolve(context.Background(), admin.Principal(), disputeID, " Refund issued ")

	require.NoError(t, err)
	assert.Equal(t, entity.DisputeStatusResolved, dispute.Status)

	require.Len(t, captured.notifications, 1)
	assert.Equal(t, consumer.Ref(), captured.notifications[0].ReceivedBy)
	assert.Equal(t, admin.Ref(), captured.notifications[0].SentBy)

	job := captured.emailJob(t)
	assert.Equal(t, "Dispute Information", job.Subject)
	assert.Equal(t, "Dispute Resolved By", job.ActionLabel)
	assert.Equal(t, "ada", job.ActionBy)
	assert.Contains(t, job.Fields, entity.EmailField{Label: "Dispute Resolution", Value: "Refund issued"})
	assert.Equal(t, []string{"dispute"}, fx.metrics.fanouts)
}

func TestDisputeService_Resolve_RequiresResolution(t *testing.T) {
	fx := createTestDisputeService(t)

	_, err := fx.service.Resolve(context.Background(), newAccount(entity.RoleAdmin, "ada").Principal(), uuid.New(), "  ")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDisputeService_Reject_SecondSettlementConflicts(t *testing.T) {
	fx := createTestDisputeService(t)
	admin := newAccount(entity.RoleAdmin, "ada")
	disputeID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		disputeRepo := mockRepo.NewMockDisputeRepository(t)
		factory.EXPECT().NewDisputeRepository().Return(disputeRepo)

		disputeRepo.EXPECT().Resolve(mock.Anything, mock.Anything).Return(nil, repository.ErrDisputeNotPending)
	})

	_, err := fx.service.Reject(context.Background(), admin.Principal(), disputeID)

	assert.ErrorIs(t, err, domainerrors.ErrDisputeAlreadyClosed)
	assert.Empty(t, fx.metrics.fanouts)
}

func TestDisputeService_Delete(t *testing.T) {
	fx := createTestDisputeService(t)
	consumer := newAccount(entity.RoleConsumer, "carl")
	ctx := context.Background()
	ownID, foreignID := uuid.New(), uuid.New()

	fx.disputeRepo.EXPECT().DeleteByFiler(ctx, ownID, consumer.ID).Return(nil)
	fx.disputeRepo.EXPECT().DeleteByFiler(ctx, foreignID, consumer.ID).Return(repository.ErrDisputeNotFound)

	require.NoError(t, fx.service.Delete(ctx, consumer.Principal(), ownID))
	assert.ErrorIs(t, fx.service.Delete(ctx, consumer.Principal(), foreignID), domainerrors.ErrDisputeNotFound)
}

func TestDisputeService_ListAll_StatusFilter(t *testing.T) {
	fx := createTestDisputeService(t)
	ctx := context.Background()

	pending := entity.DisputeStatusPending
	fx.disputeRepo.EXPECT().List(ctx, &pending).Return([]*entity.Dispute{{ID: uuid.New()}}, nil)

	disputes, err := fx.service.ListAll(ctx, &pending)
	require.NoError(t, err)
	assert.Len(t, disputes, 1)

	unknown := entity.DisputeStatus("archived")
	_, err = fx.service.ListAll(ctx, &unknown)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}
