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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type refundServiceFixtures struct {
	service     usecase.RefundUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	orderRepo   *mockRepo.MockOrderRepository
	refundRepo  *mockRepo.MockRefundRepository
	metrics     *recordingMetrics
}

func createTestRefundService(t *testing.T) refundServiceFixtures {
	fx := refundServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		refundRepo:  mockRepo.NewMockRefundRepository(t),
		metrics:     &recordingMetrics{},
	}

	fx.service = NewRefundService(RefundServiceParams{
		TxManager:   fx.txManager,
		AccountRepo: fx.accountRepo,
		OrderRepo:   fx.orderRepo,
		RefundRepo:  fx.refundRepo,
		Metrics:     fx.metrics,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestRefundService_Submit_DefaultsToFixedAmount(t *testing.T) {
	fx := createTestRefundService(t)
	consumer := newAccount(entity.RoleConsumer, "carl")
	provider := newAccount(entity.RoleServiceProvider, "vera")

	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByID(ctx, entity.RoleServiceProvider, provider.ID).Return(provider, nil)
	fx.refundRepo.EXPECT().
		ExistsPending(ctx, repository.ClaimScope{FiledBy: consumer.ID, FiledAgainst: provider.ID}).
		Return(false, nil)
	fx.refundRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.RefundRequest")).Return(nil)

	refund, err := fx.service.Submit(ctx, consumer.Principal(), usecase.SubmitRefundInput{
		ProviderID: provider.ID,
		Amount:     decimal.RequireFromString("25.50"),
		Details:    "Half the job was skipped",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RefundAmountFixed, refund.AmountType)
	assert.Equal(t, entity.RefundStatusPending, refund.Status)
	assert.True(t, refund.Amount.Equal(decimal.RequireFromString("25.5")))
}

func TestRefundService_Submit_PendingExists(t *testing.T) {
	fx := createTestRefundService(t)
	consumer := newAccount(entity.RoleConsumer, "carl")
	provider := newAccount(entity.RoleServiceProvider, "vera")

	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByID(ctx, entity.RoleServiceProvider, provider.ID).Return(provider, nil)
	fx.refundRepo.EXPECT().ExistsPending(ctx, mock.Anything).Return(true, nil)

	_, err := fx.service.Submit(ctx, consumer.Principal(), usecase.SubmitRefundInput{
		ProviderID: provider.ID,
		Amount:     decimal.NewFromInt(10),
		Details:    "Broken vase",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPendingRefundExists)
}

func TestRefundService_Submit_InvalidAmount(t *testing.T) {
	fx := createTestRefundService(t)
	consumer := newAccount(entity.RoleConsumer, "carl")

	tests := []struct {
		name       string
		amount     decimal.Decimal
		amountType entity.RefundAmountType
	}{
		{name: "zero", amount: decimal.Zero, amountType: entity.RefundAmountFixed},
		{name: "negative", amount: decimal.NewFromInt(-5), amountType: entity.RefundAmountFixed},
		{name: "percentage above 100", amount: decimal.NewFromInt(101), amountType: entity.RefundAmountPercentage},
		{name: "unknown type", amount: decimal.NewFromInt(5), amountType: "credits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Submit(context.Background(), consumer.Principal(), usecase.SubmitRefundInput{
				ProviderID: uuid.New(),
				Amount:     tt.amount,
				AmountType: tt.amountType,
				Details:    "details",
			})

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestRefundService_Approve_NotifiesConsumer(t *testing.T) {
	fx := createTestRefundService(t)
	consumer := newAccount(entity.RoleConsumer, "carl")
	admin := newAccount(entity.RoleAdmin, "ada")
	refundID := uuid.New()

	var captured *capturedFanout
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		refundRepo := mockRepo.NewMockRefundRepository(t)
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().NewRefundRepository().Return(refundRepo)
		factory.EXPECT().NewAccountRepository().Return(accountRepo)

		refundRepo.EXPECT().
			Resolve(mock.Anything, mock.MatchedBy(func(r repository.RefundResolution) bool {
				return r.ID == refundID && r.Status == entity.RefundStatusApproved && r.AdminID == admin.ID
			})).
			Return(&entity.RefundRequest{
				ID:          refundID,
				RequestedBy: consumer.ID,
				Amount:      decimal.NewFromInt(40),
				AmountType:  entity.RefundAmountPercentage,
				Details:     "Partial work",
				Status:      entity.RefundStatusApproved,
			}, nil)
		accountRepo.EXPECT().FindByID(mock.Anything, entity.RoleConsumer, consumer.ID).Return(consumer, nil)
		accountRepo.EXPECT().FindByID(mock.Anything, entity.RoleAdmin, admin.ID).Return(admin, nil)

		captured = expectFanout(t, factory)
	})

	refund, err := fx.service.Approve(context.Background(), admin.Principal(), refundID)

	require.NoError(t, err)
	assert.Equal(t, entity.RefundStatusApproved, refund.Status)

	job := captured.emailJob(t)
	assert.Equal(t, consumer.Email, job.To)
	assert.Equal(t, "Refund Information", job.Subject)
	assert.Equal(t, "Request Approved By", job.ActionLabel)
	assert.Contains(t, job.Fields, entity.EmailField{Label: "Refund Amount", Value: "40%"})
	assert.Equal(t, "refund.approved", captured.lifecycleEvent(t).Type)
}

func TestRefundService_Reject_AlreadySettled(t *testing.T) {
	fx := createTestRefundService(t)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		refundRepo := mockRepo.NewMockRefundRepository(t)
		factory.EXPECT().NewRefundRepository().Return(refundRepo)

		refundRepo.EXPECT().Resolve(mock.Anything, mock.Anything).Return(nil, repository.ErrRefundNotPending)
	})

	_, err := fx.service.Reject(context.Background(), newAccount(entity.RoleAdmin, "ada").Principal(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrRefundAlreadyClosed)
	assert.Empty(t, fx.metrics.fanouts)
}

func TestRefundService_Approve_NotFound(t *testing.T) {
	fx := createTestRefundService(t)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		refundRepo := mockRepo.NewMockRefundRepository(t)
		factory.EXPECT().NewRefundRepository().Return(refundRepo)

		refundRepo.EXPECT().Resolve(mock.Anything, mock.Anything).Return(nil, repository.ErrRefundNotFound)
	})

	_, err := fx.service.Approve(context.Background(), newAccount(entity.RoleAdmin, "ada").Principal(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrRefundNotFound)
}
