package impl

import (
	"context"
	"testing"
	"time"

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

type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	metrics   *recordingMetrics
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	metrics := &recordingMetrics{}

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Metrics:   metrics,
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		metrics:   metrics,
	}
}

// orderParties is the usual cast of an order test.
type orderParties struct {
	consumer *entity.Account
	provider *entity.Account
	post     *entity.ServicePost
}

func newOrderParties() orderParties {
	provider := newAccount(entity.RoleServiceProvider, "vera")

	return orderParties{
		consumer: newAccount(entity.RoleConsumer, "carl"),
		provider: provider,
		post: &entity.ServicePost{
			ID:         uuid.New(),
			ProviderID: provider.ID,
			ServiceID:  uuid.New(),
			Message:    "Deep cleaning",
			Price:      decimal.NewFromInt(50),
		},
	}
}

func (p orderParties) order(status entity.OrderStatus) *entity.ServiceOrder {
	return &entity.ServiceOrder{
		ID:            uuid.New(),
		ConsumerID:    p.consumer.ID,
		ProviderID:    p.provider.ID,
		ServicePostID: p.post.ID,
		Status:        status,
	}
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)
	parties := newOrderParties()

	ctx := context.Background()
	var captured *capturedFanout
	orderID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		postRepo := mockRepo.NewMockServicePostRepository(t)
		factory.EXPECT().NewAccountRepository().Return(accountRepo)
		factory.EXPECT().NewOrderRepository().Return(orderRepo)
		factory.EXPECT().NewServicePostRepository().Return(postRepo)

		accountRepo.EXPECT().FindByID(ctx, entity.RoleServiceProvider, parties.provider.ID).Return(parties.provider, nil)
		accountRepo.EXPECT().FindByID(ctx, entity.RoleConsumer, parties.consumer.ID).Return(parties.consumer, nil)
		postRepo.EXPECT().FindByID(ctx, parties.post.ID).Return(parties.post, nil)
		orderRepo.EXPECT().
			FindActive(ctx, parties.consumer.ID, parties.provider.ID, parties.post.ID).
			Return(nil, repository.ErrOrderNotFound)
		orderRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.ServiceOrder")).
			Run(func(_ context.Context, order *entity.ServiceOrder) {
				order.ID = orderID
			}).
			Return(nil)

		captured = expectFanout(t, factory)
	})

	order, err := fx.service.PlaceOrder(ctx, parties.consumer.Principal(), usecase.PlaceOrderInput{
		ProviderID:    parties.provider.ID,
		ServicePostID: parties.post.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, orderID, order.ID)

	require.Len(t, captured.notifications, 1)
	notification := captured.notifications[0]
	assert.Equal(t, parties.provider.Ref(), notification.ReceivedBy)
	assert.Equal(t, parties.consumer.Ref(), notification.SentBy)
	assert.Equal(t, entity.EntityRef{Kind: entity.EntityKindOrder, ID: orderID}, notification.Related)
	assert.Equal(t, "Order #"+orderID.String()+" has been placed by carl", notification.Message)

	job := captured.emailJob(t)
	assert.Equal(t, parties.provider.Email, job.To)
	assert.Equal(t, "Order Information", job.Subject)
	assert.Equal(t, entity.EmailTemplateOrder, job.Template)
	assert.Equal(t, "Placed By", job.ActionLabel)
	assert.Equal(t, "carl", job.ActionBy)

	assert.Equal(t, "order.placed", captured.lifecycleEvent(t).Type)
	assert.Equal(t, []string{"place"}, fx.metrics.transitions)
	assert.Equal(t, []string{"order"}, fx.metrics.fanouts)
}

func TestOrderService_PlaceOrder_ActiveOrderExists(t *testing.T) {
	fx := createTestOrderService(t)
	parties := newOrderParties()

	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		postRepo := mockRepo.NewMockServicePostRepository(t)
		factory.EXPECT().NewAccountRepository().Return(accountRepo)
		factory.EXPECT().NewOrderRepository().Return(orderRepo)
		factory.EXPECT().NewServicePostRepository().Return(postRepo)

		accountRepo.EXPECT().FindByID(ctx, entity.RoleServiceProvider, parties.provider.ID).Return(parties.provider, nil)
		accountRepo.EXPECT().FindByID(ctx, entity.RoleConsumer, parties.consumer.ID).Return(parties.consumer, nil)
		postRepo.EXPECT().FindByID(ctx, parties.post.ID).Return(parties.post, nil)
		orderRepo.EXPECT().
			FindActive(ctx, parties.consumer.ID, parties.provider.ID, parties.post.ID).
			Return(parties.order(entity.OrderStatusAccepted), nil)
	})

	order, err := fx.service.PlaceOrder(ctx, parties.consumer.Principal(), usecase.PlaceOrderInput{
		ProviderID:    parties.provider.ID,
		ServicePostID: parties.post.ID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrActiveOrderExists)
	assert.Nil(t, order)
	assert.Empty(t, fx.metrics.transitions)
}

func TestOrderService_PlaceOrder_RaceLostToIndex(t *testing.T) {
	fx := createTestOrderService(t)
	parties := newOrderParties()

	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		postRepo := mockRepo.NewMockServicePostRepository(t)
		factory.EXPECT().NewAccountRepository().Return(accountRepo)
		factory.EXPECT().NewOrderRepository().Return(orderRepo)
		factory.EXPECT().NewServicePostRepository().Return(postRepo)

		accountRepo.EXPECT().FindByID(ctx, entity.RoleServiceProvider, parties.provider.ID).Return(parties.provider, nil)
		accountRepo.EXPECT().FindByID(ctx, entity.RoleConsumer, parties.consumer.ID).Return(parties.consumer, nil)
		postRepo.EXPECT().FindByID(ctx, parties.post.ID).Return(parties.post, nil)
		orderRepo.EXPECT().
			FindActive(ctx, parties.consumer.ID, parties.provider.ID, parties.post.ID).
			Return(nil, repository.ErrOrderNotFound)
		orderRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrActiveOrderExists)
	})

	_, err := fx.service.PlaceOrder(ctx, parties.consumer.Principal(), usecase.PlaceOrderInput{
		ProviderID:    parties.provider.ID,
		ServicePostID: parties.post.ID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrActiveOrderExists)
}

func TestOrderService_PlaceOrder_PostOfAnotherProvider(t *testing.T) {
	fx := createTestOrderService(t)
	parties := newOrderParties()
	parties.post.ProviderID = uuid.New()

	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		postRepo := mockRepo.NewMockServicePostRepository(t)
		factory.EXPECT().NewAccountRepository().Return(accountRepo)
		factory.EXPECT().NewOrderRepository().Return(mockRepo.NewMockOrderRepository(t))
		factory.EXPECT().NewServicePostRepository().Return(postRepo)

		accountRepo.EXPECT().FindByID(ctx, entity.RoleServiceProvider, parties.provider.ID).Return(parties.provider, nil)
		postRepo.EXPECT().FindByID(ctx, parties.post.ID).Return(parties.post, nil)
	})

	_, err := fx.service.PlaceOrder(ctx, parties.consumer.Principal(), usecase.PlaceOrderInput{
		ProviderID:    parties.provider.ID,
		ServicePostID: parties.post.ID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrServicePostNotFound)
}

func TestOrderService_PlaceOrder_ProviderNotFound(t *testing.T) {
	fx := createTestOrderService(t)
	parties := newOrderParties()

	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().NewAccountRepository().Return(accountRepo)
		factory.EXPECT().NewOrderRepository().Return(mockRepo.NewMockOrderRepository(t))

		accountRepo.EXPECT().
			FindByID(ctx, entity.RoleServiceProvider, parties.provider.ID).
			Return(nil, repository.ErrAccountNotFound)
	})

	_, err := fx.service.PlaceOrder(ctx, parties.consumer.Principal(), usecase.PlaceOrderInput{
		ProviderID:    parties.provider.ID,
		ServicePostID: parties.post.ID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrProviderNotFound)
}

func TestOrderService_PlaceOrder_OnlyConsumers(t *testing.T) {
	fx := createTestOrderService(t)
	parties := newOrderParties()

	_, err := fx.service.PlaceOrder(context.Background(), parties.provider.Principal(), usecase.PlaceOrderInput{})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_Accept_RequiresSchedule(t *testing.T) {
	fx := createTestOrderService(t)
	parties := newOrderParties()

	order, err := fx.service.Accept(context.Background(), parties.provider.Principal(), uuid.New(), nil)

	assert.ErrorIs(t, err, domainerrors.ErrDeliveryScheduleRequired)
	assert.Nil(t, order)
}

// expectTransition wires a successful conditional update followed by the fanout.
func expectTransition(
	t *testing.T,
	fx orderServiceFixtures,
	parties orderParties,
	actor *entity.Account,
	params repository.OrderTransitionParams,
	result *entity.ServiceOrder,
) **capturedFanout {
	t.Helper()

	var captured *capturedFanout
	counterparty := parties.consumer
	if actor.Role == entity.RoleConsumer {
		counterparty = parties.provider
	}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		postRepo := mockRepo.NewMockServicePostRepository(t)
		factory.EXPECT().NewAccountRepository().Return(accountRepo)
		factory.EXPECT().NewOrderRepository().Return(orderRepo)
		factory.EXPECT().NewServicePostRepository().Return(postRepo)

		orderRepo.EXPECT().Transition(mock.Anything, params).Return(result, nil)
		accountRepo.EXPECT().FindByID(mock.Anything, counterparty.Role, counterparty.ID).Return(counterparty, nil)
		accountRepo.EXPECT().FindByID(mock.Anything, actor.Role, actor.ID).Return(actor, nil)
		postRepo.EXPECT().FindByID(mock.Anything, parties.post.ID).Return(parties.post, nil)

		captured = expectFanout(t, factory)
	})

	return &captured
}

func TestOrderService_Accept_Success(t *testing.T) {
	fx := createTestOrderService(t)
	parties := newOrderParties()

	ctx := context.Background()
	schedule := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	accepted := parties.order(entity.OrderStatusAccepted)
	accepted.DeliverySchedule = &schedule

	captured := expectTransition(t, fx, parties, parties.provider, repository.OrderTransitionParams{
		OrderID:          accepted.ID,
		Party:            parties.provider.Ref(),
		From:             entity.OrderStatusPending,
		To:               entity.OrderStatusAccepted,
		DeliverySchedule: &schedule,
	}, accepted)

	order, err := fx.service.Accept(ctx, parties.provider.Principal(), accepted.ID, &schedule)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusAccepted, order.Status)

	fanout := *captured
	require.Len(t, fanout.notifications, 1)
	assert.Equal(t, parties.consumer.Ref(), fanout.notifications[0].ReceivedBy)

	job := fanout.emailJob(t)
	assert.Equal(t, parties.consumer.Email, job.To)
	assert.Equal(t, "Your order has been accepted", job.Intro)
	assert.Equal(t, "Accepted By", job.ActionLabel)
	assert.Contains(t, job.Fields, entity.EmailField{Label: "Service Post", Value: "Deep cleaning"})
	assert.Equal(t, []string{"accept"}, fx.metrics.transitions)
}

func TestOrderService_Reject_ByConsumerNotifiesProvider(t *testing.T) {
	fx := createTestOrderService(t)
	parties := newOrderParties()

	rejected := parties.order(entity.OrderStatusRejected)

	captured := expectTransition(t, fx, parties, parties.consumer, repository.OrderTransitionParams{
		OrderID: rejected.ID,
		Party:   parties.consumer.Ref(),
		From:    entity.OrderStatusPending,
		To:      entity.OrderStatusRejected,
	}, rejected)

	order, err := fx.service.Reject(context.Background(), parties.consumer.Principal(), rejected.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusRejected, order.Status)
	assert.Equal(t, parties.provider.Ref(), (*captured).notifications[0].ReceivedBy)
	assert.Equal(t, "Rejected By", (*captured).emailJob(t).ActionLabel)
}

func TestOrderService_Complete_Success(t *testing.T) {
	fx := createTestOrderService(t)
	parties := newOrderParties()

	completed := parties.order(entity.OrderStatusCompleted)

	captured := expectTransition(t, fx, parties, parties.provider, repository.OrderTransitionParams{
		OrderID: completed.ID,
		Party:   parties.provider.Ref(),
		From:    entity.OrderStatusAccepted,
		To:      entity.OrderStatusCompleted,
	}, completed)

	_, err := fx.service.Complete(context.Background(), parties.provider.Principal(), completed.ID)

	require.NoError(t, err)
	assert.Equal(t, "order.completed", (*captured).lifecycleEvent(t).Type)
}

func TestOrderService_Transition_StateConflict(t *testing.T) {
	tests := []struct {
		name   string
		call   func(usecase.OrderUsecase, entity.Principal, uuid.UUID) error
		action entity.OrderAction
	}{
		{
			name: "complete pending order",
			call: func(uc usecase.OrderUsecase, p entity.Principal, id uuid.UUID) error {
				_, err := uc.Complete(context.Background(), p, id)

				return err
			},
			action: entity.OrderActionComplete,
		},
		{
			name: "cancel pending order",
			call: func(uc usecase.OrderUsecase, p entity.Principal, id uuid.UUID) error {
				_, err := uc.Cancel(context.Background(), p, id)

				return err
			},
			action: entity.OrderActionCancel,
		},
		{
			name: "reject accepted order",
			call: func(uc usecase.OrderUsecase, p entity.Principal, id uuid.UUID) error {
				_, err := uc.Reject(context.Background(), p, id)

				return err
			},
			action: entity.OrderActionReject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			parties := newOrderParties()
			orderID := uuid.New()
			rule, ok := entity.TransitionFor(tt.action)
			require.True(t, ok)

			expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
				orderRepo := mockRepo.NewMockOrderRepository(t)
				factory.EXPECT().NewAccountRepository().Return(mockRepo.NewMockAccountRepository(t))
				factory.EXPECT().NewOrderRepository().Return(orderRepo)

				orderRepo.EXPECT().Transition(mock.Anything, repository.OrderTransitionParams{
					OrderID: orderID,
					Party:   parties.provider.Ref(),
					From:    rule.From,
					To:      rule.To,
				}).Return(nil, repository.ErrOrderStatusMismatch)
			})

			err := tt.call(fx.service, parties.provider.Principal(), orderID)

			assert.ErrorIs(t, err, domainerrors.ErrOrderStateConflict)
			assert.Empty(t, fx.metrics.fanouts)
		})
	}
}

func TestOrderService_Transition_NotPartyToOrder(t *testing.T) {
	fx := createTestOrderService(t)
	parties := newOrderParties()
	orderID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().NewAccountRepository().Return(mockRepo.NewMockAccountRepository(t))
		factory.EXPECT().NewOrderRepository().Return(orderRepo)

		orderRepo.EXPECT().Transition(mock.Anything, mock.Anything).Return(nil, repository.ErrOrderNotFound)
	})

	_, err := fx.service.Cancel(context.Background(), parties.provider.Principal(), orderID)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_Transition_RoleNotAllowed(t *testing.T) {
	fx := createTestOrderService(t)
	parties := newOrderParties()

	_, err := fx.service.Cancel(context.Background(), parties.consumer.Principal(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.Complete(context.Background(), parties.consumer.Principal(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)
	parties := newOrderParties()

	ctx := context.Background()
	pending := parties.order(entity.OrderStatusPending)

	fx.orderRepo.EXPECT().
		ListForParty(ctx, parties.provider.Ref(), []entity.OrderStatus{entity.OrderStatusPending}).
		Return([]*entity.ServiceOrder{pending}, nil)

	orders, err := fx.service.ListOrders(ctx, parties.provider.Principal(), entity.OrderStatusPending)

	require.NoError(t, err)
	assert.Equal(t, []*entity.ServiceOrder{pending}, orders)
}

func TestOrderService_ListOrders_Rejects(t *testing.T) {
	fx := createTestOrderService(t)
	parties := newOrderParties()

	_, err := fx.service.ListOrders(context.Background(), newAccount(entity.RoleAdmin, "ada").Principal())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.ListOrders(context.Background(), parties.consumer.Principal(), entity.OrderStatus("lost"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}
