package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/domain/service"
	"servicehub/internal/errors"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	metrics   service.Metrics
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Metrics   service.Metrics `optional:"true"`
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		metrics:   metricsOrNoop(params.Metrics),
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder creates a pending order and notifies the provider.
func (srv *orderService) PlaceOrder(ctx context.Context, consumer entity.Principal, input usecase.PlaceOrderInput) (*entity.ServiceOrder, error) {
	if consumer.Role != entity.RoleConsumer {
		return nil, domainerrors.ErrForbidden.WithDetails("only consumers can place orders")
	}

	var placed *entity.ServiceOrder

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		accountRepo := repos.NewAccountRepository()
		orderRepo := repos.NewOrderRepository()

		provider, err := accountRepo.FindByID(ctx, entity.RoleServiceProvider, input.ProviderID)
		if err != nil {
			return mapProviderError(err)
		}

		post, err := repos.NewServicePostRepository().FindByID(ctx, input.ServicePostID)
		if err != nil {
			return mapCatalogError(err)
		}
		if post.ProviderID != provider.ID {
			return domainerrors.ErrServicePostNotFound.WithDetails("service post does not belong to the service provider")
		}

		actor, err := accountRepo.FindByID(ctx, entity.RoleConsumer, consumer.ID)
		if err != nil {
			return mapAccountError(err)
		}

		_, err = orderRepo.FindActive(ctx, consumer.ID, provider.ID, post.ID)
		switch {
		case err == nil:
			return domainerrors.ErrActiveOrderExists
		case !errors.Is(err, repository.ErrOrderNotFound):
			return errors.Wrap(err, "failed to check active orders")
		}

		order := &entity.ServiceOrder{
			ConsumerID:       consumer.ID,
			ProviderID:       provider.ID,
			ServicePostID:    post.ID,
			DeliverySchedule: input.DeliverySchedule,
			Status:           entity.OrderStatusPending,
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return mapOrderError(err, entity.OrderActionPlace)
		}
		placed = order

		return emitFanout(ctx, repos, orderFanout(entity.OrderActionPlace, order, post, actor, provider), nowUTC())
	})
	if err != nil {
		return nil, err
	}

	srv.recordTransition(entity.OrderActionPlace)
	srv.log(ctx).Info("Order placed", slog.Any("orderID", placed.ID), slog.Any("consumerID", consumer.ID))

	return placed, nil
}

// Accept requires a delivery schedule.
func (srv *orderService) Accept(ctx context.Context, provider entity.Principal, orderID uuid.UUID, schedule *time.Time) (*entity.ServiceOrder, error) {
	if schedule == nil || schedule.IsZero() {
		return nil, domainerrors.ErrDeliveryScheduleRequired
	}

	return srv.transition(ctx, provider, orderID, entity.OrderActionAccept, schedule)
}

func (srv *orderService) Reject(ctx context.Context, actor entity.Principal, orderID uuid.UUID) (*entity.ServiceOrder, error) {
	return srv.transition(ctx, actor, orderID, entity.OrderActionReject, nil)
}

func (srv *orderService) Cancel(ctx context.Context, provider entity.Principal, orderID uuid.UUID) (*entity.ServiceOrder, error) {
	return srv.transition(ctx, provider, orderID, entity.OrderActionCancel, nil)
}

func (srv *orderService) Complete(ctx context.Context, provider entity.Principal, orderID uuid.UUID) (*entity.ServiceOrder, error) {
	return srv.transition(ctx, provider, orderID, entity.OrderActionComplete, nil)
}

// transition runs one row of the state machine as a conditional update and notifies
// the counterparty in the same transaction.
func (srv *orderService) transition(
	ctx context.Context,
	actor entity.Principal,
	orderID uuid.UUID,
	action entity.OrderAction,
	schedule *time.Time,
) (*entity.ServiceOrder, error) {
	rule, ok := entity.TransitionFor(action)
	if !ok {
		return nil, domainerrors.ErrInternalError.WithDetails("unknown order action " + string(action))
	}
	if !rule.AllowedFor(actor.Role) {
		return nil, domainerrors.ErrForbidden.WithDetails(actor.Role.DisplayName() + " cannot " + string(action) + " orders")
	}

	var updated *entity.ServiceOrder

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		accountRepo := repos.NewAccountRepository()

		order, err := repos.NewOrderRepository().Transition(ctx, repository.OrderTransitionParams{
			OrderID:          orderID,
			Party:            actor.Ref(),
			From:             rule.From,
			To:               rule.To,
			DeliverySchedule: schedule,
		})
		if err != nil {
			return mapOrderError(err, action)
		}
		updated = order

		counterpartyRef, ok := order.Counterparty(actor.Role)
		if !ok {
			return domainerrors.ErrForbidden
		}

		counterparty, err := accountRepo.FindByID(ctx, counterpartyRef.Kind, counterpartyRef.ID)
		if err != nil {
			return mapAccountError(err)
		}

		actorAccount, err := accountRepo.FindByID(ctx, actor.Role, actor.ID)
		if err != nil {
			return mapAccountError(err)
		}

		post, err := repos.NewServicePostRepository().FindByID(ctx, order.ServicePostID)
		if err != nil {
			return mapCatalogError(err)
		}

		return emitFanout(ctx, repos, orderFanout(action, order, post, actorAccount, counterparty), nowUTC())
	})
	if err != nil {
		srv.log(ctx).Debug("Order transition failed",
			slog.String("action", string(action)), slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, err
	}

	srv.recordTransition(action)
	srv.log(ctx).Info("Order transitioned",
		slog.String("action", string(action)), slog.Any("orderID", orderID), slog.String("status", string(updated.Status)))

	return updated, nil
}

func (srv *orderService) recordTransition(action entity.OrderAction) {
	srv.metrics.OrderTransition(string(action))
	recordFanout(srv.metrics, entity.EntityKindOrder)
}

// ListOrders returns the party's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, party entity.Principal, statuses ...entity.OrderStatus) ([]*entity.ServiceOrder, error) {
	if _, ok := (&entity.ServiceOrder{}).PartyFor(party.Role); !ok {
		return nil, domainerrors.ErrForbidden.WithDetails("admins have no orders")
	}
	for _, status := range statuses {
		if !status.IsValid() {
			return nil, domainerrors.ErrInvalidInput.WithDetails("unknown order status " + string(status))
		}
	}

	orders, err := srv.orderRepo.ListForParty(ctx, party.Ref(), statuses)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// orderFanout builds the notification and email for an order action. The email copy
// is keyed by the action.
func orderFanout(
	action entity.OrderAction,
	order *entity.ServiceOrder,
	post *entity.ServicePost,
	actor, recipient *entity.Account,
) fanoutEvent {
	pastTense := action.PastTense()

	return fanoutEvent{
		Type:      "order." + pastTense,
		Kind:      entity.EntityKindOrder,
		Actor:     actor,
		Recipient: recipient,
		Related:   entity.EntityRef{Kind: entity.EntityKindOrder, ID: order.ID},
		Message:   "Order #" + order.ID.String() + " has been " + pastTense + " by " + actor.DisplayName(),
		Email: entity.EmailJob{
			Subject:     "Order Information",
			Template:    entity.EmailTemplateOrder,
			Intro:       "Your order has been " + pastTense,
			ActionLabel: capitalize(pastTense) + " By",
			ActionBy:    actor.DisplayName(),
			Fields:      orderEmailFields(order, post, recipient),
		},
	}
}

func orderEmailFields(order *entity.ServiceOrder, post *entity.ServicePost, recipient *entity.Account) []entity.EmailField {
	fields := []entity.EmailField{
		{Label: "Order ID", Value: order.ID.String()},
		{Label: "Service Post", Value: post.Message},
		{Label: "Name", Value: recipient.DisplayName()},
	}
	if order.DeliverySchedule != nil {
		fields = append(fields, entity.EmailField{Label: "Delivery Schedule", Value: order.DeliverySchedule.Format(time.RFC1123)})
	}

	return fields
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

func mapOrderError(err error, action entity.OrderAction) error {
	switch {
	case errors.Is(err, repository.ErrOrderNotFound):
		return domainerrors.ErrOrderNotFound
	case errors.Is(err, repository.ErrOrderStatusMismatch):
		return domainerrors.ErrOrderStateConflict.WithDetails("order cannot be " + action.PastTense() + " from its current status")
	case errors.Is(err, repository.ErrActiveOrderExists):
		return domainerrors.ErrActiveOrderExists
	default:
		return errors.Wrapf(err, "failed to %s order", action)
	}
}
