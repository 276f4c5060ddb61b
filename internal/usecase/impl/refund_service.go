package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/domain/service"
	"servicehub/internal/errors"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var maxRefundPercentage = decimal.NewFromInt(100)

type refundService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	orderRepo   repository.OrderRepository
	refundRepo  repository.RefundRepository
	metrics     service.Metrics
	logger      *slog.Logger
}

// RefundServiceParams holds dependencies for RefundService, injected by Fx.
type RefundServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	OrderRepo   repository.OrderRepository
	RefundRepo  repository.RefundRepository
	Metrics     service.Metrics `optional:"true"`
	Logger      *slog.Logger
}

// NewRefundService is the constructor for refundService.
func NewRefundService(params RefundServiceParams) usecase.RefundUsecase {
	return &refundService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		orderRepo:   params.OrderRepo,
		refundRepo:  params.RefundRepo,
		metrics:     metricsOrNoop(params.Metrics),
		logger:      params.Logger,
	}
}

func (srv *refundService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit creates a pending refund request. Only one may be pending per consumer, provider and order.
func (srv *refundService) Submit(ctx context.Context, consumer entity.Principal, input usecase.SubmitRefundInput) (*entity.RefundRequest, error) {
	amountType := input.AmountType
	if amountType == "" {
		amountType = entity.RefundAmountFixed
	}
	if err := validateRefundAmount(input.Amount, amountType); err != nil {
		return nil, err
	}

	details := strings.TrimSpace(input.Details)
	if details == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("refund details are required")
	}

	scope, err := claimTarget(ctx, srv.accountRepo, srv.orderRepo, consumer, input.ProviderID, input.OrderID)
	if err != nil {
		return nil, err
	}

	pending, err := srv.refundRepo.ExistsPending(ctx, scope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check pending refund requests")
	}
	if pending {
		return nil, domainerrors.ErrPendingRefundExists
	}

	refund := &entity.RefundRequest{
		RequestedBy:      consumer.ID,
		RequestedAgainst: input.ProviderID,
		OrderID:          input.OrderID,
		Amount:           input.Amount,
		AmountType:       amountType,
		Details:          details,
		Status:           entity.RefundStatusPending,
	}
	if err := srv.refundRepo.Create(ctx, refund); err != nil {
		return nil, mapRefundError(err)
	}

	srv.log(ctx).Info("Refund request submitted", slog.Any("refundID", refund.ID), slog.Any("consumerID", consumer.ID))

	return refund, nil
}

func validateRefundAmount(amount decimal.Decimal, amountType entity.RefundAmountType) error {
	if !amountType.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("refund amount type must be fixed or percentage")
	}
	if !amount.IsPositive() {
		return domainerrors.ErrValidationFailed.WithDetails("refund amount must be greater than zero")
	}
	if amountType == entity.RefundAmountPercentage && amount.GreaterThan(maxRefundPercentage) {
		return domainerrors.ErrValidationFailed.WithDetails("refund percentage cannot exceed 100")
	}

	return nil
}

func (srv *refundService) Approve(ctx context.Context, admin entity.Principal, id uuid.UUID) (*entity.RefundRequest, error) {
	return srv.settle(ctx, admin, id, entity.RefundStatusApproved)
}

func (srv *refundService) Reject(ctx context.Context, admin entity.Principal, id uuid.UUID) (*entity.RefundRequest, error) {
	return srv.settle(ctx, admin, id, entity.RefundStatusRejected)
}

// settle moves the request out of pending and notifies the consumer. A request that is
// no longer pending is a conflict and nothing is sent.
func (srv *refundService) settle(ctx context.Context, admin entity.Principal, id uuid.UUID, status entity.RefundStatus) (*entity.RefundRequest, error) {
	var settled *entity.RefundRequest

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		refund, err := repos.NewRefundRepository().Resolve(ctx, repository.RefundResolution{
			ID:         id,
			Status:     status,
			AdminID:    admin.ID,
			ResolvedAt: nowUTC(),
		})
		if err != nil {
			return mapRefundError(err)
		}
		settled = refund

		consumer, actor, err := claimParties(ctx, repos.NewAccountRepository(), refund.RequestedBy, admin.ID)
		if err != nil {
			return err
		}

		return emitFanout(ctx, repos, refundFanout(refund, actor, consumer), nowUTC())
	})
	if err != nil {
		return nil, err
	}

	recordFanout(srv.metrics, entity.EntityKindRefund)
	srv.log(ctx).Info("Refund request settled", slog.Any("refundID", id), slog.String("status", string(status)), slog.Any("adminID", admin.ID))

	return settled, nil
}

func refundFanout(refund *entity.RefundRequest, actor, recipient *entity.Account) fanoutEvent {
	verb := string(refund.Status)

	amount := refund.Amount.String()
	if refund.AmountType == entity.RefundAmountPercentage {
		amount += "%"
	}

	return fanoutEvent{
		Type:      "refund." + verb,
		Kind:      entity.EntityKindRefund,
		Actor:     actor,
		Recipient: recipient,
		Related:   entity.EntityRef{Kind: entity.EntityKindRefund, ID: refund.ID},
		Message:   "Your refund request has been " + verb + " by " + actor.DisplayName(),
		Email: entity.EmailJob{
			Subject:     "Refund Information",
			Template:    entity.EmailTemplateRefund,
			Intro:       "Your refund request has been " + verb,
			ActionLabel: "Request " + capitalize(verb) + " By",
			ActionBy:    actor.DisplayName(),
			Fields: []entity.EmailField{
				{Label: "Refund Amount", Value: amount},
				{Label: "Refund Details", Value: refund.Details},
				{Label: "Name", Value: recipient.DisplayName()},
			},
		},
	}
}

func (srv *refundService) ListForConsumer(ctx context.Context, consumer entity.Principal) ([]*entity.RefundRequest, error) {
	refunds, err := srv.refundRepo.ListByRequester(ctx, consumer.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list consumer refund requests")
	}

	return refunds, nil
}

func (srv *refundService) ListAll(ctx context.Context, status *entity.RefundStatus) ([]*entity.RefundRequest, error) {
	if status != nil && !status.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown refund status " + string(*status))
	}

	refunds, err := srv.refundRepo.List(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list refund requests")
	}

	return refunds, nil
}

func mapRefundError(err error) error {
	switch {
	case errors.Is(err, repository.ErrRefundNotFound):
		return domainerrors.ErrRefundNotFound
	case errors.Is(err, repository.ErrRefundNotPending):
		return domainerrors.ErrRefundAlreadyClosed
	case errors.Is(err, repository.ErrPendingRefundExists):
		return domainerrors.ErrPendingRefundExists
	default:
		return errors.Wrap(err, "refund operation failed")
	}
}
