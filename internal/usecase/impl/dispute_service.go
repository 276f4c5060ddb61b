package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

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

type disputeService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	orderRepo   repository.OrderRepository
	disputeRepo repository.DisputeRepository
	metrics     service.Metrics
	logger      *slog.Logger
}

// DisputeServiceParams holds dependencies for DisputeService, injected by Fx.
type DisputeServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	OrderRepo   repository.OrderRepository
	DisputeRepo repository.DisputeRepository
	Metrics     service.Metrics `optional:"true"`
	Logger      *slog.Logger
}

// NewDisputeService is the constructor for disputeService.
func NewDisputeService(params DisputeServiceParams) usecase.DisputeUsecase {
	return &disputeService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		orderRepo:   params.OrderRepo,
		disputeRepo: params.DisputeRepo,
		metrics:     metricsOrNoop(params.Metrics),
		logger:      params.Logger,
	}
}

func (srv *disputeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// File creates a pending dispute. Only one may be pending per consumer, provider and order.
func (srv *disputeService) File(ctx context.Context, consumer entity.Principal, input usecase.FileDisputeInput) (*entity.Dispute, error) {
	title := strings.TrimSpace(input.Title)
	details := strings.TrimSpace(input.Details)
	if err := checkLength("dispute title", title, entity.DisputeTitleMin, entity.DisputeTitleMax); err != nil {
		return nil, err
	}
	if err := checkLength("dispute details", details, entity.DisputeDetailsMin, entity.DisputeDetailsMax); err != nil {
		return nil, err
	}

	scope, err := claimTarget(ctx, srv.accountRepo, srv.orderRepo, consumer, input.ProviderID, input.OrderID)
	if err != nil {
		return nil, err
	}

	pending, err := srv.disputeRepo.ExistsPending(ctx, scope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check pending disputes")
	}
	if pending {
		return nil, domainerrors.ErrPendingDisputeExists
	}

	dispute := &entity.Dispute{
		Title:        title,
		Details:      details,
		FiledBy:      consumer.ID,
		FiledAgainst: input.ProviderID,
		OrderID:      input.OrderID,
		Status:       entity.DisputeStatusPending,
	}
	if err := srv.disputeRepo.Create(ctx, dispute); err != nil {
		return nil, mapDisputeError(err)
	}

	srv.log(ctx).Info("Dispute filed", slog.Any("disputeID", dispute.ID), slog.Any("consumerID", consumer.ID))

	return dispute, nil
}

// Resolve settles a pending dispute with the admin's outcome.
func (srv *disputeService) Resolve(ctx context.Context, admin entity.Principal, id uuid.UUID, resolution string) (*entity.Dispute, error) {
	resolution = strings.TrimSpace(resolution)
	if resolution == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("dispute resolution is required")
	}

	return srv.settle(ctx, admin, id, entity.DisputeStatusResolved, resolution)
}

func (srv *disputeService) Reject(ctx context.Context, admin entity.Principal, id uuid.UUID) (*entity.Dispute, error) {
	return srv.settle(ctx, admin, id, entity.DisputeStatusRejected, "")
}

// settle moves the dispute out of pending and notifies the filer. A dispute that is
// no longer pending is a conflict and nothing is sent.
func (srv *disputeService) settle(
	ctx context.Context,
	admin entity.Principal,
	id uuid.UUID,
	status entity.DisputeStatus,
	resolution string,
) (*entity.Dispute, error) {
	var settled *entity.Dispute

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		dispute, err := repos.NewDisputeRepository().Resolve(ctx, repository.DisputeResolution{
			ID:         id,
			Status:     status,
			Resolution: resolution,
			AdminID:    admin.ID,
			ResolvedAt: nowUTC(),
		})
		if err != nil {
			return mapDisputeError(err)
		}
		settled = dispute

		consumer, actor, err := claimParties(ctx, repos.NewAccountRepository(), dispute.FiledBy, admin.ID)
		if err != nil {
			return err
		}

		return emitFanout(ctx, repos, disputeFanout(dispute, actor, consumer), nowUTC())
	})
	if err != nil {
		return nil, err
	}

	recordFanout(srv.metrics, entity.EntityKindDispute)
	srv.log(ctx).Info("Dispute settled", slog.Any("disputeID", id), slog.String("status", string(status)), slog.Any("adminID", admin.ID))

	return settled, nil
}

func disputeFanout(dispute *entity.Dispute, actor, recipient *entity.Account) fanoutEvent {
	verb := string(dispute.Status)

	fields := []entity.EmailField{
		{Label: "Dispute Title", Value: dispute.Title},
		{Label: "Dispute Details", Value: dispute.Details},
	}
	if dispute.Resolution != "" {
		fields = append(fields, entity.EmailField{Label: "Dispute Resolution", Value: dispute.Resolution})
	}
	fields = append(fields, entity.EmailField{Label: "Name", Value: recipient.DisplayName()})

	return fanoutEvent{
		Type:      "dispute." + verb,
		Kind:      entity.EntityKindDispute,
		Actor:     actor,
		Recipient: recipient,
		Related:   entity.EntityRef{Kind: entity.EntityKindDispute, ID: dispute.ID},
		Message:   fmt.Sprintf("Your dispute %q has been %s by %s", dispute.Title, verb, actor.DisplayName()),
		Email: entity.EmailJob{
			Subject:     "Dispute Information",
			Template:    entity.EmailTemplateDispute,
			Intro:       "Your dispute has been " + verb,
			ActionLabel: "Dispute " + capitalize(verb) + " By",
			ActionBy:    actor.DisplayName(),
			Fields:      fields,
		},
	}
}

// Delete removes the consumer's own dispute whatever its status.
func (srv *disputeService) Delete(ctx context.Context, consumer entity.Principal, id uuid.UUID) error {
	if err := srv.disputeRepo.DeleteByFiler(ctx, id, consumer.ID); err != nil {
		return mapDisputeError(err)
	}

	srv.log(ctx).Info("Dispute deleted", slog.Any("disputeID", id), slog.Any("consumerID", consumer.ID))

	return nil
}

func (srv *disputeService) ListForConsumer(ctx context.Context, consumer entity.Principal) ([]*entity.Dispute, error) {
	disputes, err := srv.disputeRepo.ListByFiler(ctx, consumer.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list consumer disputes")
	}

	return disputes, nil
}

func (srv *disputeService) ListAll(ctx context.Context, status *entity.DisputeStatus) ([]*entity.Dispute, error) {
	if status != nil && !status.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown dispute status " + string(*status))
	}

	disputes, err := srv.disputeRepo.List(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list disputes")
	}

	return disputes, nil
}

func checkLength(field, value string, minLen, maxLen int) error {
	n := utf8.RuneCountInString(value)
	if n < minLen || n > maxLen {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("%s must be %d to %d characters", field, minLen, maxLen))
	}

	return nil
}

func mapDisputeError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDisputeNotFound):
		return domainerrors.ErrDisputeNotFound
	case errors.Is(err, repository.ErrDisputeNotPending):
		return domainerrors.ErrDisputeAlreadyClosed
	case errors.Is(err, repository.ErrPendingDisputeExists):
		return domainerrors.ErrPendingDisputeExists
	default:
		return errors.Wrap(err, "dispute operation failed")
	}
}
