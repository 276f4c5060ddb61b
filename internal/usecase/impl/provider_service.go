package impl

import (
	"context"
	"log/slog"
	"regexp"
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

const (
	cnicFolder      = "cnic"
	cnicImageCount  = 2
	clockTimeLayout = "15:04"
)

var cnicPattern = regexp.MustCompile(`^\d{5}-\d{7}-\d$`)

type providerService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	profileRepo repository.ProviderProfileRepository
	serviceRepo repository.ServiceRepository
	mediaStore  service.MediaStore
	metrics     service.Metrics
	logger      *slog.Logger
}

// ProviderServiceParams holds dependencies for ProviderService, injected by Fx.
type ProviderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	ProfileRepo repository.ProviderProfileRepository
	ServiceRepo repository.ServiceRepository
	MediaStore  service.MediaStore
	Metrics     service.Metrics `optional:"true"`
	Logger      *slog.Logger
}

// NewProviderService is the constructor for providerService.
func NewProviderService(params ProviderServiceParams) usecase.ProviderUsecase {
	return &providerService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		profileRepo: params.ProfileRepo,
		serviceRepo: params.ServiceRepo,
		mediaStore:  params.MediaStore,
		metrics:     metricsOrNoop(params.Metrics),
		logger:      params.Logger,
	}
}

func (srv *providerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SetWorkingHours adds entries for days that have none yet.
func (srv *providerService) SetWorkingHours(ctx context.Context, provider entity.Principal, hours []entity.WorkingHour) (*entity.Account, error) {
	if len(hours) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one working day is required")
	}

	seen := make(map[entity.Weekday]struct{}, len(hours))
	for _, hour := range hours {
		if err := validateWorkingHour(hour); err != nil {
			return nil, err
		}
		if _, dup := seen[hour.Day]; dup {
			return nil, domainerrors.ErrValidationFailed.WithDetails("day " + string(hour.Day) + " is listed twice")
		}
		seen[hour.Day] = struct{}{}
	}

	if err := srv.profileRepo.AddWorkingHours(ctx, provider.ID, hours); err != nil {
		if errors.Is(err, repository.ErrWorkingDayExists) {
			return nil, domainerrors.ErrDuplicateWorkingDay
		}

		return nil, mapProviderError(err)
	}

	return srv.load(ctx, provider.ID)
}

func validateWorkingHour(hour entity.WorkingHour) error {
	if !hour.Day.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("invalid day " + string(hour.Day))
	}

	opens, err := time.Parse(clockTimeLayout, hour.Opens)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("opens must be HH:MM")
	}
	closes, err := time.Parse(clockTimeLayout, hour.Closes)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("closes must be HH:MM")
	}
	if !closes.After(opens) {
		return domainerrors.ErrValidationFailed.WithDetails("closes must be after opens for " + string(hour.Day))
	}

	return nil
}

// AddCNICDetails uploads both identity images and stores them with the number.
func (srv *providerService) AddCNICDetails(ctx context.Context, provider entity.Principal, input usecase.CNICInput) (*entity.Account, error) {
	if !cnicPattern.MatchString(input.Number) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("cnic number must match #####-#######-#")
	}
	if len(input.Images) != cnicImageCount {
		return nil, domainerrors.ErrValidationFailed.WithDetails("exactly two cnic images are required")
	}

	urls := make([]string, 0, cnicImageCount)
	for _, image := range input.Images {
		url, err := uploadMedia(ctx, srv.mediaStore, cnicFolder, image)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	if err := srv.profileRepo.SetCNIC(ctx, provider.ID, input.Number, urls); err != nil {
		return nil, mapProviderError(err)
	}

	return srv.load(ctx, provider.ID)
}

// AddListedServices links existing catalog services to the provider.
func (srv *providerService) AddListedServices(ctx context.Context, provider entity.Principal, serviceIDs []uuid.UUID) (*entity.Account, error) {
	if len(serviceIDs) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one service is required")
	}

	seen := make(map[uuid.UUID]struct{}, len(serviceIDs))
	for _, id := range serviceIDs {
		if _, dup := seen[id]; dup {
			return nil, domainerrors.ErrDuplicateListedService.WithDetails("service " + id.String() + " is listed twice")
		}
		seen[id] = struct{}{}
	}

	count, err := srv.serviceRepo.CountByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count services")
	}
	if count != int64(len(serviceIDs)) {
		return nil, domainerrors.ErrServiceNotFound
	}

	if err := srv.profileRepo.AddListedServices(ctx, provider.ID, serviceIDs); err != nil {
		if errors.Is(err, repository.ErrListedServiceExists) {
			return nil, domainerrors.ErrDuplicateListedService
		}

		return nil, mapProviderError(err)
	}

	return srv.load(ctx, provider.ID)
}

// VerifyProvider flags the provider as verified and notifies them. Verifying an already
// verified provider returns it unchanged.
func (srv *providerService) VerifyProvider(ctx context.Context, admin entity.Principal, providerID uuid.UUID) (*entity.Account, error) {
	var verified *entity.Account
	fannedOut := false

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		accountRepo := repos.NewAccountRepository()

		provider, err := accountRepo.FindByID(ctx, entity.RoleServiceProvider, providerID)
		if err != nil {
			return mapProviderError(err)
		}
		if provider.Provider != nil && provider.Provider.IsAccountVerified {
			verified = provider

			return nil
		}

		actor, err := accountRepo.FindByID(ctx, entity.RoleAdmin, admin.ID)
		if err != nil {
			return mapAccountError(err)
		}

		if err := repos.NewProviderProfileRepository().MarkVerified(ctx, providerID); err != nil {
			return mapProviderError(err)
		}
		if provider.Provider == nil {
			provider.Provider = &entity.ProviderProfile{}
		}
		provider.Provider.IsAccountVerified = true
		verified = provider

		fannedOut = true

		return emitFanout(ctx, repos, fanoutEvent{
			Type:      "account.verified",
			Kind:      entity.EntityKindAccount,
			Actor:     actor,
			Recipient: provider,
			Related:   entity.EntityRef{Kind: entity.EntityKindAccount, ID: provider.ID},
			Message:   "Your account has been verified by " + actor.DisplayName(),
			Email: entity.EmailJob{
				Subject:     "Account Verification",
				Template:    entity.EmailTemplateAccount,
				Intro:       "Your service provider account has been verified",
				ActionLabel: "Verified By",
				ActionBy:    actor.DisplayName(),
				Fields:      []entity.EmailField{{Label: "Name", Value: provider.DisplayName()}},
			},
		}, nowUTC())
	})
	if err != nil {
		return nil, err
	}

	if fannedOut {
		recordFanout(srv.metrics, entity.EntityKindAccount)
		srv.log(ctx).Info("Service provider verified", slog.Any("providerID", providerID), slog.Any("adminID", admin.ID))
	}

	return verified, nil
}

func (srv *providerService) load(ctx context.Context, providerID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, entity.RoleServiceProvider, providerID)
	if err != nil {
		return nil, mapProviderError(err)
	}

	return account, nil
}

func mapProviderError(err error) error {
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domainerrors.ErrProviderNotFound
	}

	return errors.Wrap(err, "provider operation failed")
}
