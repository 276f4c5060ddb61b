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
	"go.uber.org/fx"
)

const (
	servicePostFolder = "service-posts"
	defaultListLimit  = 20
	maxListLimit      = 100
)

type catalogService struct {
	txManager   repository.TransactionManager
	serviceRepo repository.ServiceRepository
	postRepo    repository.ServicePostRepository
	mediaStore  service.MediaStore
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ServiceRepo repository.ServiceRepository
	PostRepo    repository.ServicePostRepository
	MediaStore  service.MediaStore
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:   params.TxManager,
		serviceRepo: params.ServiceRepo,
		postRepo:    params.PostRepo,
		mediaStore:  params.MediaStore,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) CreateService(ctx context.Context, input usecase.ServiceInput) (*entity.Service, error) {
	svc, err := newServiceEntity(input)
	if err != nil {
		return nil, err
	}

	if err := srv.serviceRepo.Create(ctx, svc); err != nil {
		return nil, mapCatalogError(err)
	}

	srv.log(ctx).Info("Service created", slog.Any("serviceID", svc.ID), slog.String("name", svc.Name))

	return svc, nil
}

func (srv *catalogService) UpdateService(ctx context.Context, id uuid.UUID, input usecase.ServiceInput) (*entity.Service, error) {
	update, err := newServiceEntity(input)
	if err != nil {
		return nil, err
	}

	svc, err := srv.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCatalogError(err)
	}

	svc.Name = update.Name
	svc.Description = update.Description
	if err := srv.serviceRepo.Update(ctx, svc); err != nil {
		return nil, mapCatalogError(err)
	}

	return svc, nil
}

func newServiceEntity(input usecase.ServiceInput) (*entity.Service, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("service name is required")
	}

	return &entity.Service{Name: name, Description: strings.TrimSpace(input.Description)}, nil
}

func (srv *catalogService) DeleteService(ctx context.Context, id uuid.UUID) error {
	if err := srv.serviceRepo.Delete(ctx, id); err != nil {
		return mapCatalogError(err)
	}

	srv.log(ctx).Info("Service deleted", slog.Any("serviceID", id))

	return nil
}

func (srv *catalogService) ListServices(ctx context.Context) ([]*entity.Service, error) {
	services, err := srv.serviceRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}

// CreatePost uploads the image and stores the post under an existing service.
func (srv *catalogService) CreatePost(ctx context.Context, provider entity.Principal, input usecase.CreatePostInput) (*entity.ServicePost, error) {
	message := strings.TrimSpace(input.Message)
	switch {
	case message == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("message is required")
	case !input.Price.IsPositive():
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be greater than zero")
	case input.Image == nil:
		return nil, domainerrors.ErrValidationFailed.WithDetails("image is required")
	}

	if _, err := srv.serviceRepo.FindByID(ctx, input.ServiceID); err != nil {
		return nil, mapCatalogError(err)
	}

	imageURL, err := uploadMedia(ctx, srv.mediaStore, servicePostFolder, *input.Image)
	if err != nil {
		return nil, err
	}

	post := &entity.ServicePost{
		ProviderID: provider.ID,
		ServiceID:  input.ServiceID,
		Message:    message,
		Price:      input.Price,
		ImageURL:   imageURL,
	}
	if err := srv.postRepo.Create(ctx, post); err != nil {
		return nil, mapCatalogError(err)
	}

	srv.log(ctx).Info("Service post created", slog.Any("postID", post.ID), slog.Any("providerID", provider.ID))

	return post, nil
}

// DeletePost removes the provider's post, every order placed on it and the claims linked to
// those orders in one transaction.
func (srv *catalogService) DeletePost(ctx context.Context, provider entity.Principal, postID uuid.UUID) error {
	var removedOrders int64

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		postRepo := repos.NewServicePostRepository()

		post, err := postRepo.FindByID(ctx, postID)
		if err != nil {
			return mapCatalogError(err)
		}
		if post.ProviderID != provider.ID {
			return domainerrors.ErrServicePostNotFound
		}

		removedOrders, err = repos.NewOrderRepository().DeleteByServicePost(ctx, postID)
		if err != nil {
			return errors.Wrap(err, "failed to delete orders of service post")
		}

		return mapCatalogError(postRepo.DeleteOwned(ctx, postID, provider.ID))
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Service post deleted", slog.Any("postID", postID), slog.Int64("removedOrders", removedOrders))

	return nil
}

func (srv *catalogService) ListProviderPosts(ctx context.Context, provider entity.Principal) ([]*entity.ServicePost, error) {
	posts, err := srv.postRepo.ListByProvider(ctx, provider.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list provider posts")
	}

	return posts, nil
}

func (srv *catalogService) ListRecentPosts(ctx context.Context, limit int) ([]*entity.ServicePost, error) {
	posts, err := srv.postRepo.ListRecent(ctx, clampLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent posts")
	}

	return posts, nil
}

// ListPopularPosts ranks by rating count, then rating sum.
func (srv *catalogService) ListPopularPosts(ctx context.Context, limit int) ([]*entity.ServicePost, error) {
	posts, err := srv.postRepo.ListPopular(ctx, clampLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list popular posts")
	}

	return posts, nil
}

func (srv *catalogService) GetPost(ctx context.Context, id uuid.UUID) (*entity.ServicePost, error) {
	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCatalogError(err)
	}

	return post, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	default:
		return limit
	}
}

// mapCatalogError translates catalog repository errors. A nil error stays nil.
func mapCatalogError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrServiceNotFound):
		return domainerrors.ErrServiceNotFound
	case errors.Is(err, repository.ErrServiceNameTaken):
		return domainerrors.ErrServiceAlreadyExists
	case errors.Is(err, repository.ErrServiceInUse):
		return domainerrors.ErrServiceInUse
	case errors.Is(err, repository.ErrServicePostNotFound):
		return domainerrors.ErrServicePostNotFound
	case errors.Is(err, repository.ErrDuplicateRating):
		return domainerrors.ErrDuplicateRating
	default:
		return errors.Wrap(err, "catalog operation failed")
	}
}
