package usecase

import (
	"context"

	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceInput defines a catalog category.
type ServiceInput struct {
	Name        string
	Description string
}

// CreatePostInput defines a new service post. Image is required.
type CreatePostInput struct {
	ServiceID uuid.UUID
	Message   string
	Price     decimal.Decimal
	Image     *service.MediaUpload
}

// CatalogUsecase defines catalog curation and service post operations.
type CatalogUsecase interface {
	CreateService(ctx context.Context, input ServiceInput) (*entity.Service, error)
	UpdateService(ctx context.Context, id uuid.UUID, input ServiceInput) (*entity.Service, error)
	DeleteService(ctx context.Context, id uuid.UUID) error
	ListServices(ctx context.Context) ([]*entity.Service, error)

	CreatePost(ctx context.Context, provider entity.Principal, input CreatePostInput) (*entity.ServicePost, error)
	// DeletePost removes the post and every order placed on it.
	DeletePost(ctx context.Context, provider entity.Principal, postID uuid.UUID) error
	ListProviderPosts(ctx context.Context, provider entity.Principal) ([]*entity.ServicePost, error)

	ListRecentPosts(ctx context.Context, limit int) ([]*entity.ServicePost, error)
	ListPopularPosts(ctx context.Context, limit int) ([]*entity.ServicePost, error)
	GetPost(ctx context.Context, id uuid.UUID) (*entity.ServicePost, error)
}

// RatingUsecase defines rating submission.
type RatingUsecase interface {
	// Submit appends the consumer's rating. A second rating on the same post is a conflict.
	Submit(ctx context.Context, consumer entity.Principal, postID uuid.UUID, stars int) (*entity.ServicePost, error)
}
