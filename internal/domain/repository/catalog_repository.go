package repository

import (
	"context"
	"errors"

	"servicehub/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrServiceNameTaken    = errors.New("service name already exists")
	ErrServiceInUse        = errors.New("service is referenced by service posts")
	ErrServicePostNotFound = errors.New("service post not found")
	ErrDuplicateRating     = errors.New("consumer already rated service post")
)

// ServiceRepository defines the interface for catalog categories.
type ServiceRepository interface {
	// Create persists a new catalog service.
	Create(ctx context.Context, service *entity.Service) error

	// Update overwrites name and description.
	Update(ctx context.Context, service *entity.Service) error

	// Delete removes a service that no post references.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves a single service.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// List returns every service ordered by name.
	List(ctx context.Context) ([]*entity.Service, error)

	// CountByIDs returns how many of the given ids exist.
	CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// ServicePostRepository defines the interface for provider posts and their ratings.
type ServicePostRepository interface {
	// Create persists a new post.
	Create(ctx context.Context, post *entity.ServicePost) error

	// FindByID retrieves a post with its ratings.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ServicePost, error)

	// ListByProvider returns the provider's posts, newest first.
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.ServicePost, error)

	// ListRecent returns the newest posts.
	ListRecent(ctx context.Context, limit int) ([]*entity.ServicePost, error)

	// ListPopular ranks posts by rating count, then rating sum, computed at query time.
	ListPopular(ctx context.Context, limit int) ([]*entity.ServicePost, error)

	// DeleteOwned removes a post owned by the provider.
	DeleteOwned(ctx context.Context, id, providerID uuid.UUID) error

	// AddRating appends a rating entry. Returns ErrDuplicateRating if the consumer already rated the post.
	AddRating(ctx context.Context, postID uuid.UUID, rating entity.Rating) error
}
