package postgres

import (
	"context"
	"time"

	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/repository"
	"servicehub/internal/errors"
	"servicehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// serviceRepository implements the repository.ServiceRepository interface.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

// Create persists a new catalog service.
func (repo *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)

	if err := repo.db.WithContext(ctx).Create(serviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrServiceNameTaken
		}

		return errors.Wrap(err, "failed to create service")
	}

	*service = *toServiceDomain(serviceM)

	return nil
}

// Update overwrites name and description.
func (repo *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id = ?", service.ID).
		Updates(map[string]any{
			"name":        service.Name,
			"description": service.Description,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrServiceNameTaken
		}

		return errors.Wrap(result.Error, "failed to update service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// Delete removes a service that no post references.
func (repo *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var postCount int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ServicePostModel{}).
		Where("service_id = ?", id).
		Count(&postCount).Error; err != nil {
		return errors.Wrap(err, "failed to count service posts")
	}
	if postCount > 0 {
		return repository.ErrServiceInUse
	}

	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ServiceModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrServiceInUse
		}

		return errors.Wrap(result.Error, "failed to delete service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// FindByID retrieves a single service.
func (repo *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	var serviceM model.ServiceModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&serviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by ID")
	}

	return toServiceDomain(&serviceM), nil
}

// List returns every service ordered by name.
func (repo *serviceRepository) List(ctx context.Context) ([]*entity.Service, error) {
	var serviceModels []*model.ServiceModel

	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&serviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	services := make([]*entity.Service, 0, len(serviceModels))
	for _, serviceM := range serviceModels {
		services = append(services, toServiceDomain(serviceM))
	}

	return services, nil
}

// CountByIDs returns how many of the given ids exist.
func (repo *serviceRepository) CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id IN ?", ids).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count services")
	}

	return count, nil
}

// servicePostRepository implements the repository.ServicePostRepository interface.
type servicePostRepository struct {
	db *gorm.DB
}

// NewServicePostRepository is the constructor for servicePostRepository.
func NewServicePostRepository(db *gorm.DB) repository.ServicePostRepository {
	return &servicePostRepository{db: db}
}

// Create persists a new post.
func (repo *servicePostRepository) Create(ctx context.Context, post *entity.ServicePost) error {
	postM := fromServicePostDomain(post)

	if err := repo.db.WithContext(ctx).Omit("Ratings").Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrServiceNotFound
		}

		return errors.Wrap(err, "failed to create service post")
	}

	*post = *toServicePostDomain(postM)

	return nil
}

// FindByID retrieves a post with its ratings.
func (repo *servicePostRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ServicePost, error) {
	var postM model.ServicePostModel

	if err := repo.withRatings(ctx).Where("id = ?", id).First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServicePostNotFound
		}

		return nil, errors.Wrap(err, "failed to find service post by ID")
	}

	return toServicePostDomain(&postM), nil
}

// ListByProvider returns the provider's posts, newest first.
func (repo *servicePostRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.ServicePost, error) {
	return repo.list(repo.withRatings(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at DESC"))
}

// ListRecent returns the newest posts.
func (repo *servicePostRepository) ListRecent(ctx context.Context, limit int) ([]*entity.ServicePost, error) {
	return repo.list(repo.withRatings(ctx).
		Order("created_at DESC").
		Limit(limit))
}

// ListPopular ranks posts by rating count, then rating sum, both aggregated in the query.
func (repo *servicePostRepository) ListPopular(ctx context.Context, limit int) ([]*entity.ServicePost, error) {
	return repo.list(repo.withRatings(ctx).
		Model(&model.ServicePostModel{}).
		Select("service_posts.*").
		Joins("LEFT JOIN service_post_ratings ON service_post_ratings.service_post_id = service_posts.id").
		Group("service_posts.id").
		Order("COUNT(service_post_ratings.id) DESC").
		Order("COALESCE(SUM(service_post_ratings.stars), 0) DESC").
		Order("service_posts.created_at DESC").
		Limit(limit))
}

func (repo *servicePostRepository) withRatings(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Ratings", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	})
}

func (repo *servicePostRepository) list(query *gorm.DB) ([]*entity.ServicePost, error) {
	var postModels []*model.ServicePostModel

	if err := query.Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list service posts")
	}

	posts := make([]*entity.ServicePost, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toServicePostDomain(postM))
	}

	return posts, nil
}

// DeleteOwned removes a post owned by the provider together with its ratings.
func (repo *servicePostRepository) DeleteOwned(ctx context.Context, id, providerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND provider_id = ?", id, providerID).
		Delete(&model.ServicePostModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete service post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServicePostNotFound
	}

	if err := repo.db.WithContext(ctx).
		Where("service_post_id = ?", id).
		Delete(&model.RatingModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete service post ratings")
	}

	return nil
}

// AddRating appends a rating entry; the (post, consumer) index rejects a second one.
func (repo *servicePostRepository) AddRating(ctx context.Context, postID uuid.UUID, rating entity.Rating) error {
	ratingM := &model.RatingModel{
		ServicePostID: postID,
		ConsumerID:    rating.ConsumerID,
		Stars:         rating.Stars,
		CreatedAt:     rating.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRating
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrServicePostNotFound
		}

		return errors.Wrap(err, "failed to add rating")
	}

	return nil
}

// --- Mapper Functions ---

func fromServiceDomain(s *entity.Service) *model.ServiceModel {
	return &model.ServiceModel{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toServiceDomain(m *model.ServiceModel) *entity.Service {
	return &entity.Service{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromServicePostDomain(p *entity.ServicePost) *model.ServicePostModel {
	return &model.ServicePostModel{
		ID:         p.ID,
		ProviderID: p.ProviderID,
		ServiceID:  p.ServiceID,
		Message:    p.Message,
		Price:      p.Price,
		ImageURL:   p.ImageURL,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toServicePostDomain(m *model.ServicePostModel) *entity.ServicePost {
	ratings := make([]entity.Rating, 0, len(m.Ratings))
	for _, r := range m.Ratings {
		ratings = append(ratings, entity.Rating{
			ConsumerID: r.ConsumerID,
			Stars:      r.Stars,
			CreatedAt:  r.CreatedAt,
		})
	}

	return &entity.ServicePost{
		ID:         m.ID,
		ProviderID: m.ProviderID,
		ServiceID:  m.ServiceID,
		Message:    m.Message,
		Price:      m.Price,
		ImageURL:   m.ImageURL,
		Ratings:    ratings,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
