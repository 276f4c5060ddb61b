package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type ratingService struct {
	postRepo repository.ServicePostRepository
	logger   *slog.Logger
}

// RatingServiceParams holds dependencies for RatingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	PostRepo repository.ServicePostRepository
	Logger   *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		postRepo: params.PostRepo,
		logger:   params.Logger,
	}
}

// Submit appends one rating per consumer and post. The unique index decides races
// the pre-check cannot see.
func (srv *ratingService) Submit(ctx context.Context, consumer entity.Principal, postID uuid.UUID, stars int) (*entity.ServicePost, error) {
	if stars < entity.MinRatingStars || stars > entity.MaxRatingStars {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("stars must be between %d and %d", entity.MinRatingStars, entity.MaxRatingStars))
	}

	post, err := srv.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, mapCatalogError(err)
	}
	if post.HasRatingFrom(consumer.ID) {
		return nil, domainerrors.ErrDuplicateRating
	}

	rating := entity.Rating{ConsumerID: consumer.ID, Stars: stars, CreatedAt: nowUTC()}
	if err := srv.postRepo.AddRating(ctx, postID, rating); err != nil {
		return nil, mapCatalogError(err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Rating added",
		slog.Any("postID", postID), slog.Any("consumerID", consumer.ID), slog.Int("stars", stars))

	post.Ratings = append(post.Ratings, rating)

	return post, nil
}
