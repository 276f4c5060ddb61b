package impl

import (
	"context"
	"testing"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/domain/service"
	mockRepo "servicehub/internal/mocks/repository"
	mockSvc "servicehub/internal/mocks/service"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	txManager   *mockRepo.MockTransactionManager
	serviceRepo *mockRepo.MockServiceRepository
	postRepo    *mockRepo.MockServicePostRepository
	mediaStore  *mockSvc.MockMediaStore
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	fx := catalogServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		serviceRepo: mockRepo.NewMockServiceRepository(t),
		postRepo:    mockRepo.NewMockServicePostRepository(t),
		mediaStore:  mockSvc.NewMockMediaStore(t),
	}

	fx.service = NewCatalogService(CatalogServiceParams{
		TxManager:   fx.txManager,
		ServiceRepo: fx.serviceRepo,
		PostRepo:    fx.postRepo,
		MediaStore:  fx.mediaStore,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestCatalogService_CreateService(t *testing.T) {
	t.Run("trims input", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()

		fx.serviceRepo.EXPECT().
			Create(ctx, &entity.Service{Name: "Plumbing", Description: "Pipes and taps"}).
			Return(nil)

		svc, err := fx.service.CreateService(ctx, usecase.ServiceInput{Name: " Plumbing ", Description: "Pipes and taps "})

		require.NoError(t, err)
		assert.Equal(t, "Plumbing", svc.Name)
	})

	t.Run("name taken", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()

		fx.serviceRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrServiceNameTaken)

		_, err := fx.service.CreateService(ctx, usecase.ServiceInput{Name: "Plumbing"})

		assert.ErrorIs(t, err, domainerrors.ErrServiceAlreadyExists)
	})

	t.Run("blank name", func(t *testing.T) {
		fx := createTestCatalogService(t)

		_, err := fx.service.CreateService(context.Background(), usecase.ServiceInput{Name: "   "})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestCatalogService_DeleteService_InUse(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.serviceRepo.EXPECT().Delete(ctx, id).Return(repository.ErrServiceInUse)

	assert.ErrorIs(t, fx.service.DeleteService(ctx, id), domainerrors.ErrServiceInUse)
}

func TestCatalogService_CreatePost(t *testing.T) {
	provider := newAccount(entity.RoleServiceProvider, "vera")
	serviceID := uuid.New()
	image := &service.MediaUpload{FileName: "sink.jpg", ContentType: "image/jpeg", Data: []byte{0xff, 0xd8}}

	t.Run("uploads image and stores post", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()

		fx.serviceRepo.EXPECT().FindByID(ctx, serviceID).Return(&entity.Service{ID: serviceID}, nil)
		fx.mediaStore.EXPECT().Upload(ctx, servicePostFolder, *image).Return("https://cdn/sink.jpg", nil)
		fx.postRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ServicePost")).Return(nil)

		post, err := fx.service.CreatePost(ctx, provider.Principal(), usecase.CreatePostInput{
			ServiceID: serviceID,
			Message:   "Sink repairs",
			Price:     decimal.NewFromInt(30),
			Image:     image,
		})

		require.NoError(t, err)
		assert.Equal(t, provider.ID, post.ProviderID)
		assert.Equal(t, "https://cdn/sink.jpg", post.ImageURL)
	})

	t.Run("unknown service", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()

		fx.serviceRepo.EXPECT().FindByID(ctx, serviceID).Return(nil, repository.ErrServiceNotFound)

		_, err := fx.service.CreatePost(ctx, provider.Principal(), usecase.CreatePostInput{
			ServiceID: serviceID,
			Message:   "Sink repairs",
			Price:     decimal.NewFromInt(30),
			Image:     image,
		})

		assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		tests := []struct {
			name  string
			input usecase.CreatePostInput
		}{
			{name: "no message", input: usecase.CreatePostInput{Price: decimal.NewFromInt(1), Image: image}},
			{name: "zero price", input: usecase.CreatePostInput{Message: "x", Image: image}},
			{name: "no image", input: usecase.CreatePostInput{Message: "x", Price: decimal.NewFromInt(1)}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				fx := createTestCatalogService(t)

				_, err := fx.service.CreatePost(context.Background(), provider.Principal(), tt.input)

				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			})
		}
	})
}

func TestCatalogService_DeletePost_RemovesOrders(t *testing.T) {
	fx := createTestCatalogService(t)
	provider := newAccount(entity.RoleServiceProvider, "vera")
	postID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		postRepo := mockRepo.NewMockServicePostRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().NewServicePostRepository().Return(postRepo)
		factory.EXPECT().NewOrderRepository().Return(orderRepo)

		postRepo.EXPECT().FindByID(mock.Anything, postID).Return(&entity.ServicePost{ID: postID, ProviderID: provider.ID}, nil)
		orderRepo.EXPECT().DeleteByServicePost(mock.Anything, postID).Return(3, nil)
		postRepo.EXPECT().DeleteOwned(mock.Anything, postID, provider.ID).Return(nil)
	})

	require.NoError(t, fx.service.DeletePost(context.Background(), provider.Principal(), postID))
}

func TestCatalogService_DeletePost_OtherProvider(t *testing.T) {
	fx := createTestCatalogService(t)
	provider := newAccount(entity.RoleServiceProvider, "vera")
	postID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		postRepo := mockRepo.NewMockServicePostRepository(t)
		factory.EXPECT().NewServicePostRepository().Return(postRepo)

		postRepo.EXPECT().FindByID(mock.Anything, postID).Return(&entity.ServicePost{ID: postID, ProviderID: uuid.New()}, nil)
	})

	err := fx.service.DeletePost(context.Background(), provider.Principal(), postID)

	assert.ErrorIs(t, err, domainerrors.ErrServicePostNotFound)
}

func TestCatalogService_ListLimits(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "default", limit: 0, want: defaultListLimit},
		{name: "kept", limit: 5, want: 5},
		{name: "capped", limit: 1000, want: maxListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			ctx := context.Background()

			fx.postRepo.EXPECT().ListPopular(ctx, tt.want).Return(nil, nil)

			_, err := fx.service.ListPopularPosts(ctx, tt.limit)

			require.NoError(t, err)
		})
	}
}

type ratingServiceFixtures struct {
	service  usecase.RatingUsecase
	postRepo *mockRepo.MockServicePostRepository
}

func createTestRatingService(t *testing.T) ratingServiceFixtures {
	fx := ratingServiceFixtures{postRepo: mockRepo.NewMockServicePostRepository(t)}
	fx.service = NewRatingService(RatingServiceParams{PostRepo: fx.postRepo, Logger: newDiscardLogger()})

	return fx
}

func TestRatingService_Submit(t *testing.T) {
	consumer := newAccount(entity.RoleConsumer, "carl")
	postID := uuid.New()

	t.Run("appends rating", func(t *testing.T) {
		fx := createTestRatingService(t)
		ctx := context.Background()

		fx.postRepo.EXPECT().FindByID(ctx, postID).Return(&entity.ServicePost{
			ID:      postID,
			Ratings: []entity.Rating{{ConsumerID: uuid.New(), Stars: 3}},
		}, nil)
		fx.postRepo.EXPECT().
			AddRating(ctx, postID, mock.MatchedBy(func(r entity.Rating) bool {
				return r.ConsumerID == consumer.ID && r.Stars == 5
			})).
			Return(nil)

		post, err := fx.service.Submit(ctx, consumer.Principal(), postID, 5)

		require.NoError(t, err)
		assert.Equal(t, 2, post.RatingCount())
		assert.Equal(t, 8, post.RatingSum())
		assert.InDelta(t, 4.0, post.AverageRating(), 0.001)
	})

	t.Run("second rating conflicts", func(t *testing.T) {
		fx := createTestRatingService(t)
		ctx := context.Background()

		fx.postRepo.EXPECT().FindByID(ctx, postID).Return(&entity.ServicePost{
			ID:      postID,
			Ratings: []entity.Rating{{ConsumerID: consumer.ID, Stars: 4}},
		}, nil)

		_, err := fx.service.Submit(ctx, consumer.Principal(), postID, 2)

		assert.ErrorIs(t, err, domainerrors.ErrDuplicateRating)
	})

	t.Run("concurrent rating caught by index", func(t *testing.T) {
		fx := createTestRatingService(t)
		ctx := context.Background()

		fx.postRepo.EXPECT().FindByID(ctx, postID).Return(&entity.ServicePost{ID: postID}, nil)
		fx.postRepo.EXPECT().AddRating(ctx, postID, mock.Anything).Return(repository.ErrDuplicateRating)

		_, err := fx.service.Submit(ctx, consumer.Principal(), postID, 2)

		assert.ErrorIs(t, err, domainerrors.ErrDuplicateRating)
	})

	t.Run("stars out of range", func(t *testing.T) {
		fx := createTestRatingService(t)

		for _, stars := range []int{0, 6, -1} {
			_, err := fx.service.Submit(context.Background(), consumer.Principal(), postID, stars)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		}
	})

	t.Run("unknown post", func(t *testing.T) {
		fx := createTestRatingService(t)
		ctx := context.Background()

		fx.postRepo.EXPECT().FindByID(ctx, postID).Return(nil, repository.ErrServicePostNotFound)

		_, err := fx.service.Submit(ctx, consumer.Principal(), postID, 4)

		assert.ErrorIs(t, err, domainerrors.ErrServicePostNotFound)
	})
}
