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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type providerServiceFixtures struct {
	service     usecase.ProviderUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	profileRepo *mockRepo.MockProviderProfileRepository
	serviceRepo *mockRepo.MockServiceRepository
	mediaStore  *mockSvc.MockMediaStore
	metrics     *recordingMetrics
}

func createTestProviderService(t *testing.T) providerServiceFixtures {
	fx := providerServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		profileRepo: mockRepo.NewMockProviderProfileRepository(t),
		serviceRepo: mockRepo.NewMockServiceRepository(t),
		mediaStore:  mockSvc.NewMockMediaStore(t),
		metrics:     &recordingMetrics{},
	}

	fx.service = NewProviderService(ProviderServiceParams{
		TxManager:   fx.txManager,
		AccountRepo: fx.accountRepo,
		ProfileRepo: fx.profileRepo,
		ServiceRepo: fx.serviceRepo,
		MediaStore:  fx.mediaStore,
		Metrics:     fx.metrics,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestProviderService_SetWorkingHours(t *testing.T) {
	provider := newAccount(entity.RoleServiceProvider, "vera")
	monday := entity.WorkingHour{Day: entity.Monday, Opens: "09:00", Closes: "17:00"}

	t.Run("success", func(t *testing.T) {
		fx := createTestProviderService(t)
		ctx := context.Background()

		fx.profileRepo.EXPECT().AddWorkingHours(ctx, provider.ID, []entity.WorkingHour{monday}).Return(nil)
		fx.accountRepo.EXPECT().FindByID(ctx, entity.RoleServiceProvider, provider.ID).Return(provider, nil)

		account, err := fx.service.SetWorkingHours(ctx, provider.Principal(), []entity.WorkingHour{monday})

		require.NoError(t, err)
		assert.Equal(t, provider.ID, account.ID)
	})

	t.Run("duplicate day in request", func(t *testing.T) {
		fx := createTestProviderService(t)

		_, err := fx.service.SetWorkingHours(context.Background(), provider.Principal(), []entity.WorkingHour{monday, monday})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("closing before opening", func(t *testing.T) {
		fx := createTestProviderService(t)
		bad := entity.WorkingHour{Day: entity.Friday, Opens: "18:00", Closes: "08:00"}

		_, err := fx.service.SetWorkingHours(context.Background(), provider.Principal(), []entity.WorkingHour{bad})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("day already stored", func(t *testing.T) {
		fx := createTestProviderService(t)
		ctx := context.Background()

		fx.profileRepo.EXPECT().AddWorkingHours(ctx, provider.ID, mock.Anything).Return(repository.ErrWorkingDayExists)

		_, err := fx.service.SetWorkingHours(ctx, provider.Principal(), []entity.WorkingHour{monday})

		assert.ErrorIs(t, err, domainerrors.ErrDuplicateWorkingDay)
	})
}

func TestProviderService_AddCNICDetails(t *testing.T) {
	provider := newAccount(entity.RoleServiceProvider, "vera")
	front := service.MediaUpload{FileName: "front.png", Data: []byte{1}}
	back := service.MediaUpload{FileName: "back.png", Data: []byte{2}}

	t.Run("uploads both images", func(t *testing.T) {
		fx := createTestProviderService(t)
		ctx := context.Background()

		fx.mediaStore.EXPECT().Upload(ctx, cnicFolder, front).Return("https://cdn/front.png", nil)
		fx.mediaStore.EXPECT().Upload(ctx, cnicFolder, back).Return("https://cdn/back.png", nil)
		fx.profileRepo.EXPECT().
			SetCNIC(ctx, provider.ID, "12345-1234567-1", []string{"https://cdn/front.png", "https://cdn/back.png"}).
			Return(nil)
		fx.accountRepo.EXPECT().FindByID(ctx, entity.RoleServiceProvider, provider.ID).Return(provider, nil)

		_, err := fx.service.AddCNICDetails(ctx, provider.Principal(), usecase.CNICInput{
			Number: "12345-1234567-1",
			Images: []service.MediaUpload{front, back},
		})

		require.NoError(t, err)
	})

	t.Run("needs exactly two images", func(t *testing.T) {
		fx := createTestProviderService(t)

		_, err := fx.service.AddCNICDetails(context.Background(), provider.Principal(), usecase.CNICInput{
			Number: "12345-1234567-1",
			Images: []service.MediaUpload{front},
		})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("malformed number", func(t *testing.T) {
		fx := createTestProviderService(t)

		_, err := fx.service.AddCNICDetails(context.Background(), provider.Principal(), usecase.CNICInput{
			Number: "1234512345671",
			Images: []service.MediaUpload{front, back},
		})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestProviderService_AddListedServices(t *testing.T) {
	provider := newAccount(entity.RoleServiceProvider, "vera")
	serviceID := uuid.New()

	t.Run("unknown service", func(t *testing.T) {
		fx := createTestProviderService(t)
		ctx := context.Background()

		fx.serviceRepo.EXPECT().CountByIDs(ctx, []uuid.UUID{serviceID}).Return(0, nil)

		_, err := fx.service.AddListedServices(ctx, provider.Principal(), []uuid.UUID{serviceID})

		assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
	})

	t.Run("duplicate in request", func(t *testing.T) {
		fx := createTestProviderService(t)

		_, err := fx.service.AddListedServices(context.Background(), provider.Principal(), []uuid.UUID{serviceID, serviceID})

		assert.ErrorIs(t, err, domainerrors.ErrDuplicateListedService)
	})

	t.Run("already listed", func(t *testing.T) {
		fx := createTestProviderService(t)
		ctx := context.Background()

		fx.serviceRepo.EXPECT().CountByIDs(ctx, []uuid.UUID{serviceID}).Return(1, nil)
		fx.profileRepo.EXPECT().AddListedServices(ctx, provider.ID, []uuid.UUID{serviceID}).Return(repository.ErrListedServiceExists)

		_, err := fx.service.AddListedServices(ctx, provider.Principal(), []uuid.UUID{serviceID})

		assert.ErrorIs(t, err, domainerrors.ErrDuplicateListedService)
	})
}

func TestProviderService_VerifyProvider_NotifiesProvider(t *testing.T) {
	fx := createTestProviderService(t)
	provider := newAccount(entity.RoleServiceProvider, "vera")
	provider.Provider = &entity.ProviderProfile{}
	admin := newAccount(entity.RoleAdmin, "ada")

	var captured *capturedFanout
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		profileRepo := mockRepo.NewMockProviderProfileRepository(t)
		factory.EXPECT().NewAccountRepository().Return(accountRepo)
		factory.EXPECT().NewProviderProfileRepository().Return(profileRepo)

		accountRepo.EXPECT().FindByID(mock.Anything, entity.RoleServiceProvider, provider.ID).Return(provider, nil)
		accountRepo.EXPECT().FindByID(mock.Anything, entity.RoleAdmin, admin.ID).Return(admin, nil)
		profileRepo.EXPECT().MarkVerified(mock.Anything, provider.ID).Return(nil)

		captured = expectFanout(t, factory)
	})

	account, err := fx.service.VerifyProvider(context.Background(), admin.Principal(), provider.ID)

	require.NoError(t, err)
	assert.True(t, account.Provider.IsAccountVerified)
	assert.Equal(t, provider.Ref(), captured.notifications[0].ReceivedBy)
	assert.Equal(t, "Verified By", captured.emailJob(t).ActionLabel)
	assert.Equal(t, []string{"account"}, fx.metrics.fanouts)
}

func TestProviderService_VerifyProvider_AlreadyVerified(t *testing.T) {
	fx := createTestProviderService(t)
	provider := newAccount(entity.RoleServiceProvider, "vera")
	provider.Provider = &entity.ProviderProfile{IsAccountVerified: true}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().NewAccountRepository().Return(accountRepo)

		accountRepo.EXPECT().FindByID(mock.Anything, entity.RoleServiceProvider, provider.ID).Return(provider, nil)
	})

	_, err := fx.service.VerifyProvider(context.Background(), newAccount(entity.RoleAdmin, "ada").Principal(), provider.ID)

	require.NoError(t, err)
	assert.Empty(t, fx.metrics.fanouts)
}
