package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"servicehub/config"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/domain/service"
	mockRepo "servicehub/internal/mocks/repository"
	mockSvc "servicehub/internal/mocks/service"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	accountRepo  *mockRepo.MockAccountRepository
	outboxRepo   *mockRepo.MockOutboxRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	mediaStore   *mockSvc.MockMediaStore
	versionCache *mockSvc.MockTokenVersionCache
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	fx := accountServiceFixtures{
		accountRepo:  mockRepo.NewMockAccountRepository(t),
		outboxRepo:   mockRepo.NewMockOutboxRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		mediaStore:   mockSvc.NewMockMediaStore(t),
		versionCache: mockSvc.NewMockTokenVersionCache(t),
	}

	fx.service = NewAccountService(AccountServiceParams{
		AccountRepo:  fx.accountRepo,
		OutboxRepo:   fx.outboxRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		MediaStore:   fx.mediaStore,
		VersionCache: fx.versionCache,
		Config:       &config.Config{Frontend: &config.FrontendConfig{BaseURL: "https://app.example.com/"}},
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestAccountService_SignUp_NormalizesEmail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Password123").Return("hashed", nil)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(a *entity.Account) bool {
			return a.Email == "jane@example.com" && a.Role == entity.RoleConsumer && a.PasswordHash == "hashed"
		})).
		Return(nil)

	account, err := fx.service.SignUp(ctx, usecase.SignUpInput{
		Role:     entity.RoleConsumer,
		Name:     "Jane",
		Email:    "  Jane@Example.COM ",
		Password: "Password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", account.Email)
	assert.False(t, account.IsEmailVerified)
}

func TestAccountService_SignUp_EmailTaken(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.accountRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrAccountEmailTaken)

	_, err := fx.service.SignUp(ctx, usecase.SignUpInput{Role: entity.RoleAdmin, Email: "a@b.co", Password: "Password123"})

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAccountService_SignIn(t *testing.T) {
	account := newAccount(entity.RoleServiceProvider, "vera")
	account.PasswordHash = "hashed"
	account.TokenVersion = 3

	t.Run("success", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		expiresAt := time.Now().Add(time.Hour)

		fx.accountRepo.EXPECT().FindByEmail(ctx, entity.RoleServiceProvider, account.Email).Return(account, nil)
		fx.hasher.EXPECT().Check("Password123", "hashed").Return(true)
		fx.tokenService.EXPECT().IssueSession(entity.RoleServiceProvider, account.ID, 3).Return("token", expiresAt, nil)

		session, err := fx.service.SignIn(ctx, usecase.SignInInput{
			Role:     entity.RoleServiceProvider,
			Email:    strings.ToUpper(account.Email),
			Password: "Password123",
		})

		require.NoError(t, err)
		assert.Equal(t, "token", session.Token)
		assert.Equal(t, expiresAt, session.ExpiresAt)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.accountRepo.EXPECT().FindByEmail(ctx, entity.RoleServiceProvider, account.Email).Return(account, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := fx.service.SignIn(ctx, usecase.SignInInput{Role: entity.RoleServiceProvider, Email: account.Email, Password: "nope"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.accountRepo.EXPECT().FindByEmail(ctx, entity.RoleServiceProvider, "ghost@example.com").Return(nil, repository.ErrAccountNotFound)

		_, err := fx.service.SignIn(ctx, usecase.SignInInput{Role: entity.RoleServiceProvider, Email: "ghost@example.com"})

		assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	})
}

func TestAccountService_Authenticate(t *testing.T) {
	accountID := uuid.New()
	claims := &service.Claims{AccountID: accountID, Role: entity.RoleConsumer, TokenVersion: 2}

	t.Run("cache hit", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateSession(entity.RoleConsumer, "token").Return(claims, nil)
		fx.versionCache.EXPECT().Get(ctx, entity.RoleConsumer, accountID).Return(2, true, nil)

		principal, err := fx.service.Authenticate(ctx, entity.RoleConsumer, "token")

		require.NoError(t, err)
		assert.Equal(t, accountID, principal.ID)
		assert.Equal(t, entity.RoleConsumer, principal.Role)
	})

	t.Run("cache miss reads database and fills cache", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateSession(entity.RoleConsumer, "token").Return(claims, nil)
		fx.versionCache.EXPECT().Get(ctx, entity.RoleConsumer, accountID).Return(0, false, nil)
		fx.accountRepo.EXPECT().TokenVersion(ctx, entity.RoleConsumer, accountID).Return(2, nil)
		fx.versionCache.EXPECT().Set(ctx, entity.RoleConsumer, accountID, 2).Return(nil)

		_, err := fx.service.Authenticate(ctx, entity.RoleConsumer, "token")

		require.NoError(t, err)
	})

	t.Run("cache failure falls back to database", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateSession(entity.RoleConsumer, "token").Return(claims, nil)
		fx.versionCache.EXPECT().Get(ctx, entity.RoleConsumer, accountID).Return(0, false, errors.New("redis down"))
		fx.accountRepo.EXPECT().TokenVersion(ctx, entity.RoleConsumer, accountID).Return(2, nil)
		fx.versionCache.EXPECT().Set(ctx, entity.RoleConsumer, accountID, 2).Return(errors.New("redis down"))

		_, err := fx.service.Authenticate(ctx, entity.RoleConsumer, "token")

		require.NoError(t, err)
	})

	t.Run("version changed after password reset", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateSession(entity.RoleConsumer, "token").Return(claims, nil)
		fx.versionCache.EXPECT().Get(ctx, entity.RoleConsumer, accountID).Return(3, true, nil)

		_, err := fx.service.Authenticate(ctx, entity.RoleConsumer, "token")

		assert.ErrorIs(t, err, domainerrors.ErrSessionRevoked)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAccountService(t)

		fx.tokenService.EXPECT().ValidateSession(entity.RoleAdmin, "token").Return(nil, errors.New("signature is invalid"))

		_, err := fx.service.Authenticate(context.Background(), entity.RoleAdmin, "token")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})
}

func TestAccountService_SendPasswordReset_QueuesEmail(t *testing.T) {
	fx := createTestAccountService(t)
	account := newAccount(entity.RoleServiceProvider, "vera")
	account.TokenVersion = 4
	ctx := context.Background()

	var queued []*entity.OutboxEvent
	fx.accountRepo.EXPECT().FindByEmail(ctx, entity.RoleServiceProvider, account.Email).Return(account, nil)
	fx.tokenService.EXPECT().IssueReset(entity.RoleServiceProvider, account.ID, 4).Return("reset-token", nil)
	fx.outboxRepo.EXPECT().
		Enqueue(ctx, mock.Anything).
		Run(func(_ context.Context, events ...*entity.OutboxEvent) {
			queued = append(queued, events...)
		}).
		Return(nil)

	require.NoError(t, fx.service.SendPasswordReset(ctx, entity.RoleServiceProvider, account.Email))

	captured := &capturedFanout{events: queued}
	job := captured.emailJob(t)
	assert.Equal(t, account.Email, job.To)
	assert.Equal(t, entity.EmailTemplatePasswordReset, job.Template)
	assert.Equal(t, "https://app.example.com/service-provider-reset-password/reset-token", job.Link)
}

func TestAccountService_ResetPassword(t *testing.T) {
	accountID := uuid.New()
	claims := &service.Claims{AccountID: accountID, Role: entity.RoleConsumer, TokenVersion: 1, Type: service.TokenTypeReset}
	input := usecase.ResetPasswordInput{Role: entity.RoleConsumer, Token: "reset-token", Password: "NewPassword1"}

	t.Run("success caches the new version", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateReset(entity.RoleConsumer, "reset-token").Return(claims, nil)
		fx.hasher.EXPECT().Hash("NewPassword1").Return("new-hash", nil)
		fx.accountRepo.EXPECT().ResetPassword(ctx, entity.RoleConsumer, accountID, "new-hash", 1).Return(2, nil)
		fx.versionCache.EXPECT().Set(ctx, entity.RoleConsumer, accountID, 2).Return(nil)

		require.NoError(t, fx.service.ResetPassword(ctx, input))
	})

	t.Run("cache write failure falls back to invalidation", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateReset(entity.RoleConsumer, "reset-token").Return(claims, nil)
		fx.hasher.EXPECT().Hash("NewPassword1").Return("new-hash", nil)
		fx.accountRepo.EXPECT().ResetPassword(ctx, entity.RoleConsumer, accountID, "new-hash", 1).Return(2, nil)
		fx.versionCache.EXPECT().Set(ctx, entity.RoleConsumer, accountID, 2).Return(errors.New("redis down"))
		fx.versionCache.EXPECT().Invalidate(ctx, entity.RoleConsumer, accountID).Return(nil)

		require.NoError(t, fx.service.ResetPassword(ctx, input))
	})

	t.Run("link already used", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateReset(entity.RoleConsumer, "reset-token").Return(claims, nil)
		fx.hasher.EXPECT().Hash("NewPassword1").Return("new-hash", nil)
		fx.accountRepo.EXPECT().ResetPassword(ctx, entity.RoleConsumer, accountID, "new-hash", 1).Return(0, repository.ErrTokenVersionChanged)

		assert.ErrorIs(t, fx.service.ResetPassword(ctx, input), domainerrors.ErrInvalidToken)
	})
}

func TestAccountService_UpdateAvatarAndPhone(t *testing.T) {
	account := newAccount(entity.RoleConsumer, "carl")
	account.Phone = "+923001234567"
	avatar := &service.MediaUpload{FileName: "me.png", ContentType: "image/png", Data: []byte{1}}

	t.Run("uploads avatar and keeps phone", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		stored := *account

		fx.accountRepo.EXPECT().FindByID(ctx, entity.RoleConsumer, account.ID).Return(&stored, nil)
		fx.mediaStore.EXPECT().Upload(ctx, avatarFolder, *avatar).Return("https://cdn.example.com/avatars/x.png", nil)
		fx.accountRepo.EXPECT().
			UpdateContact(ctx, entity.RoleConsumer, account.ID, "+923001234567", "https://cdn.example.com/avatars/x.png").
			Return(nil)

		updated, err := fx.service.UpdateAvatarAndPhone(ctx, account.Principal(), usecase.UpdateContactInput{Avatar: avatar})

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/avatars/x.png", updated.AvatarURL)
	})

	t.Run("unsupported image", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		stored := *account

		fx.accountRepo.EXPECT().FindByID(ctx, entity.RoleConsumer, account.ID).Return(&stored, nil)
		fx.mediaStore.EXPECT().Upload(ctx, avatarFolder, *avatar).Return("", service.ErrUnsupportedMediaType)

		_, err := fx.service.UpdateAvatarAndPhone(ctx, account.Principal(), usecase.UpdateContactInput{Avatar: avatar})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})
}

func TestAccountService_UpdateAddress_AdminForbidden(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.UpdateAddress(context.Background(), newAccount(entity.RoleAdmin, "ada").Principal(), "1 Main St")

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
