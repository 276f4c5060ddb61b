package impl

import (
	"context"
	"log/slog"
	"strings"

	"servicehub/config"
	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/domain/service"
	"servicehub/internal/errors"
	"servicehub/internal/usecase"

	"go.uber.org/fx"
)

const avatarFolder = "avatars"

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo  repository.AccountRepository
	outboxRepo   repository.OutboxRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mediaStore   service.MediaStore
	versionCache service.TokenVersionCache
	frontendURL  string
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	OutboxRepo   repository.OutboxRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	MediaStore   service.MediaStore
	VersionCache service.TokenVersionCache
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	frontendURL := ""
	if params.Config != nil && params.Config.Frontend != nil {
		frontendURL = strings.TrimRight(params.Config.Frontend.BaseURL, "/")
	}

	return &accountService{
		accountRepo:  params.AccountRepo,
		outboxRepo:   params.OutboxRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mediaStore:   params.MediaStore,
		versionCache: params.VersionCache,
		frontendURL:  frontendURL,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates an account of the requested role.
func (srv *accountService) SignUp(ctx context.Context, input usecase.SignUpInput) (*entity.Account, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown role")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	account := &entity.Account{
		Role:         input.Role,
		Name:         strings.TrimSpace(input.Name),
		Email:        normalizeEmail(input.Email),
		PasswordHash: hash,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountEmailTaken) {
			return nil, domainerrors.ErrEmailAlreadyRegistered
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account created", slog.String("role", account.Role.String()), slog.Any("accountID", account.ID))

	return account, nil
}

// SignIn checks the credentials and issues a session token bound to the current token version.
func (srv *accountService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SessionOutput, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, input.Role, normalizeEmail(input.Email))
	if err != nil {
		return nil, mapAccountError(err)
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Debug("Sign in rejected", slog.String("role", input.Role.String()), slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, expiresAt, err := srv.tokenService.IssueSession(account.Role, account.ID, account.TokenVersion)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.SessionOutput{Token: token, ExpiresAt: expiresAt, Account: account}, nil
}

// Authenticate validates the token of the role and compares its version with the stored one.
func (srv *accountService) Authenticate(ctx context.Context, role entity.Role, token string) (*entity.Principal, error) {
	claims, err := srv.tokenService.ValidateSession(role, token)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	version, err := srv.currentTokenVersion(ctx, role, claims)
	if err != nil {
		return nil, err
	}

	if version != claims.TokenVersion {
		return nil, domainerrors.ErrSessionRevoked
	}

	return &entity.Principal{ID: claims.AccountID, Role: role}, nil
}

func (srv *accountService) currentTokenVersion(ctx context.Context, role entity.Role, claims *service.Claims) (int, error) {
	version, found, err := srv.versionCache.Get(ctx, role, claims.AccountID)
	if err != nil {
		srv.log(ctx).Warn("Token version cache read failed", slog.Any("error", err))
	}
	if found {
		return version, nil
	}

	version, err = srv.accountRepo.TokenVersion(ctx, role, claims.AccountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return 0, domainerrors.ErrSessionRevoked
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to load token version")
	}

	if err := srv.versionCache.Set(ctx, role, claims.AccountID, version); err != nil {
		srv.log(ctx).Warn("Token version cache write failed", slog.Any("error", err))
	}

	return version, nil
}

// LoadCurrent returns the principal's account.
func (srv *accountService) LoadCurrent(ctx context.Context, principal entity.Principal) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, principal.Role, principal.ID)
	if err != nil {
		return nil, mapAccountError(err)
	}

	return account, nil
}

// SendPasswordReset queues the reset email. The link embeds a token bound to the current version,
// so it stops working once any reset succeeds.
func (srv *accountService) SendPasswordReset(ctx context.Context, role entity.Role, email string) error {
	account, err := srv.accountRepo.FindByEmail(ctx, role, normalizeEmail(email))
	if err != nil {
		return mapAccountError(err)
	}

	token, err := srv.tokenService.IssueReset(role, account.ID, account.TokenVersion)
	if err != nil {
		return errors.Wrap(err, "failed to issue reset token")
	}

	job := entity.EmailJob{
		To:          account.ContactEmail(),
		Subject:     "Reset Password",
		Template:    entity.EmailTemplatePasswordReset,
		Intro:       "A password reset was requested for your " + role.DisplayName() + " account",
		ActionLabel: "Reset Password",
		Fields:      []entity.EmailField{{Label: "Name", Value: account.DisplayName()}},
		Link:        srv.resetLink(role, token),
	}

	if err := enqueueEmail(ctx, srv.outboxRepo, job, nowUTC()); err != nil {
		return err
	}

	srv.log(ctx).Info("Password reset email queued", slog.String("role", role.String()), slog.Any("accountID", account.ID))

	return nil
}

func (srv *accountService) resetLink(role entity.Role, token string) string {
	return srv.frontendURL + "/" + rolePathSegment(role) + "-reset-password/" + token
}

// ResetPassword stores the new hash and bumps the token version, revoking every session.
func (srv *accountService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	claims, err := srv.tokenService.ValidateReset(input.Role, input.Token)
	if err != nil {
		return domainerrors.ErrInvalidToken
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	version, err := srv.accountRepo.ResetPassword(ctx, input.Role, claims.AccountID, hash, claims.TokenVersion)
	if err != nil {
		if errors.Is(err, repository.ErrTokenVersionChanged) {
			return domainerrors.ErrInvalidToken.WithDetails("reset link has already been used")
		}

		return mapAccountError(err)
	}

	// Storing the new version, rather than deleting the key, stops a concurrent
	// Authenticate from caching the old one after this commit.
	if err := srv.versionCache.Set(ctx, input.Role, claims.AccountID, version); err != nil {
		srv.log(ctx).Warn("Token version cache write failed", slog.Any("error", err))
		if err := srv.versionCache.Invalidate(ctx, input.Role, claims.AccountID); err != nil {
			srv.log(ctx).Warn("Token version cache invalidation failed", slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Password reset", slog.String("role", input.Role.String()), slog.Any("accountID", claims.AccountID))

	return nil
}

// UpdateAvatarAndPhone uploads the avatar when present and stores the contact fields.
// Empty inputs keep the stored values.
func (srv *accountService) UpdateAvatarAndPhone(ctx context.Context, principal entity.Principal, input usecase.UpdateContactInput) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, principal.Role, principal.ID)
	if err != nil {
		return nil, mapAccountError(err)
	}

	phone := account.Phone
	if input.Phone != "" {
		phone = input.Phone
	}

	avatarURL := account.AvatarURL
	if input.Avatar != nil {
		avatarURL, err = uploadMedia(ctx, srv.mediaStore, avatarFolder, *input.Avatar)
		if err != nil {
			return nil, err
		}
	}

	if err := srv.accountRepo.UpdateContact(ctx, principal.Role, principal.ID, phone, avatarURL); err != nil {
		return nil, mapAccountError(err)
	}

	account.Phone = phone
	account.AvatarURL = avatarURL

	return account, nil
}

// UpdateAddress stores the postal address of a consumer or provider.
func (srv *accountService) UpdateAddress(ctx context.Context, principal entity.Principal, address string) (*entity.Account, error) {
	if principal.Role == entity.RoleAdmin {
		return nil, domainerrors.ErrForbidden.WithDetails("admins have no address")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("address is required")
	}

	if err := srv.accountRepo.UpdateAddress(ctx, principal.Role, principal.ID, address); err != nil {
		return nil, mapAccountError(err)
	}

	return srv.LoadCurrent(ctx, principal)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// rolePathSegment is the URL prefix used by the frontend for the role.
func rolePathSegment(role entity.Role) string {
	switch role {
	case entity.RoleServiceProvider:
		return "service-provider"
	default:
		return role.String()
	}
}

func mapAccountError(err error) error {
	switch {
	case errors.Is(err, repository.ErrAccountNotFound):
		return domainerrors.ErrAccountNotFound
	case errors.Is(err, repository.ErrAccountEmailTaken):
		return domainerrors.ErrEmailAlreadyRegistered
	default:
		return errors.Wrap(err, "account operation failed")
	}
}

// uploadMedia stores the file and maps store errors to request errors.
func uploadMedia(ctx context.Context, store service.MediaStore, folder string, file service.MediaUpload) (string, error) {
	url, err := store.Upload(ctx, folder, file)
	if errors.Is(err, service.ErrUnsupportedMediaType) {
		return "", domainerrors.ErrInvalidInput.WithDetails(file.FileName + ": only png, jpeg, webp and gif images are accepted")
	}
	if err != nil {
		return "", domainerrors.ErrMediaUploadFailed.WithDetails(err.Error())
	}

	return url, nil
}
