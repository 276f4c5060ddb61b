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

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Create persists a new account. Provider accounts also get their profile row.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("ProviderProfile", "WorkingHours", "ListedServices").Create(accountM).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				return repository.ErrAccountEmailTaken
			}

			return errors.Wrap(err, "failed to create account")
		}

		if account.Role != entity.RoleServiceProvider {
			return nil
		}

		profileM := &model.ProviderProfileModel{AccountID: accountM.ID, CNICImages: []string{}}
		if err := tx.Create(profileM).Error; err != nil {
			return errors.Wrap(err, "failed to create provider profile")
		}
		accountM.ProviderProfile = profileM

		return nil
	})
	if err != nil {
		return err
	}

	*account = *toAccountDomain(accountM)

	return nil
}

// FindByID retrieves an account of the role by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, role entity.Role, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, role, "id = ?", id)
}

// FindByEmail retrieves an account of the role by its email.
func (repo *accountRepository) FindByEmail(ctx context.Context, role entity.Role, email string) (*entity.Account, error) {
	return repo.findOne(ctx, role, "email = ?", email)
}

func (repo *accountRepository) findOne(ctx context.Context, role entity.Role, query string, arg any) (*entity.Account, error) {
	var accountM model.AccountModel

	db := repo.db.WithContext(ctx)
	if role == entity.RoleServiceProvider {
		db = db.Preload("ProviderProfile").
			Preload("WorkingHours", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
			Preload("ListedServices", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") })
	}

	if err := db.Where("role = ?", role).Where(query, arg).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return toAccountDomain(&accountM), nil
}

// TokenVersion returns only the stored token version of an account.
func (repo *accountRepository) TokenVersion(ctx context.Context, role entity.Role, id uuid.UUID) (int, error) {
	var versions []int

	if err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ? AND role = ?", id, role).
		Limit(1).
		Pluck("token_version", &versions).Error; err != nil {
		return 0, errors.Wrap(err, "failed to read token version")
	}
	if len(versions) == 0 {
		return 0, repository.ErrAccountNotFound
	}

	return versions[0], nil
}

// UpdateContact stores a new phone number and avatar URL.
func (repo *accountRepository) UpdateContact(ctx context.Context, role entity.Role, id uuid.UUID, phone, avatarURL string) error {
	return repo.update(ctx, role, id, map[string]any{
		"phone":      phone,
		"avatar_url": avatarURL,
	})
}

// UpdateAddress stores a new postal address.
func (repo *accountRepository) UpdateAddress(ctx context.Context, role entity.Role, id uuid.UUID, address string) error {
	return repo.update(ctx, role, id, map[string]any{"address": address})
}

func (repo *accountRepository) update(ctx context.Context, role entity.Role, id uuid.UUID, values map[string]any) error {
	values["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ? AND role = ?", id, role).
		Updates(values)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// ResetPassword stores the new hash and bumps the token version in one conditional update.
func (repo *accountRepository) ResetPassword(ctx context.Context, role entity.Role, id uuid.UUID, passwordHash string, expectedVersion int) (int, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ? AND role = ? AND token_version = ?", id, role, expectedVersion).
		Updates(map[string]any{
			"password_hash": passwordHash,
			"token_version": gorm.Expr("token_version + 1"),
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to reset password")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.TokenVersion(ctx, role, id); err != nil {
			return 0, err
		}

		return 0, repository.ErrTokenVersionChanged
	}

	return expectedVersion + 1, nil
}

// providerProfileRepository implements the repository.ProviderProfileRepository interface.
type providerProfileRepository struct {
	db *gorm.DB
}

// NewProviderProfileRepository is the constructor for providerProfileRepository.
func NewProviderProfileRepository(db *gorm.DB) repository.ProviderProfileRepository {
	return &providerProfileRepository{db: db}
}

// AddWorkingHours inserts all entries in one statement, so a duplicate day writes nothing.
func (repo *providerProfileRepository) AddWorkingHours(ctx context.Context, providerID uuid.UUID, hours []entity.WorkingHour) error {
	if len(hours) == 0 {
		return nil
	}

	hourModels := make([]*model.WorkingHourModel, 0, len(hours))
	for _, h := range hours {
		hourModels = append(hourModels, &model.WorkingHourModel{
			ProviderID: providerID,
			DayOfWeek:  string(h.Day),
			Opens:      h.Opens,
			Closes:     h.Closes,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&hourModels).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrWorkingDayExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to add working hours")
	}

	return nil
}

// SetCNIC replaces the identity number and its images.
func (repo *providerProfileRepository) SetCNIC(ctx context.Context, providerID uuid.UUID, number string, images []string) error {
	return repo.update(ctx, providerID, map[string]any{
		"cnic_number": number,
		"cnic_images": model.StringList(images),
	})
}

// AddListedServices links catalog services to the provider.
func (repo *providerProfileRepository) AddListedServices(ctx context.Context, providerID uuid.UUID, serviceIDs []uuid.UUID) error {
	if len(serviceIDs) == 0 {
		return nil
	}

	links := make([]*model.ProviderServiceModel, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		links = append(links, &model.ProviderServiceModel{ProviderID: providerID, ServiceID: id})
	}

	if err := repo.db.WithContext(ctx).Create(&links).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrListedServiceExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrServiceNotFound
		}

		return errors.Wrap(err, "failed to add listed services")
	}

	return nil
}

// MarkVerified sets the admin verification flag.
func (repo *providerProfileRepository) MarkVerified(ctx context.Context, providerID uuid.UUID) error {
	return repo.update(ctx, providerID, map[string]any{"is_account_verified": true})
}

func (repo *providerProfileRepository) update(ctx context.Context, providerID uuid.UUID, values map[string]any) error {
	values["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ProviderProfileModel{}).
		Where("account_id = ?", providerID).
		Updates(values)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update provider profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---

func fromAccountDomain(a *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:              a.ID,
		Role:            string(a.Role),
		Name:            a.Name,
		Email:           a.Email,
		PasswordHash:    a.PasswordHash,
		Phone:           a.Phone,
		AvatarURL:       a.AvatarURL,
		Address:         a.Address,
		IsEmailVerified: a.IsEmailVerified,
		TokenVersion:    a.TokenVersion,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func toAccountDomain(m *model.AccountModel) *entity.Account {
	account := &entity.Account{
		ID:              m.ID,
		Role:            entity.Role(m.Role),
		Name:            m.Name,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		Phone:           m.Phone,
		AvatarURL:       m.AvatarURL,
		Address:         m.Address,
		IsEmailVerified: m.IsEmailVerified,
		TokenVersion:    m.TokenVersion,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}

	if account.Role != entity.RoleServiceProvider {
		return account
	}

	profile := &entity.ProviderProfile{
		CNICImages:       []string{},
		ListedServiceIDs: make([]uuid.UUID, 0, len(m.ListedServices)),
		WorkingHours:     make([]entity.WorkingHour, 0, len(m.WorkingHours)),
	}
	if m.ProviderProfile != nil {
		profile.CNICNumber = m.ProviderProfile.CNICNumber
		profile.IsAccountVerified = m.ProviderProfile.IsAccountVerified
		if len(m.ProviderProfile.CNICImages) > 0 {
			profile.CNICImages = []string(m.ProviderProfile.CNICImages)
		}
	}
	for _, link := range m.ListedServices {
		profile.ListedServiceIDs = append(profile.ListedServiceIDs, link.ServiceID)
	}
	for _, h := range m.WorkingHours {
		profile.WorkingHours = append(profile.WorkingHours, entity.WorkingHour{
			Day:    entity.Weekday(h.DayOfWeek),
			Opens:  h.Opens,
			Closes: h.Closes,
		})
	}
	account.Provider = profile

	return account
}
