package usecase

import (
	"context"

	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/service"

	"github.com/google/uuid"
)

// CNICInput carries the identity number and its two scanned images.
type CNICInput struct {
	Number string
	Images []service.MediaUpload
}

// ProviderUsecase defines the service provider profile operations.
type ProviderUsecase interface {
	SetWorkingHours(ctx context.Context, provider entity.Principal, hours []entity.WorkingHour) (*entity.Account, error)
	AddCNICDetails(ctx context.Context, provider entity.Principal, input CNICInput) (*entity.Account, error)
	AddListedServices(ctx context.Context, provider entity.Principal, serviceIDs []uuid.UUID) (*entity.Account, error)

	// VerifyProvider is performed by an admin and notifies the provider.
	VerifyProvider(ctx context.Context, admin entity.Principal, providerID uuid.UUID) (*entity.Account, error)
}
