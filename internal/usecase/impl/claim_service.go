package impl

import (
	"context"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/errors"

	"github.com/google/uuid"
)

// claimTarget checks the provider a dispute or refund is filed against and, when given,
// that the order links the same consumer and provider.
func claimTarget(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	orderRepo repository.OrderRepository,
	consumer entity.Principal,
	providerID uuid.UUID,
	orderID *uuid.UUID,
) (repository.ClaimScope, error) {
	scope := repository.ClaimScope{FiledBy: consumer.ID, FiledAgainst: providerID, OrderID: orderID}

	if consumer.Role != entity.RoleConsumer {
		return scope, domainerrors.ErrForbidden.WithDetails("only consumers can file claims")
	}

	if _, err := accountRepo.FindByID(ctx, entity.RoleServiceProvider, providerID); err != nil {
		return scope, mapProviderError(err)
	}

	if orderID == nil {
		return scope, nil
	}

	order, err := orderRepo.FindForParty(ctx, *orderID, consumer.Ref())
	if errors.Is(err, repository.ErrOrderNotFound) {
		return scope, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return scope, errors.Wrap(err, "failed to load claim order")
	}
	if order.ProviderID != providerID {
		return scope, domainerrors.ErrOrderNotFound.WithDetails("order was not placed with this service provider")
	}

	return scope, nil
}

// claimParties loads the filing consumer and the settling admin inside a transaction.
func claimParties(ctx context.Context, accountRepo repository.AccountRepository, consumerID, adminID uuid.UUID) (consumer, admin *entity.Account, err error) {
	consumer, err = accountRepo.FindByID(ctx, entity.RoleConsumer, consumerID)
	if err != nil {
		return nil, nil, mapAccountError(err)
	}

	admin, err = accountRepo.FindByID(ctx, entity.RoleAdmin, adminID)
	if err != nil {
		return nil, nil, mapAccountError(err)
	}

	return consumer, admin, nil
}
