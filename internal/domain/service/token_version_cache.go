package service

import (
	"context"

	"servicehub/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenVersionCache keeps recently read token versions so authenticated requests do not
// hit the database each time. Get returns found=false on a miss. Set never replaces a
// larger cached version.
type TokenVersionCache interface {
	Get(ctx context.Context, role entity.Role, accountID uuid.UUID) (version int, found bool, err error)
	Set(ctx context.Context, role entity.Role, accountID uuid.UUID, version int) error
	Invalidate(ctx context.Context, role entity.Role, accountID uuid.UUID) error
}
