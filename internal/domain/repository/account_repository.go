package repository

import (
	"context"

	"github.com/gpolanco/finvesta/internal/domain/entity"
)

// AccountRepository is the storage contract for accounts. Business logic must
// prefer the userID-scoped lookups; FindByID exists for internal use only.
type AccountRepository interface {
	FindByUserID(ctx context.Context, userID string) ([]*entity.Account, error)
	FindByID(ctx context.Context, id string) (*entity.Account, error)
	FindByIDAndUserID(ctx context.Context, id, userID string) (*entity.Account, error)
	FindByNameAndUserID(ctx context.Context, name, userID string) (*entity.Account, error)
	Exists(ctx context.Context, id, userID string) (bool, error)
	// NameExists reports whether the user already has an account with the given
	// name; excludeID skips one account for update-time uniqueness checks.
	NameExists(ctx context.Context, userID, name, excludeID string) (bool, error)
	// Create persists a new account; the store assigns ID and timestamps back
	// onto the entity.
	Create(ctx context.Context, a *entity.Account) error
	Update(ctx context.Context, a *entity.Account) error
	Deactivate(ctx context.Context, id, userID string) error
	Delete(ctx context.Context, id, userID string) error
}
