package repository

import (
	"context"

	"github.com/gpolanco/finvesta/internal/domain/entity"
)

// CategoryRepository is the storage contract for categories. Deletion is
// usage-gated by the service, hence the IsInUse and GetUsageCount queries.
type CategoryRepository interface {
	FindByUserID(ctx context.Context, userID string) ([]*entity.Category, error)
	FindByID(ctx context.Context, id string) (*entity.Category, error)
	FindByIDAndUserID(ctx context.Context, id, userID string) (*entity.Category, error)
	FindByNameAndUserID(ctx context.Context, name, userID string) (*entity.Category, error)
	FindByTypeAndUserID(ctx context.Context, categoryType entity.CategoryType, userID string) ([]*entity.Category, error)
	// FindDefaultByType is deliberately not user-scoped: default categories are
	// shared lookups.
	FindDefaultByType(ctx context.Context, categoryType entity.CategoryType) ([]*entity.Category, error)
	Exists(ctx context.Context, id, userID string) (bool, error)
	NameExists(ctx context.Context, userID, name, excludeID string) (bool, error)
	IsInUse(ctx context.Context, id string) (bool, error)
	GetUsageCount(ctx context.Context, id string) (int, error)
	Create(ctx context.Context, c *entity.Category) error
	Update(ctx context.Context, c *entity.Category) error
	Delete(ctx context.Context, id, userID string) error
}
