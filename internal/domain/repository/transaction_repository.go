package repository

import (
	"context"
	"time"

	"github.com/gpolanco/finvesta/internal/domain/entity"
)

// TypeTotals aggregates transaction amounts per type for a user and period.
type TypeTotals map[entity.TransactionType]float64

// TransactionRepository is the storage contract for transactions. Transactions
// are hard-deleted, never deactivated.
type TransactionRepository interface {
	FindByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Transaction, error)
	FindByID(ctx context.Context, id string) (*entity.Transaction, error)
	FindByIDAndUserID(ctx context.Context, id, userID string) (*entity.Transaction, error)
	FindByAccountIDAndUserID(ctx context.Context, accountID, userID string) ([]*entity.Transaction, error)
	CountByCategoryID(ctx context.Context, categoryID string) (int, error)
	Create(ctx context.Context, t *entity.Transaction) error
	Update(ctx context.Context, t *entity.Transaction) error
	Delete(ctx context.Context, id, userID string) error
	// SumByType totals amounts per transaction type between from and to
	// (inclusive day bounds), for the dashboard summary.
	SumByType(ctx context.Context, userID string, from, to time.Time) (TypeTotals, error)
}
