package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gpolanco/finvesta/internal/domain/domainerrors"
	"github.com/gpolanco/finvesta/internal/domain/entity"
	"github.com/gpolanco/finvesta/internal/domain/repository"
)

const accountColumns = `id, user_id, name, type, provider, balance, currency, is_active, created_at, updated_at`

type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

func scanAccount(row pgx.Row) (*entity.Account, error) {
	var r accountRow
	if err := row.Scan(&r.ID, &r.UserID, &r.Name, &r.Type, &r.Provider, &r.Balance,
		&r.Currency, &r.IsActive, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return accountToEntity(r)
}

func (r *AccountRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Account, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, classify(err, "account", nil)
	}
	defer rows.Close()

	var out []*entity.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, classify(err, "account", nil)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	return r.findOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
}

func (r *AccountRepository) FindByIDAndUserID(ctx context.Context, id, userID string) (*entity.Account, error) {
	return r.findOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1 AND user_id = $2`, id, userID)
}

func (r *AccountRepository) FindByNameAndUserID(ctx context.Context, name, userID string) (*entity.Account, error) {
	return r.findOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE name = $1 AND user_id = $2`, name, userID)
}

// findOne returns (nil, nil) when no row matches; services decide whether that
// is a domain error.
func (r *AccountRepository) findOne(ctx context.Context, sql string, args ...any) (*entity.Account, error) {
	a, err := scanAccount(r.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classify(err, "account", nil)
	}
	return a, nil
}

func (r *AccountRepository) Exists(ctx context.Context, id, userID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1 AND user_id = $2)
	`, id, userID).Scan(&exists)
	if err != nil {
		return false, classify(err, "account", nil)
	}
	return exists, nil
}

func (r *AccountRepository) NameExists(ctx context.Context, userID, name, excludeID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM accounts
			WHERE user_id = $1 AND name = $2 AND ($3 = '' OR id <> $3::uuid)
		)
	`, userID, name, excludeID).Scan(&exists)
	if err != nil {
		return false, classify(err, "account", nil)
	}
	return exists, nil
}

func (r *AccountRepository) Create(ctx context.Context, a *entity.Account) error {
	row := accountToRow(a, a.UserID)
	err := r.pool.QueryRow(ctx, `
		INSERT INTO accounts (user_id, name, type, provider, balance, currency, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, row.UserID, row.Name, row.Type, row.Provider, row.Balance, row.Currency, row.IsActive).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return classify(err, "account", domainerrors.ErrAccountDuplicateName)
	}
	return nil
}

func (r *AccountRepository) Update(ctx context.Context, a *entity.Account) error {
	row := accountToRow(a, a.UserID)
	err := r.pool.QueryRow(ctx, `
		UPDATE accounts
		SET name = $1, type = $2, provider = $3, balance = $4, currency = $5, is_active = $6, updated_at = now()
		WHERE id = $7 AND user_id = $8
		RETURNING updated_at
	`, row.Name, row.Type, row.Provider, row.Balance, row.Currency, row.IsActive, row.ID, row.UserID).
		Scan(&a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notFoundError("account", domainerrors.ErrAccountNotFound)
		}
		return classify(err, "account", domainerrors.ErrAccountDuplicateName)
	}
	return nil
}

func (r *AccountRepository) Deactivate(ctx context.Context, id, userID string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE accounts SET is_active = false, updated_at = now()
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return classify(err, "account", nil)
	}
	if res.RowsAffected() == 0 {
		return notFoundError("account", domainerrors.ErrAccountNotFound)
	}
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return classify(err, "account", nil)
	}
	if res.RowsAffected() == 0 {
		return notFoundError("account", domainerrors.ErrAccountNotFound)
	}
	return nil
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
