package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gpolanco/finvesta/internal/domain/domainerrors"
	"github.com/gpolanco/finvesta/internal/domain/entity"
	"github.com/gpolanco/finvesta/internal/domain/repository"
)

const transactionColumns = `id, user_id, account_id, category_id, amount, description, type, transaction_date, is_reconciled, receipt_url, created_at`

type TransactionRepository struct {
	pool *pgxpool.Pool
}

func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var r transactionRow
	if err := row.Scan(&r.ID, &r.UserID, &r.AccountID, &r.CategoryID, &r.Amount,
		&r.Description, &r.Type, &r.Date, &r.IsReconciled, &r.ReceiptURL, &r.CreatedAt); err != nil {
		return nil, err
	}
	return transactionToEntity(r)
}

func (r *TransactionRepository) queryMany(ctx context.Context, sql string, args ...any) ([]*entity.Transaction, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, classify(err, "transaction", nil)
	}
	defer rows.Close()

	var out []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, classify(err, "transaction", nil)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TransactionRepository) FindByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Transaction, error) {
	return r.queryMany(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE user_id = $1
		ORDER BY transaction_date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
}

func (r *TransactionRepository) FindByAccountIDAndUserID(ctx context.Context, accountID, userID string) ([]*entity.Transaction, error) {
	return r.queryMany(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE account_id = $1 AND user_id = $2
		ORDER BY transaction_date DESC, created_at DESC
	`, accountID, userID)
}

func (r *TransactionRepository) FindByID(ctx context.Context, id string) (*entity.Transaction, error) {
	return r.findOne(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
}

func (r *TransactionRepository) FindByIDAndUserID(ctx context.Context, id, userID string) (*entity.Transaction, error) {
	return r.findOne(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1 AND user_id = $2`, id, userID)
}

func (r *TransactionRepository) findOne(ctx context.Context, sql string, args ...any) (*entity.Transaction, error) {
	t, err := scanTransaction(r.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classify(err, "transaction", nil)
	}
	return t, nil
}

func (r *TransactionRepository) CountByCategoryID(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM transactions WHERE category_id = $1
	`, categoryID).Scan(&count)
	if err != nil {
		return 0, classify(err, "transaction", nil)
	}
	return count, nil
}

func (r *TransactionRepository) Create(ctx context.Context, t *entity.Transaction) error {
	row := transactionToRow(t, t.UserID)
	err := r.pool.QueryRow(ctx, `
		INSERT INTO transactions (user_id, account_id, category_id, amount, description, type, transaction_date, is_reconciled, receipt_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`, row.UserID, row.AccountID, row.CategoryID, row.Amount, row.Description, row.Type,
		row.Date, row.IsReconciled, row.ReceiptURL).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return classify(err, "transaction", nil)
	}
	return nil
}

func (r *TransactionRepository) Update(ctx context.Context, t *entity.Transaction) error {
	row := transactionToRow(t, t.UserID)
	res, err := r.pool.Exec(ctx, `
		UPDATE transactions
		SET amount = $1, description = $2, type = $3, transaction_date = $4, is_reconciled = $5, receipt_url = $6
		WHERE id = $7 AND user_id = $8
	`, row.Amount, row.Description, row.Type, row.Date, row.IsReconciled, row.ReceiptURL, row.ID, row.UserID)
	if err != nil {
		return classify(err, "transaction", nil)
	}
	if res.RowsAffected() == 0 {
		return notFoundError("transaction", domainerrors.ErrTransactionNotFound)
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return classify(err, "transaction", nil)
	}
	if res.RowsAffected() == 0 {
		return notFoundError("transaction", domainerrors.ErrTransactionNotFound)
	}
	return nil
}

func (r *TransactionRepository) SumByType(ctx context.Context, userID string, from, to time.Time) (repository.TypeTotals, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT type, coalesce(sum(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND transaction_date BETWEEN $2 AND $3
		GROUP BY type
	`, userID, from, to)
	if err != nil {
		return nil, classify(err, "transaction", nil)
	}
	defer rows.Close()

	totals := repository.TypeTotals{}
	for rows.Next() {
		var txType string
		var sum float64
		if err := rows.Scan(&txType, &sum); err != nil {
			return nil, classify(err, "transaction", nil)
		}
		totals[entity.TransactionType(txType)] = sum
	}
	return totals, rows.Err()
}

var _ repository.TransactionRepository = (*TransactionRepository)(nil)
