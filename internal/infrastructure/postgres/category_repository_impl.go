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

const categoryColumns = `id, user_id, name, description, type, color, is_default, created_at, updated_at`

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var r categoryRow
	if err := row.Scan(&r.ID, &r.UserID, &r.Name, &r.Description, &r.Type, &r.Color,
		&r.IsDefault, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return categoryToEntity(r)
}

func (r *CategoryRepository) queryMany(ctx context.Context, sql string, args ...any) ([]*entity.Category, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, classify(err, "category", nil)
	}
	defer rows.Close()

	var out []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, classify(err, "category", nil)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CategoryRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Category, error) {
	return r.queryMany(ctx, `
		SELECT `+categoryColumns+` FROM categories WHERE user_id = $1 ORDER BY type, name
	`, userID)
}

func (r *CategoryRepository) FindByTypeAndUserID(ctx context.Context, categoryType entity.CategoryType, userID string) ([]*entity.Category, error) {
	return r.queryMany(ctx, `
		SELECT `+categoryColumns+` FROM categories WHERE type = $1 AND user_id = $2 ORDER BY name
	`, string(categoryType), userID)
}

// FindDefaultByType is not user-scoped: default categories are a shared lookup.
func (r *CategoryRepository) FindDefaultByType(ctx context.Context, categoryType entity.CategoryType) ([]*entity.Category, error) {
	return r.queryMany(ctx, `
		SELECT `+categoryColumns+` FROM categories WHERE type = $1 AND is_default ORDER BY name
	`, string(categoryType))
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	return r.findOne(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
}

func (r *CategoryRepository) FindByIDAndUserID(ctx context.Context, id, userID string) (*entity.Category, error) {
	return r.findOne(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1 AND user_id = $2`, id, userID)
}

func (r *CategoryRepository) FindByNameAndUserID(ctx context.Context, name, userID string) (*entity.Category, error) {
	return r.findOne(ctx, `
		SELECT `+categoryColumns+` FROM categories WHERE lower(name) = lower($1) AND user_id = $2
	`, name, userID)
}

func (r *CategoryRepository) findOne(ctx context.Context, sql string, args ...any) (*entity.Category, error) {
	c, err := scanCategory(r.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classify(err, "category", nil)
	}
	return c, nil
}

func (r *CategoryRepository) Exists(ctx context.Context, id, userID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1 AND user_id = $2)
	`, id, userID).Scan(&exists)
	if err != nil {
		return false, classify(err, "category", nil)
	}
	return exists, nil
}

// NameExists matches case-insensitively: category names are unique per user
// regardless of casing.
func (r *CategoryRepository) NameExists(ctx context.Context, userID, name, excludeID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM categories
			WHERE user_id = $1 AND lower(name) = lower($2) AND ($3 = '' OR id <> $3::uuid)
		)
	`, userID, name, excludeID).Scan(&exists)
	if err != nil {
		return false, classify(err, "category", nil)
	}
	return exists, nil
}

func (r *CategoryRepository) IsInUse(ctx context.Context, id string) (bool, error) {
	var inUse bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM transactions WHERE category_id = $1)
	`, id).Scan(&inUse)
	if err != nil {
		return false, classify(err, "category", nil)
	}
	return inUse, nil
}

func (r *CategoryRepository) GetUsageCount(ctx context.Context, id string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM transactions WHERE category_id = $1
	`, id).Scan(&count)
	if err != nil {
		return 0, classify(err, "category", nil)
	}
	return count, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	row := categoryToRow(c, c.UserID)
	err := r.pool.QueryRow(ctx, `
		INSERT INTO categories (user_id, name, description, type, color, is_default)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, row.UserID, row.Name, row.Description, row.Type, row.Color, row.IsDefault).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return classify(err, "category", domainerrors.ErrCategoryDuplicateName)
	}
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *entity.Category) error {
	row := categoryToRow(c, c.UserID)
	err := r.pool.QueryRow(ctx, `
		UPDATE categories
		SET name = $1, description = $2, color = $3, updated_at = now()
		WHERE id = $4 AND user_id = $5
		RETURNING updated_at
	`, row.Name, row.Description, row.Color, row.ID, row.UserID).
		Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notFoundError("category", domainerrors.ErrCategoryNotFound)
		}
		return classify(err, "category", domainerrors.ErrCategoryDuplicateName)
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return classify(err, "category", nil)
	}
	if res.RowsAffected() == 0 {
		return notFoundError("category", domainerrors.ErrCategoryNotFound)
	}
	return nil
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)
