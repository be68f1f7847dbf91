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

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, u.Email, u.Password, u.Name).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return classify(err, "user", domainerrors.ErrEmailTaken)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, `
		SELECT id, email, password_hash, name, is_verified, created_at, updated_at
		FROM users WHERE id = $1
	`, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, `
		SELECT id, email, password_hash, name, is_verified, created_at, updated_at
		FROM users WHERE email = $1
	`, email)
}

func (r *UserRepository) findOne(ctx context.Context, sql string, args ...any) (*entity.User, error) {
	u := &entity.User{}
	err := r.pool.QueryRow(ctx, sql, args...).
		Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.IsVerified, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classify(err, "user", nil)
	}
	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE users
		SET email = $1, password_hash = $2, name = $3, is_verified = $4, updated_at = now()
		WHERE id = $5
		RETURNING updated_at
	`, u.Email, u.Password, u.Name, u.IsVerified, u.ID).Scan(&u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notFoundError("user", domainerrors.ErrUserNotFound)
		}
		return classify(err, "user", domainerrors.ErrEmailTaken)
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
