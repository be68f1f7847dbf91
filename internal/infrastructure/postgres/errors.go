package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gpolanco/finvesta/internal/domain/domainerrors"
)

// Postgres error codes we branch on.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func errInvalidStoredType(entityName, value string) error {
	return domainerrors.NewStoreError(
		domainerrors.StoreValidation,
		entityName,
		fmt.Sprintf("stored type %q is not valid", value),
		nil, nil,
	)
}

// classify translates a pgx error into the infrastructure taxonomy, attaching
// the matching domain sentinel so callers can keep branching on domain kinds.
func classify(err error, entityName string, duplicate error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return domainerrors.NewStoreError(domainerrors.StoreDuplicate, entityName, pgErr.Detail, duplicate, err)
		case codeForeignKeyViolation:
			return domainerrors.NewStoreError(domainerrors.StoreValidation, entityName, pgErr.Detail, nil, err)
		}
	}
	return domainerrors.NewStoreError(domainerrors.StoreOperation, entityName, err.Error(), nil, err)
}

func notFoundError(entityName string, domain error) error {
	return domainerrors.NewStoreError(domainerrors.StoreNotFound, entityName, "no matching row", domain, nil)
}
