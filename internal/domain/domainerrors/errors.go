package domainerrors

import (
	"errors"
	"fmt"
)

// Business-rule errors per bounded context. Handlers branch on these with
// errors.Is; the storage layer re-signals its own failures through them so
// callers never need to know about store internals.
var (
	// Accounts
	ErrAccountNotFound           = errors.New("account not found")
	ErrAccountAccessDenied       = errors.New("access to account denied")
	ErrAccountDuplicateName      = errors.New("an account with this name already exists")
	ErrCannotDeleteActiveAccount = errors.New("cannot delete an active account, deactivate it first")
	ErrInvalidAccountType        = errors.New("invalid account type")

	// Categories
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAccessDenied  = errors.New("access to category denied")
	ErrCategoryDuplicateName = errors.New("a category with this name already exists")
	ErrCategoryInUse         = errors.New("category is referenced by transactions and cannot be deleted")
	ErrInvalidCategoryType   = errors.New("invalid category type")

	// Transactions
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// Users
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email is already registered")
)

// ValidationError is raised by value-object constructors. Code identifies the
// violated rule, Field the offending input.
type ValidationError struct {
	Field   string
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(field, code, message string) *ValidationError {
	return &ValidationError{Field: field, Code: code, Message: message}
}

// IsValidation reports whether err is (or wraps) a value-object validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StoreKind classifies infrastructure failures raised by repository implementations.
type StoreKind string

const (
	StoreConnection StoreKind = "connection"
	StoreOperation  StoreKind = "operation"
	StoreNotFound   StoreKind = "not_found"
	StoreDuplicate  StoreKind = "duplicate"
	StoreValidation StoreKind = "validation"
)

// StoreError carries infrastructure detail while unwrapping to the domain
// sentinel for the affected entity, so errors.Is on domain kinds keeps working
// across the repository boundary.
type StoreError struct {
	Kind   StoreKind
	Entity string
	Detail string
	Domain error // matching domain sentinel, may be nil for pure infra failures
	Err    error // underlying driver error
}

func (e *StoreError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("store %s (%s): %s", e.Kind, e.Entity, e.Detail)
	}
	return fmt.Sprintf("store %s (%s)", e.Kind, e.Entity)
}

func (e *StoreError) Unwrap() []error {
	var out []error
	if e.Domain != nil {
		out = append(out, e.Domain)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

func NewStoreError(kind StoreKind, entity, detail string, domain, err error) *StoreError {
	return &StoreError{Kind: kind, Entity: entity, Detail: detail, Domain: domain, Err: err}
}
