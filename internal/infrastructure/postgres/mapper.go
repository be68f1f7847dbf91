package postgres

import (
	"time"

	"github.com/gpolanco/finvesta/internal/domain/entity"
	"github.com/gpolanco/finvesta/internal/domain/valueobject"
)

// Row types mirror the snake_case storage shape. Converting row -> entity
// rebuilds value objects, so a corrupt row surfaces as a validation error
// instead of leaking an invariant-breaking entity into the domain.

type accountRow struct {
	ID        string
	UserID    string
	Name      string
	Type      string
	Provider  string
	Balance   float64
	Currency  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type categoryRow struct {
	ID          string
	UserID      string
	Name        string
	Description string
	Type        string
	Color       string
	IsDefault   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type transactionRow struct {
	ID           string
	UserID       string
	AccountID    string
	CategoryID   string
	Amount       float64
	Description  string
	Type         string
	Date         time.Time
	IsReconciled bool
	ReceiptURL   string
	CreatedAt    time.Time
}

func accountToEntity(r accountRow) (*entity.Account, error) {
	name, err := valueobject.NewAccountName(r.Name)
	if err != nil {
		return nil, err
	}
	balance, err := valueobject.NewAccountBalance(r.Balance)
	if err != nil {
		return nil, err
	}
	currency, err := valueobject.NewCurrency(r.Currency)
	if err != nil {
		return nil, err
	}
	accType, ok := entity.ParseAccountType(r.Type)
	if !ok {
		return nil, errInvalidStoredType("account", r.Type)
	}
	return &entity.Account{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      name,
		Type:      accType,
		Provider:  r.Provider,
		Balance:   balance,
		Currency:  currency,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

// accountToRow requires an explicit userID: persistence always carries the
// owner even though application code never serializes it outward.
func accountToRow(a *entity.Account, userID string) accountRow {
	return accountRow{
		ID:        a.ID,
		UserID:    userID,
		Name:      a.Name.String(),
		Type:      string(a.Type),
		Provider:  a.Provider,
		Balance:   a.Balance.Value(),
		Currency:  a.Currency.Code(),
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func categoryToEntity(r categoryRow) (*entity.Category, error) {
	name, err := valueobject.NewCategoryName(r.Name)
	if err != nil {
		return nil, err
	}
	desc, err := valueobject.NewCategoryDescription(r.Description)
	if err != nil {
		return nil, err
	}
	color, err := valueobject.NewCategoryColor(r.Color)
	if err != nil {
		return nil, err
	}
	catType, ok := entity.ParseCategoryType(r.Type)
	if !ok {
		return nil, errInvalidStoredType("category", r.Type)
	}
	return &entity.Category{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        name,
		Description: desc,
		Type:        catType,
		Color:       color,
		IsDefault:   r.IsDefault,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

func categoryToRow(c *entity.Category, userID string) categoryRow {
	return categoryRow{
		ID:          c.ID,
		UserID:      userID,
		Name:        c.Name.String(),
		Description: c.Description.String(),
		Type:        string(c.Type),
		Color:       c.Color.String(),
		IsDefault:   c.IsDefault,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func transactionToEntity(r transactionRow) (*entity.Transaction, error) {
	amount, err := valueobject.NewTransactionAmount(r.Amount)
	if err != nil {
		return nil, err
	}
	desc, err := valueobject.NewTransactionDescription(r.Description)
	if err != nil {
		return nil, err
	}
	txType, ok := entity.ParseTransactionType(r.Type)
	if !ok {
		return nil, errInvalidStoredType("transaction", r.Type)
	}
	return &entity.Transaction{
		ID:           r.ID,
		UserID:       r.UserID,
		AccountID:    r.AccountID,
		CategoryID:   r.CategoryID,
		Amount:       amount,
		Description:  desc,
		Type:         txType,
		Date:         valueobject.StoredTransactionDate(r.Date),
		IsReconciled: r.IsReconciled,
		ReceiptURL:   r.ReceiptURL,
		CreatedAt:    r.CreatedAt,
	}, nil
}

func transactionToRow(t *entity.Transaction, userID string) transactionRow {
	return transactionRow{
		ID:           t.ID,
		UserID:       userID,
		AccountID:    t.AccountID,
		CategoryID:   t.CategoryID,
		Amount:       t.Amount.Value(),
		Description:  t.Description.String(),
		Type:         string(t.Type),
		Date:         t.Date.Value(),
		IsReconciled: t.IsReconciled,
		ReceiptURL:   t.ReceiptURL,
		CreatedAt:    t.CreatedAt,
	}
}
