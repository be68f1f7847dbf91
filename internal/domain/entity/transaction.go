package entity

import (
	"time"

	"github.com/gpolanco/finvesta/internal/domain/valueobject"
)

// TransactionType classifies the direction of money movement.
type TransactionType string

const (
	TransactionTypeIncome     TransactionType = "income"
	TransactionTypeExpense    TransactionType = "expense"
	TransactionTypeTransfer   TransactionType = "transfer"
	TransactionTypeInvestment TransactionType = "investment"
)

// ParseTransactionType validates a raw transaction type string.
func ParseTransactionType(raw string) (TransactionType, bool) {
	switch TransactionType(raw) {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer, TransactionTypeInvestment:
		return TransactionType(raw), true
	}
	return "", false
}

// Transaction records a single money movement against an account and category,
// both of which must belong to the same user.
type Transaction struct {
	ID           string
	UserID       string
	AccountID    string
	CategoryID   string
	Amount       valueobject.TransactionAmount
	Description  valueobject.TransactionDescription
	Type         TransactionType
	Date         valueobject.TransactionDate
	IsReconciled bool
	ReceiptURL   string
	CreatedAt    time.Time
}
