package valueobject

import (
	"math"

	"github.com/gpolanco/finvesta/internal/domain/domainerrors"
)

// TransactionAmountMax bounds a single transaction.
const TransactionAmountMax = 1_000_000.0

// TransactionAmount is a positive monetary amount rounded to 2 decimal places.
// Construct via NewTransactionAmount.
type TransactionAmount struct {
	value float64
}

func NewTransactionAmount(raw float64) (TransactionAmount, error) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return TransactionAmount{}, domainerrors.NewValidationError("amount", "transaction_amount_invalid", "transaction amount must be a finite number")
	}
	v := roundCents(raw)
	if v <= 0 {
		return TransactionAmount{}, domainerrors.NewValidationError("amount", "transaction_amount_not_positive", "transaction amount must be greater than zero")
	}
	if v > TransactionAmountMax {
		return TransactionAmount{}, domainerrors.NewValidationError("amount", "transaction_amount_too_large", "transaction amount is above the allowed maximum")
	}
	return TransactionAmount{value: v}, nil
}

func (a TransactionAmount) Value() float64 { return a.value }

func (a TransactionAmount) Equals(other TransactionAmount) bool { return a.value == other.value }
