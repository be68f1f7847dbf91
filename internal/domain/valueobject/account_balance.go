package valueobject

import (
	"math"

	"github.com/gpolanco/finvesta/internal/domain/domainerrors"
)

const (
	AccountBalanceMin = -999_999_999.99
	AccountBalanceMax = 999_999_999.99
)

// AccountBalance is a monetary balance rounded to 2 decimal places and bounded
// within [AccountBalanceMin, AccountBalanceMax]. Construct via NewAccountBalance.
type AccountBalance struct {
	value float64
}

func NewAccountBalance(raw float64) (AccountBalance, error) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return AccountBalance{}, domainerrors.NewValidationError("balance", "account_balance_invalid", "account balance must be a finite number")
	}
	v := roundCents(raw)
	if v < AccountBalanceMin {
		return AccountBalance{}, domainerrors.NewValidationError("balance", "account_balance_too_low", "account balance is below the allowed minimum")
	}
	if v > AccountBalanceMax {
		return AccountBalance{}, domainerrors.NewValidationError("balance", "account_balance_too_high", "account balance is above the allowed maximum")
	}
	return AccountBalance{value: v}, nil
}

func (b AccountBalance) Value() float64 { return b.value }

func (b AccountBalance) Equals(other AccountBalance) bool { return b.value == other.value }

// Add returns a new balance, re-validating the result so an out-of-range sum
// fails exactly like direct construction.
func (b AccountBalance) Add(amount float64) (AccountBalance, error) {
	return NewAccountBalance(b.value + amount)
}

// Subtract returns a new balance, re-validating the result.
func (b AccountBalance) Subtract(amount float64) (AccountBalance, error) {
	return NewAccountBalance(b.value - amount)
}

// roundCents rounds half away from zero to 2 decimal places.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
