package valueobject

import (
	"time"

	"github.com/gpolanco/finvesta/internal/domain/domainerrors"
)

// TransactionDateWindowMonths limits how far back a transaction can be dated.
const TransactionDateWindowMonths = 12

// TransactionDate is a calendar day in UTC inside the trailing twelve-month
// window ending today. Construct via NewTransactionDate.
type TransactionDate struct {
	value time.Time
}

func NewTransactionDate(raw time.Time) (TransactionDate, error) {
	return newTransactionDateAt(raw, time.Now().UTC())
}

// newTransactionDateAt validates against an explicit "today" so the window can
// be tested deterministically.
func newTransactionDateAt(raw, now time.Time) (TransactionDate, error) {
	if raw.IsZero() {
		return TransactionDate{}, domainerrors.NewValidationError("transaction_date", "transaction_date_zero", "transaction date is required")
	}
	day := truncateToDay(raw.UTC())
	today := truncateToDay(now)
	if day.After(today) {
		return TransactionDate{}, domainerrors.NewValidationError("transaction_date", "transaction_date_in_future", "transaction date cannot be in the future")
	}
	oldest := today.AddDate(0, -TransactionDateWindowMonths, 0)
	if day.Before(oldest) {
		return TransactionDate{}, domainerrors.NewValidationError("transaction_date", "transaction_date_too_old", "transaction date is older than twelve months")
	}
	return TransactionDate{value: day}, nil
}

// StoredTransactionDate rebuilds a date from persistence without the window
// check: the trailing-12-months rule gates creation, not reads of rows that
// have since aged out of the window.
func StoredTransactionDate(raw time.Time) TransactionDate {
	return TransactionDate{value: truncateToDay(raw.UTC())}
}

func (d TransactionDate) Value() time.Time { return d.value }

func (d TransactionDate) Equals(other TransactionDate) bool { return d.value.Equal(other.value) }

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
