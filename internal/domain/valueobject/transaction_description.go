package valueobject

import (
	"strings"
	"unicode/utf8"

	"github.com/gpolanco/finvesta/internal/domain/domainerrors"
)

const TransactionDescriptionMaxLen = 200

// TransactionDescription is a required free-text description of a transaction.
type TransactionDescription struct {
	value string
}

func NewTransactionDescription(raw string) (TransactionDescription, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return TransactionDescription{}, domainerrors.NewValidationError("description", "transaction_description_empty", "transaction description is required")
	}
	if utf8.RuneCountInString(v) > TransactionDescriptionMaxLen {
		return TransactionDescription{}, domainerrors.NewValidationError("description", "transaction_description_too_long", "transaction description is too long")
	}
	return TransactionDescription{value: v}, nil
}

func (d TransactionDescription) String() string { return d.value }

func (d TransactionDescription) Equals(other TransactionDescription) bool {
	return d.value == other.value
}
