package valueobject

import (
	"regexp"
	"strings"

	"github.com/gpolanco/finvesta/internal/domain/domainerrors"
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// SupportedCurrencies is the ISO-4217 subset accounts may be denominated in.
var SupportedCurrencies = []string{"EUR", "USD", "GBP", "CHF", "JPY", "CAD", "AUD"}

// Currency is a supported ISO-4217 currency code. Construct via NewCurrency.
type Currency struct {
	code string
}

func NewCurrency(raw string) (Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if !currencyPattern.MatchString(code) {
		return Currency{}, domainerrors.NewValidationError("currency", "currency_invalid", "currency must be a 3-letter ISO code")
	}
	for _, c := range SupportedCurrencies {
		if c == code {
			return Currency{code: code}, nil
		}
	}
	return Currency{}, domainerrors.NewValidationError("currency", "currency_not_supported", "currency "+code+" is not supported")
}

func (c Currency) Code() string { return c.code }

func (c Currency) Equals(other Currency) bool { return c.code == other.code }
