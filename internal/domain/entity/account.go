package entity

import (
	"time"

	"github.com/gpolanco/finvesta/internal/domain/valueobject"
)

// AccountType classifies a financial account.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeCrypto     AccountType = "crypto"
)

// ParseAccountType validates a raw account type string.
func ParseAccountType(raw string) (AccountType, bool) {
	switch AccountType(raw) {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeInvestment, AccountTypeCrypto:
		return AccountType(raw), true
	}
	return "", false
}

// Account is a user-owned financial account. Balance and Currency are value
// objects validated at construction; UserID scopes every repository access.
type Account struct {
	ID        string
	UserID    string
	Name      valueobject.AccountName
	Type      AccountType
	Provider  string
	Balance   valueobject.AccountBalance
	Currency  valueobject.Currency
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
