package valueobject

import (
	"regexp"
	"strings"

	"github.com/gpolanco/finvesta/internal/domain/domainerrors"
)

const (
	AccountNameMinLen = 2
	AccountNameMaxLen = 50
)

var accountNamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-_]+$`)

// AccountName is a validated account display name. Construct via NewAccountName.
type AccountName struct {
	value string
}

func NewAccountName(raw string) (AccountName, error) {
	v := strings.TrimSpace(raw)
	if len(v) < AccountNameMinLen {
		return AccountName{}, domainerrors.NewValidationError("name", "account_name_too_short", "account name is too short")
	}
	if len(v) > AccountNameMaxLen {
		return AccountName{}, domainerrors.NewValidationError("name", "account_name_too_long", "account name is too long")
	}
	if !accountNamePattern.MatchString(v) {
		return AccountName{}, domainerrors.NewValidationError("name", "account_name_invalid_characters", "account name contains invalid characters")
	}
	return AccountName{value: v}, nil
}

func (n AccountName) String() string { return n.value }

// Equals compares trimmed values, case-sensitive.
func (n AccountName) Equals(other AccountName) bool { return n.value == other.value }
