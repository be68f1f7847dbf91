package valueobject

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gpolanco/finvesta/internal/domain/domainerrors"
)

const (
	CategoryNameMinLen = 2
	CategoryNameMaxLen = 30
)

var categoryNamePattern = regexp.MustCompile(`^[\p{L}0-9\s\-_&]+$`)

// CategoryName is a validated category name. Equality is case-insensitive.
// Construct via NewCategoryName.
type CategoryName struct {
	value string
}

func NewCategoryName(raw string) (CategoryName, error) {
	v := strings.TrimSpace(raw)
	n := utf8.RuneCountInString(v)
	if n < CategoryNameMinLen {
		return CategoryName{}, domainerrors.NewValidationError("name", "category_name_too_short", "category name is too short")
	}
	if n > CategoryNameMaxLen {
		return CategoryName{}, domainerrors.NewValidationError("name", "category_name_too_long", "category name is too long")
	}
	if !categoryNamePattern.MatchString(v) {
		return CategoryName{}, domainerrors.NewValidationError("name", "category_name_invalid_characters", "category name contains invalid characters")
	}
	return CategoryName{value: v}, nil
}

func (n CategoryName) String() string { return n.value }

// Equals is case-insensitive: "Food" and "food" are the same category name.
func (n CategoryName) Equals(other CategoryName) bool {
	return strings.EqualFold(n.value, other.value)
}
