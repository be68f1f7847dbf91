package valueobject

import (
	"strings"
	"unicode/utf8"

	"github.com/gpolanco/finvesta/internal/domain/domainerrors"
)

const CategoryDescriptionMaxLen = 200

// CategoryDescription is an optional free-text description. An empty or
// all-whitespace input yields an empty description, not an error.
type CategoryDescription struct {
	value string
}

func NewCategoryDescription(raw string) (CategoryDescription, error) {
	v := strings.TrimSpace(raw)
	if utf8.RuneCountInString(v) > CategoryDescriptionMaxLen {
		return CategoryDescription{}, domainerrors.NewValidationError("description", "category_description_too_long", "category description is too long")
	}
	return CategoryDescription{value: v}, nil
}

func (d CategoryDescription) String() string { return d.value }

func (d CategoryDescription) IsEmpty() bool { return d.value == "" }

// Truncate returns the description shortened to max runes for display,
// appending an ellipsis when cut.
func (d CategoryDescription) Truncate(max int) string {
	if max <= 0 || utf8.RuneCountInString(d.value) <= max {
		return d.value
	}
	runes := []rune(d.value)
	return string(runes[:max]) + "…"
}
