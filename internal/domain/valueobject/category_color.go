package valueobject

import (
	"regexp"
	"strings"

	"github.com/gpolanco/finvesta/internal/domain/domainerrors"
)

var categoryColorPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

// DefaultCategoryColor is used when a category is created without a color.
const DefaultCategoryColor = "#6366f1"

// CategoryColor is a #rrggbb hex color. Construct via NewCategoryColor.
type CategoryColor struct {
	value string
}

func NewCategoryColor(raw string) (CategoryColor, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		v = DefaultCategoryColor
	}
	if !categoryColorPattern.MatchString(v) {
		return CategoryColor{}, domainerrors.NewValidationError("color", "category_color_invalid", "category color must be a #rrggbb hex value")
	}
	return CategoryColor{value: v}, nil
}

func (c CategoryColor) String() string { return c.value }

func (c CategoryColor) Equals(other CategoryColor) bool { return c.value == other.value }
