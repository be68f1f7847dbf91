package entity

import (
	"time"

	"github.com/gpolanco/finvesta/internal/domain/valueobject"
)

// CategoryType classifies what kind of transactions a category groups.
type CategoryType string

const (
	CategoryTypeIncome     CategoryType = "income"
	CategoryTypeExpense    CategoryType = "expense"
	CategoryTypeInvestment CategoryType = "investment"
	CategoryTypeTransfer   CategoryType = "transfer"
)

// ParseCategoryType validates a raw category type string.
func ParseCategoryType(raw string) (CategoryType, bool) {
	switch CategoryType(raw) {
	case CategoryTypeIncome, CategoryTypeExpense, CategoryTypeInvestment, CategoryTypeTransfer:
		return CategoryType(raw), true
	}
	return "", false
}

// Category groups transactions. IsDefault marks system-seeded categories;
// user-created ones can be deleted only while no transaction references them.
type Category struct {
	ID          string
	UserID      string
	Name        valueobject.CategoryName
	Description valueobject.CategoryDescription
	Type        CategoryType
	Color       valueobject.CategoryColor
	IsDefault   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
