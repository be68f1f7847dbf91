package application

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/gpolanco/finvesta/internal/domain/domainerrors"
	"github.com/gpolanco/finvesta/internal/domain/entity"
	repo "github.com/gpolanco/finvesta/internal/domain/repository"
	"github.com/gpolanco/finvesta/internal/domain/valueobject"
)

// defaultCategorySeed is the fixed set provisioned for every new user.
var defaultCategorySeed = []struct {
	Name  string
	Type  entity.CategoryType
	Color string
}{
	{"Salary", entity.CategoryTypeIncome, "#22c55e"},
	{"Other Income", entity.CategoryTypeIncome, "#84cc16"},
	{"Housing", entity.CategoryTypeExpense, "#ef4444"},
	{"Groceries", entity.CategoryTypeExpense, "#f97316"},
	{"Transport", entity.CategoryTypeExpense, "#eab308"},
	{"Leisure", entity.CategoryTypeExpense, "#ec4899"},
	{"Health", entity.CategoryTypeExpense, "#14b8a6"},
	{"Stocks", entity.CategoryTypeInvestment, "#3b82f6"},
	{"Crypto", entity.CategoryTypeInvestment, "#8b5cf6"},
	{"Between Accounts", entity.CategoryTypeTransfer, "#64748b"},
}

// CategoryService enforces category business rules, in particular the
// usage-gated delete.
type CategoryService struct {
	Repo   repo.CategoryRepository
	Logger *logrus.Logger
}

func NewCategoryService(r repo.CategoryRepository, logger *logrus.Logger) *CategoryService {
	return &CategoryService{Repo: r, Logger: logger}
}

type CreateCategoryInput struct {
	Name        string
	Description string
	Type        string
	Color       string
}

type UpdateCategoryInput struct {
	Name        *string
	Description *string
	Color       *string
}

// CategoryUsageStats summarizes category usage for a user.
type CategoryUsageStats struct {
	CountsByType map[entity.CategoryType]int
	MostUsed     []CategoryUsage
}

type CategoryUsage struct {
	Category   *entity.Category
	UsageCount int
}

func (s *CategoryService) Create(ctx context.Context, userID string, in CreateCategoryInput) (*entity.Category, error) {
	name, err := valueobject.NewCategoryName(in.Name)
	if err != nil {
		return nil, err
	}
	desc, err := valueobject.NewCategoryDescription(in.Description)
	if err != nil {
		return nil, err
	}
	catType, ok := entity.ParseCategoryType(in.Type)
	if !ok {
		return nil, domainerrors.ErrInvalidCategoryType
	}
	color, err := valueobject.NewCategoryColor(in.Color)
	if err != nil {
		return nil, err
	}

	taken, err := s.Repo.NameExists(ctx, userID, name.String(), "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainerrors.ErrCategoryDuplicateName
	}

	c := &entity.Category{
		UserID:      userID,
		Name:        name,
		Description: desc,
		Type:        catType,
		Color:       color,
		IsDefault:   false,
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Get(ctx context.Context, id, userID string) (*entity.Category, error) {
	c, err := s.Repo.FindByIDAndUserID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domainerrors.ErrCategoryNotFound
	}
	return c, nil
}

func (s *CategoryService) List(ctx context.Context, userID string) ([]*entity.Category, error) {
	return s.Repo.FindByUserID(ctx, userID)
}

func (s *CategoryService) ListByType(ctx context.Context, categoryType string, userID string) ([]*entity.Category, error) {
	ct, ok := entity.ParseCategoryType(categoryType)
	if !ok {
		return nil, domainerrors.ErrInvalidCategoryType
	}
	return s.Repo.FindByTypeAndUserID(ctx, ct, userID)
}

func (s *CategoryService) Update(ctx context.Context, id, userID string, in UpdateCategoryInput) (*entity.Category, error) {
	c, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name, err := valueobject.NewCategoryName(*in.Name)
		if err != nil {
			return nil, err
		}
		if !c.Name.Equals(name) {
			taken, err := s.Repo.NameExists(ctx, userID, name.String(), c.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, domainerrors.ErrCategoryDuplicateName
			}
		}
		c.Name = name
	}
	if in.Description != nil {
		desc, err := valueobject.NewCategoryDescription(*in.Description)
		if err != nil {
			return nil, err
		}
		c.Description = desc
	}
	if in.Color != nil {
		color, err := valueobject.NewCategoryColor(*in.Color)
		if err != nil {
			return nil, err
		}
		c.Color = color
	}

	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a category unless transactions still reference it.
func (s *CategoryService) Delete(ctx context.Context, id, userID string) error {
	if _, err := s.Get(ctx, id, userID); err != nil {
		return err
	}
	inUse, err := s.Repo.IsInUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return domainerrors.ErrCategoryInUse
	}
	return s.Repo.Delete(ctx, id, userID)
}

// CreateDefaultCategoriesForUser seeds the fixed default set. It is idempotent:
// seeds whose name the user already has (case-insensitive) are skipped, so
// re-onboarding cannot duplicate categories.
func (s *CategoryService) CreateDefaultCategoriesForUser(ctx context.Context, userID string) ([]*entity.Category, error) {
	existing, err := s.Repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	created := make([]*entity.Category, 0, len(defaultCategorySeed))
	for _, seed := range defaultCategorySeed {
		name, err := valueobject.NewCategoryName(seed.Name)
		if err != nil {
			return nil, err
		}
		if hasCategoryNamed(existing, name) {
			continue
		}
		color, err := valueobject.NewCategoryColor(seed.Color)
		if err != nil {
			return nil, err
		}
		c := &entity.Category{
			UserID:    userID,
			Name:      name,
			Type:      seed.Type,
			Color:     color,
			IsDefault: true,
		}
		if err := s.Repo.Create(ctx, c); err != nil {
			return nil, err
		}
		created = append(created, c)
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": userID, "created": len(created)}).Info("default categories seeded")
	}
	return created, nil
}

// GetUsageStats counts categories per type and ranks them by usage.
func (s *CategoryService) GetUsageStats(ctx context.Context, userID string) (*CategoryUsageStats, error) {
	categories, err := s.Repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &CategoryUsageStats{CountsByType: map[entity.CategoryType]int{}}
	for _, c := range categories {
		stats.CountsByType[c.Type]++
		count, err := s.Repo.GetUsageCount(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			stats.MostUsed = append(stats.MostUsed, CategoryUsage{Category: c, UsageCount: count})
		}
	}
	sort.Slice(stats.MostUsed, func(i, j int) bool {
		return stats.MostUsed[i].UsageCount > stats.MostUsed[j].UsageCount
	})
	return stats, nil
}

func hasCategoryNamed(categories []*entity.Category, name valueobject.CategoryName) bool {
	for _, c := range categories {
		if c.Name.Equals(name) {
			return true
		}
	}
	return false
}
