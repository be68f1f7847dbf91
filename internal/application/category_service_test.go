package application

import (
	"context"
	"errors"
	"testing"

	"github.com/gpolanco/finvesta/internal/domain/domainerrors"
	"github.com/gpolanco/finvesta/internal/domain/valueobject"
)

func TestCategoryServiceCreate(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), nil)
	ctx := context.Background()

	c, err := svc.Create(ctx, "user-1", CreateCategoryInput{
		Name: "Groceries",
		Type: "expense",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Color.String() != valueobject.DefaultCategoryColor {
		t.Fatalf("color = %q, want default %q", c.Color.String(), valueobject.DefaultCategoryColor)
	}
	if c.IsDefault {
		t.Fatal("user-created categories must not be marked default")
	}
}

func TestCategoryServiceCreateRejectsDuplicateNameCaseInsensitive(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "user-1", CreateCategoryInput{Name: "Transport", Type: "expense"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.Create(ctx, "user-1", CreateCategoryInput{Name: "tRANSPORT", Type: "expense"})
	if !errors.Is(err, domainerrors.ErrCategoryDuplicateName) {
		t.Fatalf("err = %v, want ErrCategoryDuplicateName", err)
	}
}

func TestCategoryServiceDeleteBlockedWhileInUse(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, nil)
	ctx := context.Background()

	c, err := svc.Create(ctx, "user-1", CreateCategoryInput{Name: "Leisure", Type: "expense"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo.inUse[c.ID] = 3

	if err := svc.Delete(ctx, c.ID, "user-1"); !errors.Is(err, domainerrors.ErrCategoryInUse) {
		t.Fatalf("err = %v, want ErrCategoryInUse", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatal("repository delete must not be reached while category is in use")
	}

	repo.inUse[c.ID] = 0
	if err := svc.Delete(ctx, c.ID, "user-1"); err != nil {
		t.Fatalf("delete after usage cleared failed: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Fatal("expected one delete call")
	}
}

func TestCategoryServiceDeleteScopesByUser(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), nil)
	ctx := context.Background()

	c, err := svc.Create(ctx, "owner", CreateCategoryInput{Name: "Health", Type: "expense"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(ctx, c.ID, "intruder"); !errors.Is(err, domainerrors.ErrCategoryNotFound) {
		t.Fatalf("err = %v, want ErrCategoryNotFound", err)
	}
}

func TestCategoryServiceListByTypeValidatesType(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), nil)
	_, err := svc.ListByType(context.Background(), "misc", "user-1")
	if !errors.Is(err, domainerrors.ErrInvalidCategoryType) {
		t.Fatalf("err = %v, want ErrInvalidCategoryType", err)
	}
}

func TestCreateDefaultCategoriesForUser(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), nil)
	ctx := context.Background()

	created, err := svc.CreateDefaultCategoriesForUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != len(defaultCategorySeed) {
		t.Fatalf("created %d categories, want %d", len(created), len(defaultCategorySeed))
	}
	for _, c := range created {
		if !c.IsDefault {
			t.Fatalf("seeded category %q not marked default", c.Name.String())
		}
	}
}

func TestCreateDefaultCategoriesForUserIsIdempotent(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), nil)
	ctx := context.Background()

	// The user already renamed nothing but created "salary" manually.
	if _, err := svc.Create(ctx, "user-1", CreateCategoryInput{Name: "salary", Type: "income"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := svc.CreateDefaultCategoriesForUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(defaultCategorySeed)-1 {
		t.Fatalf("created %d categories, want %d (Salary already exists)", len(first), len(defaultCategorySeed)-1)
	}

	second, err := svc.CreateDefaultCategoriesForUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("re-seeding created %d categories, want 0", len(second))
	}
}

func TestCategoryServiceUsageStats(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, nil)
	ctx := context.Background()

	food, err := svc.Create(ctx, "user-1", CreateCategoryInput{Name: "Groceries", Type: "expense"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rent, err := svc.Create(ctx, "user-1", CreateCategoryInput{Name: "Housing", Type: "expense"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Create(ctx, "user-1", CreateCategoryInput{Name: "Salary", Type: "income"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo.inUse[food.ID] = 2
	repo.inUse[rent.ID] = 7

	stats, err := svc.GetUsageStats(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.CountsByType["expense"] != 2 || stats.CountsByType["income"] != 1 {
		t.Fatalf("counts = %v", stats.CountsByType)
	}
	if len(stats.MostUsed) != 2 {
		t.Fatalf("most used has %d entries, want 2", len(stats.MostUsed))
	}
	if stats.MostUsed[0].Category.ID != rent.ID || stats.MostUsed[0].UsageCount != 7 {
		t.Fatalf("most used not ranked by usage: %+v", stats.MostUsed[0])
	}
}
