package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gpolanco/finvesta/internal/domain/domainerrors"
	"github.com/gpolanco/finvesta/internal/domain/entity"
)

type txFixture struct {
	svc      *TransactionService
	accounts *fakeAccountRepo
	account  *entity.Account
	category *entity.Category
}

func newTxFixture(t *testing.T, userID string) *txFixture {
	t.Helper()
	accountRepo := newFakeAccountRepo()
	categoryRepo := newFakeCategoryRepo()
	txRepo := newFakeTransactionRepo()
	ctx := context.Background()

	account, err := NewAccountService(accountRepo, nil).Create(ctx, userID, CreateAccountInput{
		Name: "Main Checking", Type: "checking", Currency: "EUR",
	})
	if err != nil {
		t.Fatalf("fixture account: %v", err)
	}
	category, err := NewCategoryService(categoryRepo, nil).Create(ctx, userID, CreateCategoryInput{
		Name: "Groceries", Type: "expense",
	})
	if err != nil {
		t.Fatalf("fixture category: %v", err)
	}

	// No GCS/ES clients in tests; both integrations are optional.
	svc := NewTransactionService(txRepo, accountRepo, categoryRepo, nil, nil, "", nil, "")
	return &txFixture{svc: svc, accounts: accountRepo, account: account, category: category}
}

func TestTransactionServiceCreate(t *testing.T) {
	f := newTxFixture(t, "user-1")
	ctx := context.Background()

	tx, err := f.svc.Create(ctx, "user-1", CreateTransactionInput{
		AccountID:   f.account.ID,
		CategoryID:  f.category.ID,
		Amount:      23.456,
		Description: "weekly shop",
		Type:        "expense",
		Date:        time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.ID == "" {
		t.Fatal("expected assigned id")
	}
	if tx.Amount.Value() != 23.46 {
		t.Fatalf("amount = %v, want 23.46", tx.Amount.Value())
	}
}

func TestTransactionServiceCreateChecksOwnership(t *testing.T) {
	f := newTxFixture(t, "owner")
	ctx := context.Background()

	in := CreateTransactionInput{
		AccountID:   f.account.ID,
		CategoryID:  f.category.ID,
		Amount:      10,
		Description: "coffee",
		Type:        "expense",
		Date:        time.Now().UTC(),
	}
	if _, err := f.svc.Create(ctx, "intruder", in); !errors.Is(err, domainerrors.ErrAccountNotFound) {
		t.Fatalf("err = %v, want ErrAccountNotFound", err)
	}
}

func TestTransactionServiceCreateRejectsTypeMismatch(t *testing.T) {
	f := newTxFixture(t, "user-1")
	// Category is expense; an income transaction against it must fail.
	_, err := f.svc.Create(context.Background(), "user-1", CreateTransactionInput{
		AccountID:   f.account.ID,
		CategoryID:  f.category.ID,
		Amount:      500,
		Description: "refund",
		Type:        "income",
		Date:        time.Now().UTC(),
	})
	if !errors.Is(err, domainerrors.ErrInvalidTransactionType) {
		t.Fatalf("err = %v, want ErrInvalidTransactionType", err)
	}
}

func TestTransactionServiceGetScopesByUser(t *testing.T) {
	f := newTxFixture(t, "owner")
	ctx := context.Background()

	tx, err := f.svc.Create(ctx, "owner", CreateTransactionInput{
		AccountID:   f.account.ID,
		CategoryID:  f.category.ID,
		Amount:      10,
		Description: "lunch",
		Type:        "expense",
		Date:        time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.svc.Get(ctx, tx.ID, "intruder"); !errors.Is(err, domainerrors.ErrTransactionNotFound) {
		t.Fatalf("err = %v, want ErrTransactionNotFound", err)
	}
}

func TestTransactionServiceDelete(t *testing.T) {
	f := newTxFixture(t, "user-1")
	ctx := context.Background()

	tx, err := f.svc.Create(ctx, "user-1", CreateTransactionInput{
		AccountID:   f.account.ID,
		CategoryID:  f.category.ID,
		Amount:      10,
		Description: "lunch",
		Type:        "expense",
		Date:        time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.svc.Delete(ctx, tx.ID, "user-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := f.svc.Get(ctx, tx.ID, "user-1"); !errors.Is(err, domainerrors.ErrTransactionNotFound) {
		t.Fatalf("transaction still present after delete: %v", err)
	}
}

func TestTransactionServiceListCapsLimit(t *testing.T) {
	f := newTxFixture(t, "user-1")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := f.svc.Create(ctx, "user-1", CreateTransactionInput{
			AccountID:   f.account.ID,
			CategoryID:  f.category.ID,
			Amount:      float64(i + 1),
			Description: "item",
			Type:        "expense",
			Date:        time.Now().UTC(),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	out, err := f.svc.List(ctx, "user-1", 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}

	// Out-of-range limits fall back to the default page size.
	if _, err := f.svc.List(ctx, "user-1", 1000, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTransactionServiceMonthlySummary(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	categoryRepo := newFakeCategoryRepo()
	txRepo := newFakeTransactionRepo()
	ctx := context.Background()

	account, err := NewAccountService(accountRepo, nil).Create(ctx, "user-1", CreateAccountInput{
		Name: "Main Checking", Type: "checking", Currency: "EUR",
	})
	if err != nil {
		t.Fatalf("fixture account: %v", err)
	}
	catSvc := NewCategoryService(categoryRepo, nil)
	salary, err := catSvc.Create(ctx, "user-1", CreateCategoryInput{Name: "Salary", Type: "income"})
	if err != nil {
		t.Fatalf("fixture category: %v", err)
	}
	food, err := catSvc.Create(ctx, "user-1", CreateCategoryInput{Name: "Groceries", Type: "expense"})
	if err != nil {
		t.Fatalf("fixture category: %v", err)
	}
	stocks, err := catSvc.Create(ctx, "user-1", CreateCategoryInput{Name: "Stocks", Type: "investment"})
	if err != nil {
		t.Fatalf("fixture category: %v", err)
	}

	svc := NewTransactionService(txRepo, accountRepo, categoryRepo, nil, nil, "", nil, "")
	now := time.Now().UTC()
	create := func(categoryID string, amount float64, txType string) {
		t.Helper()
		if _, err := svc.Create(ctx, "user-1", CreateTransactionInput{
			AccountID:   account.ID,
			CategoryID:  categoryID,
			Amount:      amount,
			Description: "entry",
			Type:        txType,
			Date:        now,
		}); err != nil {
			t.Fatalf("create transaction: %v", err)
		}
	}
	create(salary.ID, 3000, "income")
	create(food.ID, 420.5, "expense")
	create(food.ID, 79.5, "expense")
	create(stocks.ID, 600, "investment")

	summary, err := svc.GetMonthlySummary(ctx, "user-1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Income != 3000 {
		t.Fatalf("income = %v, want 3000", summary.Income)
	}
	if summary.Expenses != 500 {
		t.Fatalf("expenses = %v, want 500", summary.Expenses)
	}
	if summary.Invested != 600 {
		t.Fatalf("invested = %v, want 600", summary.Invested)
	}
	if summary.Net != 1900 {
		t.Fatalf("net = %v, want 1900", summary.Net)
	}
}
