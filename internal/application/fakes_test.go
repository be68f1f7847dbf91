package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gpolanco/finvesta/internal/domain/entity"
	"github.com/gpolanco/finvesta/internal/domain/repository"
)

// In-memory repository fakes. They mirror the store semantics the services
// rely on: nil-on-miss lookups and user-scoped access.

type fakeAccountRepo struct {
	accounts map[string]*entity.Account
	seq      int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*entity.Account{}}
}

func (r *fakeAccountRepo) nextID() string {
	r.seq++
	return fmt.Sprintf("acc-%d", r.seq)
}

func (r *fakeAccountRepo) FindByUserID(_ context.Context, userID string) ([]*entity.Account, error) {
	var out []*entity.Account
	for _, a := range r.accounts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id string) (*entity.Account, error) {
	return r.accounts[id], nil
}

func (r *fakeAccountRepo) FindByIDAndUserID(_ context.Context, id, userID string) (*entity.Account, error) {
	a := r.accounts[id]
	if a == nil || a.UserID != userID {
		return nil, nil
	}
	return a, nil
}

func (r *fakeAccountRepo) FindByNameAndUserID(_ context.Context, name, userID string) (*entity.Account, error) {
	for _, a := range r.accounts {
		if a.UserID == userID && strings.EqualFold(a.Name.String(), name) {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) Exists(ctx context.Context, id, userID string) (bool, error) {
	a, _ := r.FindByIDAndUserID(ctx, id, userID)
	return a != nil, nil
}

func (r *fakeAccountRepo) NameExists(_ context.Context, userID, name, excludeID string) (bool, error) {
	for _, a := range r.accounts {
		if a.UserID == userID && a.ID != excludeID && strings.EqualFold(a.Name.String(), name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAccountRepo) Create(_ context.Context, a *entity.Account) error {
	a.ID = r.nextID()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	r.accounts[a.ID] = a
	return nil
}

func (r *fakeAccountRepo) Update(_ context.Context, a *entity.Account) error {
	a.UpdatedAt = time.Now()
	r.accounts[a.ID] = a
	return nil
}

func (r *fakeAccountRepo) Deactivate(_ context.Context, id, userID string) error {
	if a := r.accounts[id]; a != nil && a.UserID == userID {
		a.IsActive = false
	}
	return nil
}

func (r *fakeAccountRepo) Delete(_ context.Context, id, userID string) error {
	if a := r.accounts[id]; a != nil && a.UserID == userID {
		delete(r.accounts, id)
	}
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
	inUse      map[string]int
	seq        int
	deleted    []string
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*entity.Category{}, inUse: map[string]int{}}
}

func (r *fakeCategoryRepo) nextID() string {
	r.seq++
	return fmt.Sprintf("cat-%d", r.seq)
}

func (r *fakeCategoryRepo) FindByUserID(_ context.Context, userID string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id string) (*entity.Category, error) {
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) FindByIDAndUserID(_ context.Context, id, userID string) (*entity.Category, error) {
	c := r.categories[id]
	if c == nil || c.UserID != userID {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCategoryRepo) FindByNameAndUserID(_ context.Context, name, userID string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.UserID == userID && strings.EqualFold(c.Name.String(), name) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) FindByTypeAndUserID(_ context.Context, categoryType entity.CategoryType, userID string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if c.UserID == userID && c.Type == categoryType {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) FindDefaultByType(_ context.Context, categoryType entity.CategoryType) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if c.IsDefault && c.Type == categoryType {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Exists(ctx context.Context, id, userID string) (bool, error) {
	c, _ := r.FindByIDAndUserID(ctx, id, userID)
	return c != nil, nil
}

func (r *fakeCategoryRepo) NameExists(_ context.Context, userID, name, excludeID string) (bool, error) {
	for _, c := range r.categories {
		if c.UserID == userID && c.ID != excludeID && strings.EqualFold(c.Name.String(), name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) IsInUse(_ context.Context, id string) (bool, error) {
	return r.inUse[id] > 0, nil
}

func (r *fakeCategoryRepo) GetUsageCount(_ context.Context, id string) (int, error) {
	return r.inUse[id], nil
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	c.ID = r.nextID()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	c.UpdatedAt = time.Now()
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id, userID string) error {
	if c := r.categories[id]; c != nil && c.UserID == userID {
		delete(r.categories, id)
		r.deleted = append(r.deleted, id)
	}
	return nil
}

type fakeTransactionRepo struct {
	transactions map[string]*entity.Transaction
	seq          int
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: map[string]*entity.Transaction{}}
}

func (r *fakeTransactionRepo) nextID() string {
	r.seq++
	return fmt.Sprintf("tx-%d", r.seq)
}

func (r *fakeTransactionRepo) FindByUserID(_ context.Context, userID string, limit, offset int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id string) (*entity.Transaction, error) {
	return r.transactions[id], nil
}

func (r *fakeTransactionRepo) FindByIDAndUserID(_ context.Context, id, userID string) (*entity.Transaction, error) {
	t := r.transactions[id]
	if t == nil || t.UserID != userID {
		return nil, nil
	}
	return t, nil
}

func (r *fakeTransactionRepo) FindByAccountIDAndUserID(_ context.Context, accountID, userID string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.transactions {
		if t.UserID == userID && t.AccountID == accountID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) CountByCategoryID(_ context.Context, categoryID string) (int, error) {
	n := 0
	for _, t := range r.transactions {
		if t.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (r *fakeTransactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	t.ID = r.nextID()
	t.CreatedAt = time.Now()
	r.transactions[t.ID] = t
	return nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, t *entity.Transaction) error {
	r.transactions[t.ID] = t
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id, userID string) error {
	if t := r.transactions[id]; t != nil && t.UserID == userID {
		delete(r.transactions, id)
	}
	return nil
}

func (r *fakeTransactionRepo) SumByType(_ context.Context, userID string, from, to time.Time) (repository.TypeTotals, error) {
	totals := repository.TypeTotals{}
	for _, t := range r.transactions {
		if t.UserID != userID {
			continue
		}
		d := t.Date.Value()
		if d.Before(from) || d.After(to) {
			continue
		}
		totals[t.Type] += t.Amount.Value()
	}
	return totals, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.seq++
	u.ID = fmt.Sprintf("user-%d", r.seq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now()
	r.users[u.ID] = u
	return nil
}

var (
	_ repository.AccountRepository     = (*fakeAccountRepo)(nil)
	_ repository.CategoryRepository    = (*fakeCategoryRepo)(nil)
	_ repository.TransactionRepository = (*fakeTransactionRepo)(nil)
	_ repository.UserRepository        = (*fakeUserRepo)(nil)
)
