package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/gpolanco/finvesta/internal/domain/domainerrors"
	"github.com/gpolanco/finvesta/internal/domain/entity"
	repo "github.com/gpolanco/finvesta/internal/domain/repository"
	"github.com/gpolanco/finvesta/internal/domain/valueobject"
)

// AccountService composes value-object validation with repository calls and
// enforces the account business rules.
type AccountService struct {
	Repo   repo.AccountRepository
	Logger *logrus.Logger
}

func NewAccountService(r repo.AccountRepository, logger *logrus.Logger) *AccountService {
	return &AccountService{Repo: r, Logger: logger}
}

type CreateAccountInput struct {
	Name     string
	Type     string
	Provider string
	Balance  float64
	Currency string
}

type UpdateAccountInput struct {
	Name     *string
	Type     *string
	Provider *string
	Balance  *float64
	Currency *string
}

func (s *AccountService) Create(ctx context.Context, userID string, in CreateAccountInput) (*entity.Account, error) {
	name, err := valueobject.NewAccountName(in.Name)
	if err != nil {
		return nil, err
	}
	accType, ok := entity.ParseAccountType(in.Type)
	if !ok {
		return nil, domainerrors.ErrInvalidAccountType
	}
	balance, err := valueobject.NewAccountBalance(in.Balance)
	if err != nil {
		return nil, err
	}
	currency, err := valueobject.NewCurrency(in.Currency)
	if err != nil {
		return nil, err
	}

	taken, err := s.Repo.NameExists(ctx, userID, name.String(), "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainerrors.ErrAccountDuplicateName
	}

	a := &entity.Account{
		UserID:   userID,
		Name:     name,
		Type:     accType,
		Provider: in.Provider,
		Balance:  balance,
		Currency: currency,
		IsActive: true,
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"account_id": a.ID, "user_id": userID}).Info("account created")
	}
	return a, nil
}

func (s *AccountService) Get(ctx context.Context, id, userID string) (*entity.Account, error) {
	a, err := s.Repo.FindByIDAndUserID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		// Cross-user lookups collapse into not-found so existence never leaks.
		return nil, domainerrors.ErrAccountNotFound
	}
	return a, nil
}

func (s *AccountService) List(ctx context.Context, userID string) ([]*entity.Account, error) {
	return s.Repo.FindByUserID(ctx, userID)
}

func (s *AccountService) Update(ctx context.Context, id, userID string, in UpdateAccountInput) (*entity.Account, error) {
	a, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name, err := valueobject.NewAccountName(*in.Name)
		if err != nil {
			return nil, err
		}
		if !a.Name.Equals(name) {
			taken, err := s.Repo.NameExists(ctx, userID, name.String(), a.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, domainerrors.ErrAccountDuplicateName
			}
		}
		a.Name = name
	}
	if in.Type != nil {
		accType, ok := entity.ParseAccountType(*in.Type)
		if !ok {
			return nil, domainerrors.ErrInvalidAccountType
		}
		a.Type = accType
	}
	if in.Provider != nil {
		a.Provider = *in.Provider
	}
	if in.Balance != nil {
		balance, err := valueobject.NewAccountBalance(*in.Balance)
		if err != nil {
			return nil, err
		}
		a.Balance = balance
	}
	if in.Currency != nil {
		currency, err := valueobject.NewCurrency(*in.Currency)
		if err != nil {
			return nil, err
		}
		a.Currency = currency
	}

	if err := s.Repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Deactivate soft-deletes an account.
func (s *AccountService) Deactivate(ctx context.Context, id, userID string) error {
	if _, err := s.Get(ctx, id, userID); err != nil {
		return err
	}
	return s.Repo.Deactivate(ctx, id, userID)
}

// Delete hard-deletes an account. Active accounts must be deactivated first.
func (s *AccountService) Delete(ctx context.Context, id, userID string) error {
	a, err := s.Get(ctx, id, userID)
	if err != nil {
		return err
	}
	if a.IsActive {
		return domainerrors.ErrCannotDeleteActiveAccount
	}
	if err := s.Repo.Delete(ctx, id, userID); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"account_id": id, "user_id": userID}).Info("account deleted")
	}
	return nil
}

// GetTotalBalance sums the balances of the user's active accounts.
func (s *AccountService) GetTotalBalance(ctx context.Context, userID string) (float64, error) {
	accounts, err := s.Repo.FindByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, a := range accounts {
		if a.IsActive {
			total += a.Balance.Value()
		}
	}
	return total, nil
}
