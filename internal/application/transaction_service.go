package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gpolanco/finvesta/internal/domain/domainerrors"
	"github.com/gpolanco/finvesta/internal/domain/entity"
	repo "github.com/gpolanco/finvesta/internal/domain/repository"
	"github.com/gpolanco/finvesta/internal/domain/valueobject"
	"github.com/gpolanco/finvesta/pkg/helpers"
)

// TransactionService validates and persists transactions, keeps the search
// index in sync, and serves the dashboard summary.
type TransactionService struct {
	Repo       repo.TransactionRepository
	Accounts   repo.AccountRepository
	Categories repo.CategoryRepository
	Logger     *logrus.Logger
	GCS        *storage.Client
	GCSBucket  string
	ES         *elasticsearch.Client
	ESIndex    string
}

func NewTransactionService(
	r repo.TransactionRepository,
	accounts repo.AccountRepository,
	categories repo.CategoryRepository,
	logger *logrus.Logger,
	gcs *storage.Client,
	gcsBucket string,
	es *elasticsearch.Client,
	esIndex string,
) *TransactionService {
	return &TransactionService{
		Repo:       r,
		Accounts:   accounts,
		Categories: categories,
		Logger:     logger,
		GCS:        gcs,
		GCSBucket:  gcsBucket,
		ES:         es,
		ESIndex:    esIndex,
	}
}

type CreateTransactionInput struct {
	AccountID   string
	CategoryID  string
	Amount      float64
	Description string
	Type        string
	Date        time.Time
}

// MonthlySummary is the dashboard aggregate for one calendar month.
type MonthlySummary struct {
	Income   float64
	Expenses float64
	Invested float64
	Net      float64
}

func (s *TransactionService) Create(ctx context.Context, userID string, in CreateTransactionInput) (*entity.Transaction, error) {
	// Ownership first: both referenced rows must belong to the caller.
	account, err := s.Accounts.FindByIDAndUserID(ctx, in.AccountID, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domainerrors.ErrAccountNotFound
	}
	category, err := s.Categories.FindByIDAndUserID(ctx, in.CategoryID, userID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domainerrors.ErrCategoryNotFound
	}

	amount, err := valueobject.NewTransactionAmount(in.Amount)
	if err != nil {
		return nil, err
	}
	desc, err := valueobject.NewTransactionDescription(in.Description)
	if err != nil {
		return nil, err
	}
	txType, ok := entity.ParseTransactionType(in.Type)
	if !ok {
		return nil, domainerrors.ErrInvalidTransactionType
	}
	if string(txType) != string(category.Type) {
		return nil, domainerrors.ErrInvalidTransactionType
	}
	date, err := valueobject.NewTransactionDate(in.Date)
	if err != nil {
		return nil, err
	}

	t := &entity.Transaction{
		UserID:      userID,
		AccountID:   account.ID,
		CategoryID:  category.ID,
		Amount:      amount,
		Description: desc,
		Type:        txType,
		Date:        date,
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}

	// Best-effort indexing; search lags rather than failing the write.
	_ = s.indexTransaction(ctx, t)

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"transaction_id": t.ID, "user_id": userID}).Info("transaction created")
	}
	return t, nil
}

func (s *TransactionService) Get(ctx context.Context, id, userID string) (*entity.Transaction, error) {
	t, err := s.Repo.FindByIDAndUserID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domainerrors.ErrTransactionNotFound
	}
	return t, nil
}

func (s *TransactionService) List(ctx context.Context, userID string, limit, offset int) ([]*entity.Transaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.Repo.FindByUserID(ctx, userID, limit, offset)
}

func (s *TransactionService) ListByAccount(ctx context.Context, accountID, userID string) ([]*entity.Transaction, error) {
	account, err := s.Accounts.FindByIDAndUserID(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domainerrors.ErrAccountNotFound
	}
	return s.Repo.FindByAccountIDAndUserID(ctx, accountID, userID)
}

// Delete hard-deletes a transaction after the ownership check.
func (s *TransactionService) Delete(ctx context.Context, id, userID string) error {
	t, err := s.Get(ctx, id, userID)
	if err != nil {
		return err
	}
	account, err := s.Accounts.FindByIDAndUserID(ctx, t.AccountID, userID)
	if err != nil {
		return err
	}
	if account == nil {
		return domainerrors.ErrAccountNotFound
	}
	if err := s.Repo.Delete(ctx, id, userID); err != nil {
		return err
	}
	_ = s.removeFromIndex(ctx, id)
	return nil
}

// AttachReceipt uploads a receipt image to GCS and stores its public URL.
func (s *TransactionService) AttachReceipt(ctx context.Context, id, userID string, r io.Reader, filename, contentType string) (string, error) {
	t, err := s.Get(ctx, id, userID)
	if err != nil {
		return "", err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("receipts", userID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	t.ReceiptURL = url
	if err := s.Repo.Update(ctx, t); err != nil {
		return "", err
	}
	return url, nil
}

// GetMonthlySummary totals the current calendar month per transaction type.
func (s *TransactionService) GetMonthlySummary(ctx context.Context, userID string, now time.Time) (*MonthlySummary, error) {
	now = now.UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	totals, err := s.Repo.SumByType(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	summary := &MonthlySummary{
		Income:   totals[entity.TransactionTypeIncome],
		Expenses: totals[entity.TransactionTypeExpense],
		Invested: totals[entity.TransactionTypeInvestment],
	}
	summary.Net = summary.Income - summary.Expenses - summary.Invested
	return summary, nil
}

// Search queries Elasticsearch for the user's transactions by description.
func (s *TransactionService) Search(ctx context.Context, userID, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"match": map[string]any{"description": q},
				},
				"filter": map[string]any{
					"term": map[string]any{"user_id": userID},
				},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

func (s *TransactionService) indexTransaction(ctx context.Context, t *entity.Transaction) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":          t.ID,
		"user_id":     t.UserID,
		"account_id":  t.AccountID,
		"category_id": t.CategoryID,
		"amount":      t.Amount.Value(),
		"description": t.Description.String(),
		"type":        string(t.Type),
		"date":        t.Date.Value().Format("2006-01-02"),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: t.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("transaction_id", t.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("transaction_id", t.ID).Warn("es index response error")
	}
	return nil
}

func (s *TransactionService) removeFromIndex(ctx context.Context, id string) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("transaction_id", id).Warn("es delete failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	return nil
}
