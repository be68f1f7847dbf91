package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gpolanco/finvesta/internal/application"
	"github.com/gpolanco/finvesta/internal/domain/entity"
	"github.com/gpolanco/finvesta/internal/interface/middleware"
	"github.com/gpolanco/finvesta/pkg/response"
	"github.com/gpolanco/finvesta/pkg/validation"
)

type TransactionHandler struct {
	Svc    *application.TransactionService
	Logger *logrus.Logger
}

func NewTransactionHandler(svc *application.TransactionService, logger *logrus.Logger) *TransactionHandler {
	return &TransactionHandler{Svc: svc, Logger: logger}
}

type createTransactionRequest struct {
	AccountID   string  `json:"account_id" binding:"required,uuid"`
	CategoryID  string  `json:"category_id" binding:"required,uuid"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=income expense investment transfer"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
}

func transactionJSON(t *entity.Transaction) gin.H {
	return gin.H{
		"id":            t.ID,
		"account_id":    t.AccountID,
		"category_id":   t.CategoryID,
		"amount":        t.Amount.Value(),
		"description":   t.Description.String(),
		"type":          t.Type,
		"date":          t.Date.Value().Format("2006-01-02"),
		"is_reconciled": t.IsReconciled,
		"receipt_url":   t.ReceiptURL,
		"created_at":    t.CreatedAt,
	}
}

func (h *TransactionHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	date, _ := time.Parse("2006-01-02", req.Date)
	t, err := h.Svc.Create(c.Request.Context(), uid, application.CreateTransactionInput{
		AccountID:   req.AccountID,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Description: req.Description,
		Type:        req.Type,
		Date:        date,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, transactionJSON(t), "transaction created", nil)
}

// List pages through the user's transactions, newest first.
func (h *TransactionHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var transactions []*entity.Transaction
	var err error
	if accountID := c.Query("account_id"); accountID != "" {
		transactions, err = h.Svc.ListByAccount(c.Request.Context(), accountID, uid)
	} else {
		transactions, err = h.Svc.List(c.Request.Context(), uid, limit, offset)
	}
	if err != nil {
		writeDomainError(c, err)
		return
	}
	out := make([]gin.H, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, transactionJSON(t))
	}
	response.Success(c, http.StatusOK, out, "transactions", map[string]any{
		"count":  len(out),
		"limit":  limit,
		"offset": offset,
	})
}

func (h *TransactionHandler) Get(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	t, err := h.Svc.Get(c.Request.Context(), c.Param("id"), uid)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, transactionJSON(t), "transaction", nil)
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), uid); err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "transaction deleted", nil)
}

// AttachReceipt accepts a multipart file upload and stores it as the
// transaction's receipt.
func (h *TransactionHandler) AttachReceipt(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	fh, err := c.FormFile("receipt")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "receipt file is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "cannot read uploaded file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.AttachReceipt(c.Request.Context(), c.Param("id"), uid, f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"receipt_url": url}, "receipt attached", nil)
}

// Search queries the transaction index by description text.
func (h *TransactionHandler) Search(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "query parameter q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), uid, q, size)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("transaction search failed")
		}
		response.Error[any](c, http.StatusBadGateway, "search unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}

// MonthlySummary is the dashboard endpoint: current-month totals per type.
func (h *TransactionHandler) MonthlySummary(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	summary, err := h.Svc.GetMonthlySummary(c.Request.Context(), uid, time.Now())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"income":   summary.Income,
		"expenses": summary.Expenses,
		"invested": summary.Invested,
		"net":      summary.Net,
	}, "monthly summary", nil)
}
