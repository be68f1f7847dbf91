package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gpolanco/finvesta/internal/application"
	"github.com/gpolanco/finvesta/internal/domain/entity"
	"github.com/gpolanco/finvesta/internal/interface/middleware"
	"github.com/gpolanco/finvesta/pkg/response"
	"github.com/gpolanco/finvesta/pkg/validation"
)

type AccountHandler struct {
	Svc    *application.AccountService
	Logger *logrus.Logger
}

func NewAccountHandler(svc *application.AccountService, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{Svc: svc, Logger: logger}
}

type createAccountRequest struct {
	Name     string  `json:"name" binding:"required"`
	Type     string  `json:"type" binding:"required,oneof=checking savings investment crypto"`
	Provider string  `json:"provider"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency" binding:"required"`
}

type updateAccountRequest struct {
	Name     *string  `json:"name"`
	Type     *string  `json:"type"`
	Provider *string  `json:"provider"`
	Balance  *float64 `json:"balance"`
	Currency *string  `json:"currency"`
}

// accountJSON is the outward shape; user_id is deliberately never serialized.
func accountJSON(a *entity.Account) gin.H {
	return gin.H{
		"id":         a.ID,
		"name":       a.Name.String(),
		"type":       a.Type,
		"provider":   a.Provider,
		"balance":    a.Balance.Value(),
		"currency":   a.Currency.Code(),
		"is_active":  a.IsActive,
		"created_at": a.CreatedAt,
		"updated_at": a.UpdatedAt,
	}
}

func (h *AccountHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req createAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Create(c.Request.Context(), uid, application.CreateAccountInput{
		Name:     req.Name,
		Type:     req.Type,
		Provider: req.Provider,
		Balance:  req.Balance,
		Currency: req.Currency,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, accountJSON(a), "account created", nil)
}

func (h *AccountHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	accounts, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	out := make([]gin.H, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, accountJSON(a))
	}
	response.Success(c, http.StatusOK, out, "accounts", map[string]any{"count": len(out)})
}

func (h *AccountHandler) Get(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	a, err := h.Svc.Get(c.Request.Context(), c.Param("id"), uid)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, accountJSON(a), "account", nil)
}

func (h *AccountHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Update(c.Request.Context(), c.Param("id"), uid, application.UpdateAccountInput{
		Name:     req.Name,
		Type:     req.Type,
		Provider: req.Provider,
		Balance:  req.Balance,
		Currency: req.Currency,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, accountJSON(a), "account updated", nil)
}

func (h *AccountHandler) Deactivate(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Deactivate(c.Request.Context(), c.Param("id"), uid); err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deactivated": true}, "account deactivated", nil)
}

func (h *AccountHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), uid); err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "account deleted", nil)
}

// Summary returns the total balance across the user's active accounts.
func (h *AccountHandler) Summary(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	total, err := h.Svc.GetTotalBalance(c.Request.Context(), uid)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"total_balance": total}, "account summary", nil)
}
