package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gpolanco/finvesta/internal/domain/domainerrors"
	"github.com/gpolanco/finvesta/pkg/response"
)

// writeDomainError maps a service failure onto an HTTP status and the standard
// envelope. Handlers only ever branch on domain error kinds; infrastructure
// detail stays in logs.
func writeDomainError(c *gin.Context, err error) {
	var ve *domainerrors.ValidationError
	if errors.As(err, &ve) {
		response.Error[any](c, http.StatusBadRequest, ve.Message, map[string]string{ve.Field: ve.Code})
		return
	}

	switch {
	case errors.Is(err, domainerrors.ErrAccountNotFound),
		errors.Is(err, domainerrors.ErrCategoryNotFound),
		errors.Is(err, domainerrors.ErrTransactionNotFound),
		errors.Is(err, domainerrors.ErrUserNotFound):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, domainerrors.ErrAccountDuplicateName),
		errors.Is(err, domainerrors.ErrCategoryDuplicateName),
		errors.Is(err, domainerrors.ErrEmailTaken),
		errors.Is(err, domainerrors.ErrCannotDeleteActiveAccount),
		errors.Is(err, domainerrors.ErrCategoryInUse):
		response.Error[any](c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, domainerrors.ErrInvalidAccountType),
		errors.Is(err, domainerrors.ErrInvalidCategoryType),
		errors.Is(err, domainerrors.ErrInvalidTransactionType):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, domainerrors.ErrAccountAccessDenied),
		errors.Is(err, domainerrors.ErrCategoryAccessDenied):
		response.Error[any](c, http.StatusForbidden, err.Error(), nil)
	default:
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}
