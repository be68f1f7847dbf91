package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gpolanco/finvesta/internal/application"
	"github.com/gpolanco/finvesta/internal/domain/entity"
	"github.com/gpolanco/finvesta/internal/interface/middleware"
	"github.com/gpolanco/finvesta/pkg/helpers"
	"github.com/gpolanco/finvesta/pkg/response"
	"github.com/gpolanco/finvesta/pkg/validation"
)

type UserHandler struct {
	Svc     *application.UserService
	Cookies *helpers.Manager
	Logger  *logrus.Logger
}

func NewUserHandler(svc *application.UserService, cookies *helpers.Manager, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Cookies: cookies, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

func userJSON(u *entity.User) gin.H {
	return gin.H{
		"id":          u.ID,
		"email":       u.Email,
		"name":        u.Name,
		"is_verified": u.IsVerified,
		"created_at":  u.CreatedAt,
		"updated_at":  u.UpdatedAt,
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if h.Logger != nil {
		h.Logger.WithFields(logrus.Fields{"user_id": u.ID}).Info("user registered")
	}
	response.Success(c, http.StatusCreated, userJSON(u), "user registered", nil)
}

// Login authenticates and sets the access/refresh cookie pair.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	login, pair, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, login, "login successful", nil)
}

// Refresh rotates the token pair from the refresh_token cookie.
func (h *UserHandler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie("refresh_token")
	if err != nil || refresh == "" {
		response.Error[any](c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}
	pair, userID, err := h.Svc.Refresh(c.Request.Context(), refresh)
	if err != nil {
		h.Cookies.Clear(c)
		writeDomainError(c, err)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, gin.H{"user_id": userID}, "token refreshed", nil)
}

func (h *UserHandler) Logout(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Logout(c.Request.Context(), uid); err != nil && h.Logger != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Warn("session cleanup failed")
	}
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, map[string]any{"logged_out": true}, "logout successful", nil)
}

func (h *UserHandler) Profile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, userJSON(u), "profile", nil)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), uid, application.UpdateProfileInput{Name: req.Name})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, userJSON(u), "profile updated", nil)
}
