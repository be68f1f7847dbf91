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

type CategoryHandler struct {
	Svc    *application.CategoryService
	Logger *logrus.Logger
}

func NewCategoryHandler(svc *application.CategoryService, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{Svc: svc, Logger: logger}
}

type createCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"required,oneof=income expense investment transfer"`
	Color       string `json:"color"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

func categoryJSON(c *entity.Category) gin.H {
	return gin.H{
		"id":          c.ID,
		"name":        c.Name.String(),
		"description": c.Description.String(),
		"type":        c.Type,
		"color":       c.Color.String(),
		"is_default":  c.IsDefault,
		"created_at":  c.CreatedAt,
		"updated_at":  c.UpdatedAt,
	}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cat, err := h.Svc.Create(c.Request.Context(), uid, application.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Color:       req.Color,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, categoryJSON(cat), "category created", nil)
}

// List returns the user's categories, optionally filtered by ?type=.
func (h *CategoryHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	var categories []*entity.Category
	var err error
	if t := c.Query("type"); t != "" {
		categories, err = h.Svc.ListByType(c.Request.Context(), t, uid)
	} else {
		categories, err = h.Svc.List(c.Request.Context(), uid)
	}
	if err != nil {
		writeDomainError(c, err)
		return
	}
	out := make([]gin.H, 0, len(categories))
	for _, cat := range categories {
		out = append(out, categoryJSON(cat))
	}
	response.Success(c, http.StatusOK, out, "categories", map[string]any{"count": len(out)})
}

func (h *CategoryHandler) Get(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	cat, err := h.Svc.Get(c.Request.Context(), c.Param("id"), uid)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, categoryJSON(cat), "category", nil)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cat, err := h.Svc.Update(c.Request.Context(), c.Param("id"), uid, application.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, categoryJSON(cat), "category updated", nil)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), uid); err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "category deleted", nil)
}

func (h *CategoryHandler) Stats(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	stats, err := h.Svc.GetUsageStats(c.Request.Context(), uid)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	mostUsed := make([]gin.H, 0, len(stats.MostUsed))
	for _, u := range stats.MostUsed {
		mostUsed = append(mostUsed, gin.H{
			"category":    categoryJSON(u.Category),
			"usage_count": u.UsageCount,
		})
	}
	response.Success(c, http.StatusOK, gin.H{
		"counts_by_type": stats.CountsByType,
		"most_used":      mostUsed,
	}, "category stats", nil)
}
