package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gpolanco/finvesta/internal/container"
	handlers "github.com/gpolanco/finvesta/internal/interface/http"
	"github.com/gpolanco/finvesta/internal/interface/middleware"
	"github.com/gpolanco/finvesta/pkg/helpers"
)

// CategoryModule registers the category routes under /api/categories.

type CategoryModule struct {
	Handler *handlers.CategoryHandler
	JWT     *helpers.JWTManager
}

func NewCategoryModule(h *handlers.CategoryHandler, jwt *helpers.JWTManager) *CategoryModule {
	return &CategoryModule{Handler: h, JWT: jwt}
}

func (m *CategoryModule) Register(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	categories.Use(middleware.Auth(container.GetRedis(), m.JWT))
	categories.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		categories.POST("", m.Handler.Create)
		categories.GET("", m.Handler.List)
		categories.GET("/stats", m.Handler.Stats)
		categories.GET("/:id", m.Handler.Get)
		categories.PUT("/:id", m.Handler.Update)
		categories.DELETE("/:id", m.Handler.Delete)
	}
}
