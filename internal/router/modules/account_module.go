package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gpolanco/finvesta/internal/container"
	handlers "github.com/gpolanco/finvesta/internal/interface/http"
	"github.com/gpolanco/finvesta/internal/interface/middleware"
	"github.com/gpolanco/finvesta/pkg/helpers"
)

// AccountModule registers the account CRUD routes under /api/accounts.
// All routes require an authenticated session.

type AccountModule struct {
	Handler *handlers.AccountHandler
	JWT     *helpers.JWTManager
}

func NewAccountModule(h *handlers.AccountHandler, jwt *helpers.JWTManager) *AccountModule {
	return &AccountModule{Handler: h, JWT: jwt}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	accounts := rg.Group("/accounts")
	accounts.Use(middleware.Auth(container.GetRedis(), m.JWT))
	accounts.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		accounts.POST("", m.Handler.Create)
		accounts.GET("", m.Handler.List)
		accounts.GET("/summary", m.Handler.Summary)
		accounts.GET("/:id", m.Handler.Get)
		accounts.PUT("/:id", m.Handler.Update)
		accounts.POST("/:id/deactivate", m.Handler.Deactivate)
		accounts.DELETE("/:id", m.Handler.Delete)
	}
}
