package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gpolanco/finvesta/internal/container"
	handlers "github.com/gpolanco/finvesta/internal/interface/http"
	"github.com/gpolanco/finvesta/internal/interface/middleware"
	"github.com/gpolanco/finvesta/pkg/helpers"
)

// TransactionModule registers transaction routes under /api/transactions and
// the dashboard summary under /api/dashboard/summary.

type TransactionModule struct {
	Handler *handlers.TransactionHandler
	JWT     *helpers.JWTManager
}

func NewTransactionModule(h *handlers.TransactionHandler, jwt *helpers.JWTManager) *TransactionModule {
	return &TransactionModule{Handler: h, JWT: jwt}
}

func (m *TransactionModule) Register(rg *gin.RouterGroup) {
	auth := middleware.Auth(container.GetRedis(), m.JWT)
	perUser := middleware.RateLimit(container.GetRedis(), 240, time.Minute, middleware.KeyByUserID(), nil)

	transactions := rg.Group("/transactions")
	transactions.Use(auth, perUser)
	{
		transactions.POST("", m.Handler.Create)
		transactions.GET("", m.Handler.List)
		transactions.GET("/search", m.Handler.Search)
		transactions.GET("/:id", m.Handler.Get)
		transactions.DELETE("/:id", m.Handler.Delete)
		transactions.POST("/:id/receipt", m.Handler.AttachReceipt)
	}

	dashboard := rg.Group("/dashboard")
	dashboard.Use(auth, perUser)
	{
		dashboard.GET("/summary", m.Handler.MonthlySummary)
	}
}
