package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gpolanco/finvesta/internal/container"
	handlers "github.com/gpolanco/finvesta/internal/interface/http"
	"github.com/gpolanco/finvesta/internal/interface/middleware"
	"github.com/gpolanco/finvesta/pkg/helpers"
)

// UserModule wires auth and profile handlers into routes.
// Public: POST /api/register, POST /api/login, POST /api/refresh
// Protected: POST /api/logout, GET /api/profile, PUT /api/profile

type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// Public with rate limiting
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIP(), nil)   // 5 req/min per IP
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)     // 10 req/min per IP
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)   // 60 req/min per IP

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/refresh", refreshLimiter, m.Handler.Refresh)

	// Protected
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/profile", m.Handler.Profile)
		auth.PUT("/profile", m.Handler.UpdateProfile)
	}
}
