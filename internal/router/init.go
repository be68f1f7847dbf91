package router

import (
	"github.com/gpolanco/finvesta/internal/application"
	"github.com/gpolanco/finvesta/internal/container"
	pginfra "github.com/gpolanco/finvesta/internal/infrastructure/postgres"
	handlers "github.com/gpolanco/finvesta/internal/interface/http"
	"github.com/gpolanco/finvesta/internal/router/modules"
	"github.com/gpolanco/finvesta/pkg/helpers"
)

type moduleDeps struct {
	Users        *handlers.UserHandler
	Accounts     *handlers.AccountHandler
	Categories   *handlers.CategoryHandler
	Transactions *handlers.TransactionHandler
}

func buildDeps() moduleDeps {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	accountRepo := pginfra.NewAccountRepository(pool)
	categoryRepo := pginfra.NewCategoryRepository(pool)
	transactionRepo := pginfra.NewTransactionRepository(pool)

	accountSvc := application.NewAccountService(accountRepo, logger)
	categorySvc := application.NewCategoryService(categoryRepo, logger)
	transactionSvc := application.NewTransactionService(
		transactionRepo,
		accountRepo,
		categoryRepo,
		logger,
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetES(),
		cfg.ESTransactionsIndex,
	)
	userSvc := application.NewUserService(
		userRepo,
		categorySvc,
		container.GetJWT(),
		container.GetRedis(),
		logger,
		container.GetRabbitPub(),
	)

	cookies := helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure)

	return moduleDeps{
		Users:        handlers.NewUserHandler(userSvc, cookies, logger),
		Accounts:     handlers.NewAccountHandler(accountSvc, logger),
		Categories:   handlers.NewCategoryHandler(categorySvc, logger),
		Transactions: handlers.NewTransactionHandler(transactionSvc, logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildDeps()
	jwt := container.GetJWT()

	r.Add(modules.NewUserModule(deps.Users, jwt))
	r.Add(modules.NewAccountModule(deps.Accounts, jwt))
	r.Add(modules.NewCategoryModule(deps.Categories, jwt))
	r.Add(modules.NewTransactionModule(deps.Transactions, jwt))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
