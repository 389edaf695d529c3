// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/trackify/backend/config"
	"github.com/trackify/backend/internal/application/adapter"
	"github.com/trackify/backend/internal/application/usecase/admin"
	"github.com/trackify/backend/internal/application/usecase/auth"
	"github.com/trackify/backend/internal/application/usecase/category"
	"github.com/trackify/backend/internal/application/usecase/expense"
	"github.com/trackify/backend/internal/application/usecase/report"
	"github.com/trackify/backend/internal/infra/server/router"
	"github.com/trackify/backend/internal/integration/adapters"
	"github.com/trackify/backend/internal/integration/cache"
	"github.com/trackify/backend/internal/integration/entrypoint/controller"
	"github.com/trackify/backend/internal/integration/entrypoint/middleware"
	"github.com/trackify/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	DB           *gorm.DB
	Redis        *redis.Client
	Router       *router.Router
	EnsureAdmin  *auth.EnsureAdminUseCase
	TokenService adapter.TokenService
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil redis client disables the report cache and keeps rate limits in memory.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	accountRepo := persistence.NewAccountRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	reportRepo := persistence.NewReportRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.Auth.BcryptCost)
	tokenService := adapters.NewTokenService(adapters.TokenConfig{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		Expiry:   cfg.JWT.AccessTokenExpiry,
	})

	reportCache := cache.NewNoopReportCache()
	if redisClient != nil && cfg.Reports.CacheEnabled {
		reportCache = cache.NewReportCache(redisClient, cfg.Reports.CacheTTL)
	}

	// Create category use cases
	ensureDefaultsUseCase := category.NewEnsureDefaultCategoriesUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo, reportCache)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, reportCache)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(accountRepo, passwordService, tokenService, ensureDefaultsUseCase)
	loginUseCase := auth.NewLoginUserUseCase(accountRepo, passwordService, tokenService, ensureDefaultsUseCase)
	currentAccountUseCase := auth.NewGetCurrentAccountUseCase(accountRepo)
	updateProfileUseCase := auth.NewUpdateProfileUseCase(accountRepo, passwordService, tokenService)
	ensureAdminUseCase := auth.NewEnsureAdminUseCase(accountRepo, passwordService, ensureDefaultsUseCase)

	// Create expense use cases
	queryExpensesUseCase := expense.NewQueryExpensesUseCase(expenseRepo, categoryRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, categoryRepo, reportCache)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, categoryRepo, reportCache)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, reportCache)

	// Create report use cases
	monthlyUseCase := report.NewMonthlyTotalsUseCase(reportRepo, reportCache)
	categoryTotalsUseCase := report.NewCategoryTotalsUseCase(reportRepo, categoryRepo, reportCache)
	dailyTrendUseCase := report.NewDailyTrendUseCase(reportRepo, reportCache)
	topExpensesUseCase := report.NewTopExpensesUseCase(reportRepo, reportCache)

	// Create admin use cases
	listAccountsUseCase := admin.NewListAccountsUseCase(accountRepo)
	statsUseCase := admin.NewGetStatsUseCase(accountRepo, categoryRepo, expenseRepo)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker(db), redisHealthChecker(redisClient))

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		currentAccountUseCase,
		updateProfileUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	expenseController := controller.NewExpenseController(
		queryExpensesUseCase,
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)

	reportController := controller.NewReportController(
		monthlyUseCase,
		categoryTotalsUseCase,
		dailyTrendUseCase,
		topExpensesUseCase,
	)

	adminController := controller.NewAdminController(listAccountsUseCase, statsUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		expenseController,
		reportController,
		adminController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:       cfg,
		DB:           db,
		Redis:        redisClient,
		Router:       r,
		EnsureAdmin:  ensureAdminUseCase,
		TokenService: tokenService,
	}
}

func dbHealthChecker(db *gorm.DB) controller.HealthChecker {
	return func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}
}

func redisHealthChecker(client *redis.Client) controller.HealthChecker {
	if client == nil {
		return nil
	}
	return func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return client.Ping(ctx).Err() == nil
	}
}
