// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/trackify/backend/internal/integration/entrypoint/controller"
	"github.com/trackify/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	categoryController *controller.CategoryController
	expenseController  *controller.ExpenseController
	reportController   *controller.ReportController
	adminController    *controller.AdminController
	loginRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	expenseController *controller.ExpenseController,
	reportController *controller.ReportController,
	adminController *controller.AdminController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		categoryController: categoryController,
		expenseController:  expenseController,
		reportController:   reportController,
		adminController:    adminController,
		loginRateLimiter:   loginRateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	r.engine.GET("/api/v1/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	// Auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.loginRateLimiter.Middleware(), r.authController.Register)
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
		auth.PUT("/profile", r.authMiddleware.Authenticate(), r.authController.UpdateProfile)
	}

	// Category routes (require authentication)
	categories := v1.Group("/categories")
	categories.Use(r.authMiddleware.Authenticate())
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", r.categoryController.Create)
		categories.PUT("/:id", r.categoryController.Update)
		categories.DELETE("/:id", r.categoryController.Delete)
	}

	// Expense routes (require authentication)
	expenses := v1.Group("/expenses")
	expenses.Use(r.authMiddleware.Authenticate())
	{
		expenses.GET("", r.expenseController.List)
		expenses.POST("", r.expenseController.Create)
		expenses.PUT("/:id", r.expenseController.Update)
		expenses.DELETE("/:id", r.expenseController.Delete)
	}

	// Report routes (require authentication)
	reports := v1.Group("/reports")
	reports.Use(r.authMiddleware.Authenticate())
	{
		reports.GET("/monthly", r.reportController.Monthly)
		reports.GET("/by-category", r.reportController.ByCategory)
		reports.GET("/daily-trend", r.reportController.DailyTrend)
		reports.GET("/top-expenses", r.reportController.TopExpenses)
	}

	// Admin routes (require the administrator role)
	admin := v1.Group("/admin")
	admin.Use(r.authMiddleware.Authenticate(), middleware.RequireAdmin())
	{
		admin.GET("/users", r.adminController.Users)
		admin.GET("/stats", r.adminController.Stats)
	}
}
