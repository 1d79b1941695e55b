// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/household-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/household-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	walletController      *controller.WalletController
	transactionController *controller.TransactionController
	transferController    *controller.TransferController
	debtController        *controller.DebtController
	statisticsController  *controller.StatisticsController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	walletController *controller.WalletController,
	transactionController *controller.TransactionController,
	transferController *controller.TransferController,
	debtController *controller.DebtController,
	statisticsController *controller.StatisticsController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		walletController:      walletController,
		transactionController: transactionController,
		transferController:    transferController,
		debtController:        debtController,
		statisticsController:  statisticsController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
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
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Wallet routes (require authentication)
		if r.walletController != nil && r.authMiddleware != nil {
			wallets := v1.Group("/wallets")
			wallets.Use(r.authMiddleware.Authenticate())
			{
				wallets.GET("", r.walletController.List)
				wallets.POST("", r.walletController.Create)
				wallets.GET("/:id/balance", r.walletController.GetBalance)
				wallets.PUT("/:id", r.walletController.Update)
				wallets.DELETE("/:id", r.walletController.Delete)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Transfer routes (require authentication)
		if r.transferController != nil && r.authMiddleware != nil {
			transfers := v1.Group("/transfers")
			transfers.Use(r.authMiddleware.Authenticate())
			{
				transfers.POST("", r.transferController.Execute)
			}
		}

		// Debt routes (require authentication)
		if r.debtController != nil && r.authMiddleware != nil {
			debts := v1.Group("/debts")
			debts.Use(r.authMiddleware.Authenticate())
			{
				debts.GET("", r.debtController.List)
				debts.POST("", r.debtController.Create)
				debts.PUT("/:id", r.debtController.Update)
				debts.DELETE("/:id", r.debtController.Delete)

				// Person ledger routes (nested under debts)
				people := debts.Group("/people")
				{
					people.GET("", r.debtController.ListPeople)
					people.POST("/:name/resolve", r.debtController.ResolvePerson)
					people.DELETE("/:name", r.debtController.DeletePerson)
				}
			}
		}

		// Statistics routes (require authentication)
		if r.statisticsController != nil && r.authMiddleware != nil {
			statistics := v1.Group("/statistics")
			statistics.Use(r.authMiddleware.Authenticate())
			{
				statistics.GET("/totals", r.statisticsController.Totals)
				statistics.GET("/by-category", r.statisticsController.ByCategory)
				statistics.GET("/by-store", r.statisticsController.ByStore)
				statistics.GET("/monthly", r.statisticsController.Monthly)
				statistics.GET("/weekday-heatmap", r.statisticsController.WeekdayHeatmap)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
