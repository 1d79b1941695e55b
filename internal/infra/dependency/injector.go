// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/household-ledger/backend/config"
	"github.com/household-ledger/backend/internal/application/usecase/auth"
	"github.com/household-ledger/backend/internal/application/usecase/debt"
	"github.com/household-ledger/backend/internal/application/usecase/statistics"
	"github.com/household-ledger/backend/internal/application/usecase/transaction"
	"github.com/household-ledger/backend/internal/application/usecase/transfer"
	"github.com/household-ledger/backend/internal/application/usecase/wallet"
	"github.com/household-ledger/backend/internal/infra/server/router"
	"github.com/household-ledger/backend/internal/integration/adapters"
	"github.com/household-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/household-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/household-ledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	walletRepo := persistence.NewWalletRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	debtRepo := persistence.NewDebtRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, redisClient)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create wallet use cases
	createWalletUseCase := wallet.NewCreateWalletUseCase(walletRepo)
	listWalletsUseCase := wallet.NewListWalletsUseCase(walletRepo, transactionRepo, debtRepo)
	getWalletBalanceUseCase := wallet.NewGetWalletBalanceUseCase(walletRepo, transactionRepo, debtRepo)
	updateWalletUseCase := wallet.NewUpdateWalletUseCase(walletRepo, transactionRepo, debtRepo)
	deleteWalletUseCase := wallet.NewDeleteWalletUseCase(walletRepo, transactionRepo, debtRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, walletRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, walletRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create transfer use case
	executeTransferUseCase := transfer.NewExecuteTransferUseCase(walletRepo, transactionRepo)

	// Create debt use cases
	createDebtUseCase := debt.NewCreateDebtUseCase(debtRepo, walletRepo)
	listDebtsUseCase := debt.NewListDebtsUseCase(debtRepo)
	listPeopleUseCase := debt.NewListPeopleUseCase(debtRepo)
	updateDebtUseCase := debt.NewUpdateDebtUseCase(debtRepo, walletRepo)
	deleteDebtUseCase := debt.NewDeleteDebtUseCase(debtRepo)
	resolvePersonUseCase := debt.NewResolvePersonUseCase(debtRepo, walletRepo)
	deletePersonUseCase := debt.NewDeletePersonUseCase(debtRepo)

	// Create statistics use cases
	getTotalsUseCase := statistics.NewGetTotalsUseCase(transactionRepo)
	getByCategoryUseCase := statistics.NewGetByCategoryUseCase(transactionRepo)
	getByStoreUseCase := statistics.NewGetByStoreUseCase(transactionRepo)
	getMonthlyUseCase := statistics.NewGetMonthlyUseCase(transactionRepo)
	getWeekdayHeatmapUseCase := statistics.NewGetWeekdayHeatmapUseCase(transactionRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	walletController := controller.NewWalletController(
		createWalletUseCase,
		listWalletsUseCase,
		getWalletBalanceUseCase,
		updateWalletUseCase,
		deleteWalletUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	transferController := controller.NewTransferController(executeTransferUseCase)

	debtController := controller.NewDebtController(
		createDebtUseCase,
		listDebtsUseCase,
		listPeopleUseCase,
		updateDebtUseCase,
		deleteDebtUseCase,
		resolvePersonUseCase,
		deletePersonUseCase,
	)

	statisticsController := controller.NewStatisticsController(
		getTotalsUseCase,
		getByCategoryUseCase,
		getByStoreUseCase,
		getMonthlyUseCase,
		getWeekdayHeatmapUseCase,
	)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		walletController,
		transactionController,
		transferController,
		debtController,
		statisticsController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
