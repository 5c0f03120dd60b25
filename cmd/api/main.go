package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	authUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/auth"
	catalogUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/catalog"
	itemUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/item"
	purchaseUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/purchase"
	reportingUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/reporting"
	userUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/user"
	walletUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/wallet"

	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/api/handler"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/api/routes"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/database"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/database/migration"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/logger"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/repository"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/security"
	timeProvider "github.com/bazaarhq/marketplace/internal/infrastructure/adapter/time"
	"github.com/bazaarhq/marketplace/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logger.LevelFromString(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	// Run migrations
	if err := dbManager.MigrationManager().MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Repositories
	db := dbManager.DB()
	userRepo := repository.NewUserRepository(db, tp, appLogger)
	itemRepo := repository.NewItemRepository(db, appLogger)
	transactionRepo := repository.NewTransactionRepository(db, appLogger)
	depositRepo := repository.NewDepositRepository(db, appLogger)
	tokenRepo := repository.NewTokenRepository(db, tp, appLogger)
	reportingRepo := repository.NewReportingRepository(db, appLogger)

	uow := dbManager.CreateUnitOfWork()

	// Security adapters
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	issuer := security.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenLifetime, tp)

	// Use cases
	authService := authUseCase.NewService(userRepo, tokenRepo, hasher, issuer, tp, appLogger)
	userService := userUseCase.NewUseCase(userRepo, itemRepo, transactionRepo, appLogger)
	itemManager := itemUseCase.NewManager(uow, itemRepo, tp, appLogger)
	catalogService := catalogUseCase.NewService(itemRepo, appLogger)
	purchaseEngine := purchaseUseCase.NewEngine(uow, tp, appLogger)
	walletService := walletUseCase.NewService(uow, depositRepo, tp, appLogger)
	reportingService := reportingUseCase.NewService(reportingRepo, tp, appLogger)

	// Seed development data
	if cfg.Database.SeedDemoData {
		if err := migration.SeedDemoData(context.Background(), authService, walletService, itemManager, appLogger); err != nil {
			appLogger.Warn("Failed to seed demo data", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// HTTP layer
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, userService, appLogger),
		Item:      handler.NewItemHandler(itemManager, appLogger),
		Catalog:   handler.NewCatalogHandler(catalogService, appLogger),
		Purchase:  handler.NewPurchaseHandler(purchaseEngine, userService, appLogger),
		Wallet:    handler.NewWalletHandler(walletService, userService, appLogger),
		Profile:   handler.NewProfileHandler(userService, appLogger),
		Dashboard: handler.NewDashboardHandler(reportingService, appLogger),
		Admin:     handler.NewAdminHandler(userService, walletService, appLogger),
	}, authService, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
