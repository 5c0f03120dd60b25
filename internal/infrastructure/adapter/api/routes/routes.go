package routes

import (
	"net/http"

	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	authUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/auth"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/api/handler"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers bundles every API handler for route registration
type Handlers struct {
	Auth      *handler.AuthHandler
	Item      *handler.ItemHandler
	Catalog   *handler.CatalogHandler
	Purchase  *handler.PurchaseHandler
	Wallet    *handler.WalletHandler
	Profile   *handler.ProfileHandler
	Dashboard *handler.DashboardHandler
	Admin     *handler.AdminHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	handlers Handlers,
	authService *authUseCase.Service,
	logger coreport.Logger,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", handlers.Auth.Register)
		authRoutes.POST("/login", handlers.Auth.Login)
	}

	productRoutes := router.Group("/products")
	{
		productRoutes.GET("", handlers.Catalog.Browse)
		productRoutes.GET("/featured", handlers.Catalog.Featured)
		productRoutes.GET("/recent", handlers.Catalog.Recent)
		productRoutes.GET("/categories", handlers.Catalog.Categories)
		productRoutes.GET("/:itemId", handlers.Catalog.Get)
	}

	router.GET("/search/items", handlers.Catalog.Search)

	// Authenticated routes
	authed := router.Group("")
	authed.Use(middleware.RequireAuth(authService, logger))
	{
		authed.GET("/auth/me", handlers.Auth.Me)

		itemRoutes := authed.Group("/items")
		{
			itemRoutes.POST("", handlers.Item.Create)
			itemRoutes.GET("/mine", handlers.Item.ListMine)
			itemRoutes.GET("/:itemId", handlers.Item.Get)
			itemRoutes.PATCH("/:itemId", handlers.Item.Update)
			itemRoutes.DELETE("/:itemId", handlers.Item.Remove)
		}

		transactionRoutes := authed.Group("/transactions")
		{
			transactionRoutes.POST("/purchase", handlers.Purchase.Purchase)
			transactionRoutes.GET("", handlers.Purchase.List)
			transactionRoutes.GET("/:transactionId", handlers.Purchase.Get)
		}

		walletRoutes := authed.Group("/wallet")
		{
			walletRoutes.GET("/balance", handlers.Wallet.GetBalance)
			walletRoutes.POST("/deposit", handlers.Wallet.Deposit)
			walletRoutes.POST("/transfer", handlers.Wallet.Transfer)
			walletRoutes.GET("/deposits", handlers.Wallet.ListDeposits)
		}

		authed.GET("/profile", handlers.Profile.Overview)

		dashboardRoutes := authed.Group("/dashboard")
		{
			dashboardRoutes.GET("/summary", handlers.Dashboard.Summary)
			dashboardRoutes.GET("/sales-over-time", handlers.Dashboard.SalesOverTime)
			dashboardRoutes.GET("/categories", handlers.Dashboard.SalesByCategory)
			dashboardRoutes.GET("/top-products", handlers.Dashboard.TopProducts)
		}

		adminRoutes := authed.Group("/admin")
		{
			adminRoutes.GET("/users", handlers.Admin.SearchUsers)
			adminRoutes.GET("/deposits", handlers.Admin.SearchDeposits)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
