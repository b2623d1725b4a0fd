package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stockpro/stockpro-api/internal/config"
	domainRepo "github.com/stockpro/stockpro-api/internal/domain/repository"
	"github.com/stockpro/stockpro-api/internal/presentation/http/handler"
	"github.com/stockpro/stockpro-api/internal/presentation/http/middleware"
	"github.com/stockpro/stockpro-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Item        *handler.ItemHandler
	Category    *handler.CategoryHandler
	Cart        *handler.CartHandler
	Checkout    *handler.CheckoutHandler
	Stock       *handler.StockHandler
	Transaction *handler.TransactionHandler
	Dashboard   *handler.DashboardHandler
	User        *handler.UserHandler
	Printer     *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile
	protected.GET("/profile", h.Auth.Profile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard",
		middleware.RequirePermission("view-dashboard"), h.Dashboard.Stats)

	registerItemRoutes(protected, h)
	registerCategoryRoutes(protected, h)
	registerCheckoutRoutes(protected, h, deps)
	registerStockRoutes(protected, h, deps)
	registerTransactionRoutes(protected, h)
	registerUserRoutes(protected, h)
	registerPrinterRoutes(protected, h)
}

func registerItemRoutes(protected *gin.RouterGroup, h *Handlers) {
	items := protected.Group("/items")
	{
		// Reads are open to any authenticated user; checkout needs the list.
		items.GET("", h.Item.List)
		items.GET("/low-stock", h.Item.LowStock)
		items.GET("/barcode/:barcode", h.Item.GetByBarcode)
		items.GET("/:id", h.Item.Get)

		manage := items.Group("")
		manage.Use(middleware.RequirePermission("manage-items"))
		{
			manage.POST("", h.Item.Create)
			manage.PUT("/:id", h.Item.Update)
			manage.DELETE("/:id", h.Item.Delete)
		}
	}
}

func registerCategoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	categories := protected.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.GET("/:id", h.Category.Get)

		manage := categories.Group("")
		manage.Use(middleware.RequirePermission("manage-categories"))
		{
			manage.POST("", h.Category.Create)
			manage.PUT("/:id", h.Category.Update)
			manage.DELETE("/:id", h.Category.Delete)
		}
	}
}

func registerCheckoutRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	cart := protected.Group("/cart")
	cart.Use(middleware.RequirePermission("checkout"))
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/items", h.Cart.AddItem)
		cart.PUT("/items/:itemId", h.Cart.SetQuantity)
		cart.DELETE("/items/:itemId", h.Cart.RemoveItem)
		cart.DELETE("", h.Cart.Clear)
	}

	checkout := protected.Group("/checkout")
	checkout.Use(middleware.RequirePermission("checkout"))
	{
		// Checkout requires an idempotency key so a duplicate submit replays
		// the cached receipt instead of decrementing stock twice.
		checkout.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Checkout.Checkout)
		checkout.GET("/:checkoutId/receipt", h.Checkout.GetReceipt)
	}
}

func registerStockRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	stock := protected.Group("/stock")
	stock.Use(middleware.RequirePermission("record-stock"))
	{
		stock.POST("/in", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Stock.StockIn)
	}
}

func registerTransactionRoutes(protected *gin.RouterGroup, h *Handlers) {
	transactions := protected.Group("/transactions")
	transactions.Use(middleware.RequirePermission("view-reports"))
	{
		transactions.GET("", h.Transaction.List)
		transactions.GET("/summary", h.Transaction.Summary)
		transactions.GET("/export", h.Transaction.Export)
		transactions.GET("/:id", h.Transaction.Get)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"))
	{
		users.GET("", h.User.List)
		users.GET("/roles", h.User.Roles)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.PUT("/:id/roles", h.User.SetRoles)
		users.DELETE("/:id", h.User.Delete)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printers := protected.Group("/printer")
	printers.Use(middleware.RequirePermission("print-receipts"))
	{
		printers.GET("/status", h.Printer.Status)
		printers.POST("/receipts/:checkoutId", h.Printer.PrintReceipt)
	}
}
