package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/stockpro/stockpro-api/internal/application/service"
	"github.com/stockpro/stockpro-api/internal/config"
	"github.com/stockpro/stockpro-api/internal/infrastructure/database"
	"github.com/stockpro/stockpro-api/internal/infrastructure/repository"
	"github.com/stockpro/stockpro-api/internal/presentation/http/handler"
	"github.com/stockpro/stockpro-api/internal/presentation/http/routes"
	"github.com/stockpro/stockpro-api/pkg/printer"
	"github.com/stockpro/stockpro-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default roles, permissions and the optional admin account
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	itemRepo := repository.NewItemRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	stockLedger := repository.NewStockLedger(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, jwtManager)
	itemService := service.NewItemService(itemRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	cartService := service.NewCartService(itemRepo)
	checkoutService := service.NewCheckoutService(cartService, stockLedger, transactionRepo, cfg.Checkout.TaxRate, cfg.Store)
	stockInService := service.NewStockInService(stockLedger)
	transactionService := service.NewTransactionService(transactionRepo)
	dashboardService := service.NewDashboardService(itemRepo, transactionRepo, userRepo)
	exportService := service.NewExportService(transactionRepo)
	userService := service.NewUserService(userRepo, roleRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printService := service.NewPrintService(thermalPrinter, checkoutService, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Item:        handler.NewItemHandler(itemService),
		Category:    handler.NewCategoryHandler(categoryService),
		Cart:        handler.NewCartHandler(cartService, cfg.Checkout.TaxRate),
		Checkout:    handler.NewCheckoutHandler(checkoutService),
		Stock:       handler.NewStockHandler(stockInService),
		Transaction: handler.NewTransactionHandler(transactionService, exportService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
		User:        handler.NewUserHandler(userService),
		Printer:     handler.NewPrinterHandler(printService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
