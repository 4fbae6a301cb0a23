package main

import (
	"net/http"
	"os"

	"estatesync-listings/internal/handlers"
	"estatesync-listings/internal/middleware"
	"estatesync-listings/internal/repositories"
	"estatesync-listings/internal/services"
	"estatesync-listings/internal/validators"
	"estatesync-listings/pkg/config"
	"estatesync-listings/pkg/database"
	"estatesync-listings/pkg/logger"
	"estatesync-listings/pkg/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App represents the application structure
type App struct {
	Config         *config.Config
	Router         *gin.Engine
	WebhookHandler *handlers.WebhookHandler
	ListingHandler *handlers.ListingHandler
	UserHandler    *handlers.UserHandler
	RateLimiter    *middleware.RateLimiter
	Server         *http.Server
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeDatabase()
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize the database connection
func (a *App) initializeDatabase() {
	if err := database.InitDB(a.Config.Database.DSN); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// repositories
	listingRepo := repositories.NewListingRepository(database.DB)

	// validators
	listingValidator := validators.NewListingValidator()

	// services
	listingService := services.NewListingService(listingRepo, listingValidator)
	authService := services.NewAuthService(a.Config)

	// handlers
	a.WebhookHandler = handlers.NewWebhookHandler(listingService)
	a.ListingHandler = handlers.NewListingHandler(listingService)
	a.UserHandler = handlers.NewUserHandler(authService)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	database.CloseDB()
}
