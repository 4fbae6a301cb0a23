package main

import (
	"net/http"

	"estatesync-listings/internal/middleware"
	"estatesync-listings/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// configure all application routes
func (a *App) setupRoutes() {
	a.setupHealthRoutes()
	a.setupMetricsRoutes()
	a.setupAPIRoutes()
}

// health check endpoint
func (a *App) setupHealthRoutes() {
	a.Router.GET("/health", func(c *gin.Context) {
		if err := database.DB.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "database unreachable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// Prometheus metrics endpoint
func (a *App) setupMetricsRoutes() {
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// API routes
func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api")

	// public routes
	api.POST("/login", a.UserHandler.Login)

	// webhook intake, guarded by a shared token when one is configured
	api.POST("/webhook/listings",
		middleware.WebhookTokenMiddleware(a.Config.Webhook.Token),
		a.WebhookHandler.Receive)

	// protected read routes
	listings := api.Group("/listings")
	listings.Use(middleware.AuthMiddleware(a.Config.JWT.Secret))
	{
		listings.GET("", a.ListingHandler.GetListings)
		listings.GET("/:id", a.ListingHandler.GetListingByID)
	}
}
