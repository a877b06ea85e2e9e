// Package routes defines HTTP routes for the chatcart service.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/akarlsons/chatcart-service/internal/config"
	"github.com/akarlsons/chatcart-service/internal/handlers"
	"github.com/akarlsons/chatcart-service/internal/middleware"
	"github.com/akarlsons/chatcart-service/internal/repository"
	"github.com/akarlsons/chatcart-service/internal/service"
)

// Setup configures all HTTP routes for the application.
func Setup(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	productHandler *handlers.ProductHandler,
	healthHandler *handlers.HealthHandler,
	cfg *config.Config,
	tokens service.TokenService,
	users repository.UserRepository,
) {
	securityMiddleware := middleware.NewSecurityMiddleware(
		cfg.AllowedOrigins,
		middleware.MethodsCSV(http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions),
		"Content-Type,Authorization",
		true,
	)
	router.Use(securityMiddleware.Apply())
	router.Use(middleware.Metrics())

	// Health check
	router.GET("/health", healthHandler.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth routes carry the session cookie, so the group is CSRF-gated.
	auth := router.Group("/api/auth")
	auth.Use(middleware.CSRF(middleware.CSRFConfig{AllowedOrigins: cfg.AllowedOrigins}))
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)

		protected := auth.Group("")
		protected.Use(middleware.RequireAuth(tokens, users))
		{
			protected.GET("/me", authHandler.Me)
			protected.PUT("/update-profile", authHandler.UpdateProfile)
		}
	}

	// Product catalog routes
	products := router.Group("/api/products")
	{
		products.GET("", productHandler.List)
		products.POST("", productHandler.Create)
		products.PUT("/:id", productHandler.Update)
		products.DELETE("/:id", productHandler.Delete)
	}
}
