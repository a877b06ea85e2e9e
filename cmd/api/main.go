// Package main is the entry point for the chatcart service.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akarlsons/chatcart-service/internal/config"
	"github.com/akarlsons/chatcart-service/internal/database"
	"github.com/akarlsons/chatcart-service/internal/handlers"
	"github.com/akarlsons/chatcart-service/internal/repository"
	"github.com/akarlsons/chatcart-service/internal/routes"
	"github.com/akarlsons/chatcart-service/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	// Initialize database
	db, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)

	// Initialize services
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	if tokenService == nil {
		log.Fatal("JWT_SECRET must be at least 32 bytes")
	}
	authService := service.NewAuthService(userRepo, service.NewPasswordHasher(), tokenService)
	productService := service.NewProductService(productRepo)

	// Initialize handlers
	cookieHelper := handlers.NewCookieHelper(handlers.CookieConfig{
		Secure: !cfg.IsDevelopment(),
	})
	authHandler := handlers.NewAuthHandler(authService, cookieHelper, cfg.JWTExpiry)
	productHandler := handlers.NewProductHandler(productService)
	healthHandler := handlers.NewHealthHandler()

	// Setup router
	router := gin.Default()
	routes.Setup(router, authHandler, productHandler, healthHandler, cfg, tokenService, userRepo)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting chatcart service on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}
