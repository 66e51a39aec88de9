package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/imagify-art/imagify-backend/internal/config"
	"github.com/imagify-art/imagify-backend/internal/http/handlers"
	"github.com/imagify-art/imagify-backend/internal/http/routes"
	"github.com/imagify-art/imagify-backend/internal/services/database"
	"github.com/imagify-art/imagify-backend/internal/services/generator"
	"github.com/imagify-art/imagify-backend/internal/services/stats"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize services
	gen := generator.NewGenerator()

	db, err := database.NewService(cfg.Database)
	if err != nil {
		logger.Warn("Failed to initialize database service", zap.Error(err))
		// Continue without the database; /test reports it as unavailable
	}

	usage := stats.NewService(cfg.Redis, logger)

	// Initialize handlers
	imageHandler := handlers.NewImageHandler(gen, db, usage, logger, cfg)

	router := routes.NewRouter(imageHandler, logger)

	// Browser clients may call from any origin
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      corsHandler.Handler(router.SetupRoutes()),
	}

	// Start server
	go func() {
		logger.Info("Starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
