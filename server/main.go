package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/shubhankar1313/glf-banner-generator/internal/config"
	"github.com/shubhankar1313/glf-banner-generator/internal/http/handlers"
	"github.com/shubhankar1313/glf-banner-generator/internal/http/routes"
	"github.com/shubhankar1313/glf-banner-generator/internal/services/cache"
	"github.com/shubhankar1313/glf-banner-generator/internal/services/compositor"
	"github.com/shubhankar1313/glf-banner-generator/internal/services/template"
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

	// Load the card template once; it is shared read-only across requests
	tpl, err := template.Load(cfg.Template)
	if err != nil {
		logger.Fatal("Failed to load card template", zap.Error(err))
	}
	w, h := tpl.Size()
	logger.Info("Template loaded",
		zap.String("path", cfg.Template.Path),
		zap.Int("width", w),
		zap.Int("height", h))

	// Initialize services
	comp := compositor.NewCompositor()

	cardCache := cache.New(cfg.Redis)
	if cardCache == nil {
		logger.Info("Card cache disabled: no Redis address configured")
	}
	defer cardCache.Close()

	// Initialize handlers
	cardHandler := handlers.NewCardHandler(comp, tpl, cardCache, logger, cfg)

	router := routes.NewRouter(cardHandler, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      router.SetupRoutes(),
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
