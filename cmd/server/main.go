package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gxportfolio/internal/catalog"
	"gxportfolio/internal/config"
	"gxportfolio/internal/content"
	"gxportfolio/internal/handlers"
	"gxportfolio/internal/i18n"
	"gxportfolio/internal/logger"
	"gxportfolio/internal/service"
	"gxportfolio/web"

	"github.com/gorilla/mux"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize simple logging
	logger.Initialize(cfg.Logging)
	appLogger := logger.Default()

	appLogger.Info("Starting GX portfolio on port %d (env: %s)", cfg.Port, cfg.Environment)

	// Command catalog
	commands := catalog.Default()
	stats := commands.Statistics()
	appLogger.Info("Loaded command catalog: %d commands in %d categories", stats.Total, len(stats.Categories))
	for _, c := range stats.Categories {
		appLogger.Debug("  %s: %d", c.Category, c.Count)
	}

	// Translations
	appLogger.Info("Loading translations")
	translations, err := i18n.DefaultTable()
	if err != nil {
		appLogger.Error("Failed to load translations: %v", err)
		log.Fatalf("Failed to load translations: %v", err)
	}
	if err := translations.Validate(); err != nil {
		if cfg.I18NStrict {
			appLogger.Error("Translation coverage check failed: %v", err)
			log.Fatalf("Translation coverage check failed: %v", err)
		}
		appLogger.Warn("Translation coverage check failed: %v", err)
	}
	if lang, ok := translations.Normalize(cfg.DefaultLanguage); ok {
		cfg.DefaultLanguage = lang
	} else {
		appLogger.Warn("DEFAULT_LANGUAGE '%s' is not supported, using '%s'", cfg.DefaultLanguage, i18n.SourceLanguage)
		cfg.DefaultLanguage = i18n.SourceLanguage
	}
	appLogger.Info("Translations ready: %v (default: %s, strict: %t)", translations.Languages(), cfg.DefaultLanguage, cfg.I18NStrict)

	// Page sections
	contentService := content.NewService(appLogger)
	if err := contentService.Load(web.Content(), "."); err != nil {
		appLogger.Error("Failed to load content: %v", err)
		log.Fatalf("Failed to load content: %v", err)
	}

	// Initialize services
	appLogger.Info("Initializing services")
	commandService := service.NewCommandService(commands, appLogger)
	contactService := service.NewContactService(appLogger)

	// Initialize handlers
	appLogger.Info("Initializing handlers")
	handler := handlers.NewHandler(commandService, contactService, contentService, translations, cfg, appLogger)

	// Setup router
	appLogger.Info("Setting up HTTP router")
	router := mux.NewRouter()

	handler.RegisterRoutes(router)

	// Setup server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		appLogger.Info("Starting HTTP server on %s (%s)", server.Addr, cfg.BaseURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed to start: %v", err)
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Received shutdown signal, initiating graceful shutdown")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	appLogger.Info("Shutting down HTTP server (timeout: 30s)")
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown: %v", err)
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	appLogger.Info("Server shutdown completed successfully")
}
