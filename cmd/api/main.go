package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brandbear/internal/assistant"
	"brandbear/internal/config"
	"brandbear/internal/handler"
	"brandbear/internal/router"
	"brandbear/internal/service"
	"brandbear/internal/session"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; real environment variables win
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("catalog_source", cfg.Catalog.Source).Msg("starting brandbear storefront server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the catalog once; it is immutable afterwards
	products, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	// Initialize styling assistant
	completer, err := newCompleter(ctx, cfg.Assistant, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize assistant: %w", err)
	}
	assistantClient := assistant.NewClient(completer, assistant.Config{
		SystemInstruction: assistant.SystemInstruction(products.Products()),
		Temperature:       float32(cfg.Assistant.Temperature),
		Timeout:           cfg.Assistant.Timeout(),
	}, logger)

	// Initialize session manager and its idle sweeper
	sessions := session.NewManager(session.Config{
		IdleTimeout:    cfg.Session.IdleTimeout(),
		SweepInterval:  cfg.Session.SweepInterval(),
		SizeErrorDelay: cfg.Session.SizeErrorDelay(),
	}, assistantClient, logger)

	sweeperDone := make(chan struct{})
	go func() {
		defer close(sweeperDone)
		sessions.Run(ctx)
	}()

	// Initialize services
	productService := service.NewProductService(products, logger)
	sessionService := service.NewSessionService(sessions, products, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	sessionHandler := handler.NewSessionHandler(sessionService, logger)

	// Initialize router
	mux := router.New(productHandler, sessionHandler, cfg.Server.AllowedOrigins, logger)

	// Create HTTP server; writes must outlive a full assistant round trip
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Assistant.Timeout() + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Int("products", products.Len()).
			Bool("assistant_enabled", cfg.Assistant.Enabled).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		cancel()
		<-sweeperDone
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			cancel()
			<-sweeperDone
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		// Stop the sweeper; it discards every remaining session
		cancel()
		<-sweeperDone

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newCompleter returns the Gemini completer, or one that always fails when the
// assistant is disabled so every message gets the fallback reply.
func newCompleter(ctx context.Context, cfg config.AssistantConfig, logger zerolog.Logger) (assistant.Completer, error) {
	if !cfg.Enabled {
		logger.Info().Msg("styling assistant disabled, replies will use the fallback message")
		return assistant.Unavailable(), nil
	}

	return assistant.NewGeminiCompleter(ctx, cfg.APIKey, cfg.Model, logger)
}
