package main

import (
	"context"  // Context for startup and shutdown
	"errors"   // Server close detection
	"net/http" // HTTP server
	"os"       // Signals
	"os/signal"
	"syscall"
	"time" // Shutdown grace period

	"adept_play/internal/api"      // Custom package for API handlers
	"adept_play/internal/auth"     // Credential checks
	"adept_play/internal/config"   // Custom package for configuration
	"adept_play/internal/ledger"   // Ledger mutations
	"adept_play/internal/query"    // Read views
	"adept_play/internal/store"    // Persistence
	"adept_play/internal/titlegen" // Title suggestions
	"adept_play/internal/utils"    // Redis cache

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	cfg.ConfigureLogger() // Setup logger

	ctx := context.Background()

	// Setup Redis client, optional unless it backs the store
	redisClient, err := store.NewRedisClient(ctx, cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Setup the store backend selected by STORE_DRIVER
	backend, err := store.OpenBackend(cfg, redisClient)
	if err != nil {
		logrus.Fatalf("failed to open store: %v", err)
	}
	st := store.New(backend, store.WithHashCost(cfg.BcryptCost))

	// Title generation falls back to a template without an API key
	var generator titlegen.Generator
	if cfg.GeminiAPIKey != "" {
		generator = titlegen.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel, &http.Client{Timeout: cfg.TitleTimeout})
	}
	titleCache := utils.NewCache(redisClient, "titlegen:", cfg.TitleCacheTTL) // Nil-safe without Redis

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	api.Register(r, api.Services{
		Store:     st,
		Engine:    ledger.New(st, ledger.WithHashCost(cfg.BcryptCost)),
		Queries:   query.New(st),
		Gate:      auth.NewGate(st),
		Suggester: titlegen.NewSuggester(generator, titleCache, cfg.TitleTimeout),
		JWTSecret: cfg.JWTSecret,
	})

	srv := &http.Server{Addr: cfg.ListenAddr(), Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logrus.WithField("addr", srv.Addr).Info("Server running") // Log server start
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	// Wait for a termination signal, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("shutdown failed: %v", err)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	logrus.Info("Server stopped")
}
