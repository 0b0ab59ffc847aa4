package main

import (
	"context" // Context for store operations
	"flag"    // Command-line flags

	"adept_play/internal/config" // Custom import path (Config)
	"adept_play/internal/store"  // Custom import path (Store)

	"github.com/sirupsen/logrus" // Structured logging
)

// Main entry point for installation: migrate SQL schemas and seed the store
func main() {
	force := flag.Bool("force", false, "discard existing data and reseed")
	flag.Parse()

	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	cfg.ConfigureLogger()

	ctx := context.Background()
	redisClient, err := store.NewRedisClient(ctx, cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	backend, err := store.OpenBackend(cfg, redisClient) // Runs migrations for SQL drivers
	if err != nil {
		logrus.Fatalf("failed to open store: %v", err)
	}
	st := store.New(backend, store.WithHashCost(cfg.BcryptCost))

	installed, err := st.Exists(ctx)
	if err != nil {
		logrus.Fatalf("failed to inspect store: %v", err)
	}
	if installed && !*force {
		logrus.Info("Store already installed, pass -force to reseed")
		return
	}
	if err := st.Reset(ctx); err != nil {
		logrus.Fatalf("failed to reset store: %v", err)
	}
	db, err := st.Load(ctx) // Seeds the empty store
	if err != nil {
		logrus.Fatalf("failed to seed store: %v", err)
	}
	logrus.WithFields(logrus.Fields{
		"driver":      cfg.StoreDriver,
		"accounts":    len(db.Accounts),
		"tournaments": len(db.Tournaments),
	}).Info("Store installed")
}
