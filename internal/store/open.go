package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"adept_play/internal/config"
	"adept_play/internal/db"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewRedisClient connects to the configured Redis server. It returns nil
// when no address is configured.
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return rdb, nil
}

// OpenBackend builds the backend selected by STORE_DRIVER. SQL drivers are
// migrated before use; the redis driver needs rdb.
func OpenBackend(cfg *config.Config, rdb *redis.Client) (Backend, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		return NewMemoryBackend(), nil
	case config.StoreFile:
		if dir := filepath.Dir(cfg.StorePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create store dir: %w", err)
			}
		}
		return NewFileBackend(cfg.StorePath), nil
	case config.StoreRedis:
		if rdb == nil {
			return nil, fmt.Errorf("store driver redis needs REDIS_ADDR")
		}
		return NewRedisBackend(rdb, cfg.StoreKey), nil
	}
	if !db.IsSQL(cfg.StoreDriver) {
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
	gdb, err := db.Open(cfg.StoreDriver, cfg.DSN())
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(gdb); err != nil {
		return nil, err
	}
	logrus.WithField("driver", cfg.StoreDriver).Info("SQL store ready")
	return NewGormBackend(gdb, cfg.StoreKey), nil
}
