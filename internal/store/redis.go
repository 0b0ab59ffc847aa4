package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultKey names the slot in key-value backends.
const DefaultKey = "adept-play-db"

// RedisBackend persists the slot under a single Redis key with no expiry.
type RedisBackend struct {
	rdb *redis.Client
	key string
}

func NewRedisBackend(rdb *redis.Client, key string) *RedisBackend {
	if key == "" {
		key = DefaultKey
	}
	return &RedisBackend{rdb: rdb, key: key}
}

func (r *RedisBackend) Read(ctx context.Context) ([]byte, error) {
	b, err := r.rdb.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", r.key, err)
	}
	return b, nil
}

func (r *RedisBackend) Write(ctx context.Context, body []byte) error {
	if err := r.rdb.Set(ctx, r.key, body, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}

func (r *RedisBackend) Delete(ctx context.Context) error {
	if err := r.rdb.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", r.key, err)
	}
	return nil
}
