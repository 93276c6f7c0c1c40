package infrastructure

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/personalfinancemanagentdashboard/babu/config"
	"github.com/personalfinancemanagentdashboard/babu/internal/logger"
)

// Cache wraps an optional Redis client. With no REDIS_ADDR configured every
// lookup misses and every write is a no-op, so callers never branch on
// whether caching is enabled.
type Cache struct {
	client *redis.Client
}

func NewCache(cfg config.RedisConfig) *Cache {
	if !cfg.Enabled() {
		return &Cache{}
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Str("addr", cfg.Addr).Msg("Redis unreachable, caching disabled")
		return &Cache{}
	}

	logger.Info().Str("addr", cfg.Addr).Msg("Redis cache connected")
	return &Cache{client: client}
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if c.client == nil {
		return "", false
	}
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if c.client == nil {
		return
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Failed to write cache entry")
	}
}
