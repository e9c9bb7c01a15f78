// Package cache provides an optional Redis-backed response cache for
// computed heatmaps. When Redis is not configured the rest of the
// application sees a nil *Cache and every method degrades to a no-op, so
// callers never branch on configuration themselves.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/ahatanar/StudentSpace/internal/config"
	"github.com/ahatanar/StudentSpace/internal/pkg/logger"
)

// Cache wraps a Redis client with JSON marshalling and a fixed TTL.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis per the configuration. Returns (nil, nil) when the
// cache is disabled; a nil *Cache is safe to use.
func New(cfg *config.Config) (*Cache, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}

	ttl, err := time.ParseDuration(cfg.Redis.CacheTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis cache_ttl: %w", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", ttl).Msg("Heatmap cache connected")
	return &Cache{client: client, ttl: ttl}, nil
}

// HeatmapKey builds the cache key for one heatmap computation. Every
// parameter that changes the result is part of the key.
func HeatmapKey(term string, interval int, campus string, includeHybrid bool) string {
	return fmt.Sprintf("heatmap:%s:%d:%s:%t", term, interval, campus, includeHybrid)
}

// Get loads a cached value into dest. Returns false on a miss; cache errors
// are logged and reported as misses so a flaky Redis never fails a request.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		}
		return false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Cache entry undecodable, ignoring")
		return false
	}
	return true
}

// Set stores a value under key for the configured TTL. Failures are logged
// and swallowed.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Cache encode failed")
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
