// Package cache implements the catalog read cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"shop/config"
	"shop/internal/domain/lifecycle"
	"shop/internal/domain/service"
	"shop/internal/errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

const (
	keyNamespace  = "shop:"
	scanBatchSize = 100
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis backed cache, or a no-op cache when Redis is not configured.
func New(params Params) service.CatalogCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, catalog cache disabled")

		return NewNoop()
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// The cache is optional at runtime; an unreachable server only degrades reads.
			if err := rdb.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return NewRedisCache(rdb)
}

type redisCache struct {
	rdb *redis.Client
}

// NewRedisCache wraps an existing client.
func NewRedisCache(rdb *redis.Client) service.CatalogCache {
	return &redisCache{rdb: rdb}
}

func (c *redisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.rdb.Get(ctx, keyNamespace+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, errors.Wrapf(err, "failed to read cache key %s", key)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, errors.Wrapf(err, "failed to decode cache key %s", key)
	}

	return true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode cache key %s", key)
	}

	if err := c.rdb.Set(ctx, keyNamespace+key, raw, ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to write cache key %s", key)
	}

	return nil
}

// DeletePrefix walks the keyspace with SCAN so large caches never block the server.
func (c *redisCache) DeletePrefix(ctx context.Context, prefix string) error {
	iter := c.rdb.Scan(ctx, 0, keyNamespace+prefix+"*", scanBatchSize).Iterator()

	batch := make([]string, 0, scanBatchSize)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatchSize {
			if err := c.rdb.Del(ctx, batch...).Err(); err != nil {
				return errors.Wrapf(err, "failed to delete cache prefix %s", prefix)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return errors.Wrapf(err, "failed to scan cache prefix %s", prefix)
	}

	if len(batch) > 0 {
		if err := c.rdb.Del(ctx, batch...).Err(); err != nil {
			return errors.Wrapf(err, "failed to delete cache prefix %s", prefix)
		}
	}

	return nil
}
