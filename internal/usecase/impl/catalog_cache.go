package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shop/config"
	"shop/internal/domain/service"

	"github.com/google/uuid"
)

const defaultCatalogCacheTTL = time.Minute

// Cache key prefixes; a write invalidates its whole prefix.
const (
	categoryCachePrefix = "categories:"
	productCachePrefix  = "products:"
)

func categoryListKey() string {
	return categoryCachePrefix + "all"
}

func productKey(id uuid.UUID) string {
	return productCachePrefix + "id:" + id.String()
}

func productPageKey(page int) string {
	return fmt.Sprintf("%spage:%d", productCachePrefix, page)
}

func catalogCacheTTL(cfg *config.Config) time.Duration {
	if cfg.Redis != nil && cfg.Redis.TTL > 0 {
		return cfg.Redis.TTL
	}

	return defaultCatalogCacheTTL
}

// catalogCache wraps the cache so that cache faults only degrade to database reads.
type catalogCache struct {
	cache service.CatalogCache
	ttl   time.Duration
}

func (c catalogCache) load(ctx context.Context, logger *slog.Logger, key string, dest any) bool {
	found, err := c.cache.Get(ctx, key, dest)
	if err != nil {
		logger.Warn("Catalog cache read failed", slog.String("key", key), slog.Any("error", err))

		return false
	}

	return found
}

func (c catalogCache) store(ctx context.Context, logger *slog.Logger, key string, value any) {
	if err := c.cache.Set(ctx, key, value, c.ttl); err != nil {
		logger.Warn("Catalog cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

func (c catalogCache) invalidate(ctx context.Context, logger *slog.Logger, prefixes ...string) {
	for _, prefix := range prefixes {
		if err := c.cache.DeletePrefix(ctx, prefix); err != nil {
			logger.Warn("Catalog cache invalidation failed", slog.String("prefix", prefix), slog.Any("error", err))
		}
	}
}
