package cache

import (
	"context"
	"time"

	"shop/internal/domain/service"
)

type noopCache struct{}

// NewNoop returns a cache that never holds anything.
func NewNoop() service.CatalogCache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string, any) (bool, error) { return false, nil }

func (noopCache) Set(context.Context, string, any, time.Duration) error { return nil }

func (noopCache) DeletePrefix(context.Context, string) error { return nil }
