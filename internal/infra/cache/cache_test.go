package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"shop/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNew_WithoutRedisReturnsNoop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	c := New(Params{
		Lifecycle: lc,
		Config:    &config.Config{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	_, ok := c.(noopCache)
	assert.True(t, ok)
}

func TestNoopCache(t *testing.T) {
	c := NewNoop()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "products:1", map[string]int{"a": 1}, time.Minute))

	var dest map[string]int
	found, err := c.Get(ctx, "products:1", &dest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, dest)

	assert.NoError(t, c.DeletePrefix(ctx, "products:"))
}
