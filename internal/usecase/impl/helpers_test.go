package impl

import (
	"io"
	"log/slog"

	"shop/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
			AdminKey:   "let-me-in",
		},
	}
	cfg.Pagination.PageSize = 10

	return cfg
}
