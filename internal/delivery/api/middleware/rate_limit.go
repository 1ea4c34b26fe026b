package middleware

import (
	"shop/config"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewRateLimiter throttles per client IP with an in-memory token bucket.
// It is a pass-through when rate limiting is not enabled.
func NewRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	rl := cfg.HTTP.RateLimit
	if rl == nil || !rl.Enabled || rl.RPS <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(rl.RPS),
		Burst:     rl.Burst,
		ExpiresIn: rl.ExpiresIn,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
	})
}
