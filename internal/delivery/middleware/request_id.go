// Package middleware holds transport middleware shared by the API and worker servers.
package middleware

import (
	"log/slog"

	deliverycontext "shop/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength caps client-supplied ids before they reach logs.
const maxRequestIDLength = 128

// RequestIDMiddleware assigns every request an id and a logger tagged with it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process reuses a sane X-Request-Id from the client or mints a uuid, then
// stores the id and the child logger on both the echo and the request context.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))
		ctx := deliverycontext.WithLogger(deliverycontext.WithRequestID(c.Request().Context(), requestID), reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
