// Package middleware holds the API-specific Echo middleware.
package middleware

import (
	"log/slog"
	"net/http"

	"shop/internal/delivery/api/response"
	deliverycontext "shop/internal/delivery/context"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware is installed as Echo's HTTPErrorHandler.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError renders AppErrors, then echo.HTTPErrors, and hides everything
// else behind a generic 500.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if appErr, ok := errors.AsTarget[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.String("code", appErr.ErrorCode()), slog.Any("error", err))
		}
		_ = response.AppError(c, appErr)

		return
	}

	if httpErr, ok := errors.AsTarget[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
	_ = response.Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(),
		"Internal server error, please try again later", nil)
}
