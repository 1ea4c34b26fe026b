package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shop/internal/delivery/api/middleware"
	"shop/internal/delivery/api/validator"
	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// testRoute describes one request against a single registered route.
type testRoute struct {
	method      string
	route       string
	target      string
	handler     echo.HandlerFunc
	body        io.Reader
	contentType string
	user        *entity.User
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	e.Validator = validator.New()

	return e
}

func serve(t *testing.T, tr testRoute) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	e := newTestEcho()
	withUser := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if tr.user != nil {
				deliverycontext.SetUser(c, tr.user)
			}

			return next(c)
		}
	}
	e.Add(tr.method, tr.route, tr.handler, withUser)

	target := tr.target
	if target == "" {
		target = tr.route
	}
	req := httptest.NewRequest(tr.method, target, tr.body)
	if tr.contentType != "" {
		req.Header.Set(echo.HeaderContentType, tr.contentType)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}

func newTestUser(verified bool) *entity.User {
	return &entity.User{
		ID:            uuid.New(),
		Username:      "ann",
		Email:         "ann@example.com",
		Active:        true,
		VerifiedEmail: verified,
		CreatedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}
