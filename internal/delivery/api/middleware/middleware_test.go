package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shop/config"
	"shop/internal/delivery/api/response"
	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/errors"
	mockUsecase "shop/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func okHandler(c echo.Context) error {
	return response.OK(c, response.MessageBody{Message: "ok"})
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "ann", Active: true}

	tests := []struct {
		name     string
		header   string
		ucUser   *entity.User
		ucErr    error
		callsUC  bool
		wantCode int
		wantErr  string
	}{
		{name: "valid token", header: "Bearer good", ucUser: user, callsUC: true, wantCode: http.StatusOK},
		{name: "missing header", header: "", wantCode: http.StatusUnauthorized, wantErr: domainerrors.ErrMissingToken.ErrorCode()},
		{name: "wrong scheme", header: "Basic abc", wantCode: http.StatusUnauthorized, wantErr: domainerrors.ErrMissingToken.ErrorCode()},
		{name: "empty bearer", header: "Bearer ", wantCode: http.StatusUnauthorized, wantErr: domainerrors.ErrMissingToken.ErrorCode()},
		{name: "invalid token", header: "Bearer bad", ucErr: domainerrors.ErrInvalidToken, callsUC: true, wantCode: http.StatusForbidden, wantErr: domainerrors.ErrInvalidToken.ErrorCode()},
		{name: "expired token", header: "Bearer old", ucErr: domainerrors.ErrTokenExpired, callsUC: true, wantCode: http.StatusUnauthorized, wantErr: domainerrors.ErrTokenExpired.ErrorCode()},
		{name: "unknown user", header: "Bearer gone", ucErr: domainerrors.ErrUserNotFound, callsUC: true, wantCode: http.StatusNotFound, wantErr: domainerrors.ErrUserNotFound.ErrorCode()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userUC := mockUsecase.NewMockUserUsecase(t)
			if tt.callsUC {
				token := tt.header[len(bearerPrefix):]
				userUC.On("Authenticate", mock.Anything, token).Return(tt.ucUser, tt.ucErr).Once()
			}
			mw := NewAuthMiddleware(userUC)

			var seen *entity.User
			e := newTestEcho(slog.New(slog.NewTextHandler(io.Discard, nil)))
			e.GET("/me", func(c echo.Context) error {
				seen, _ = GetUser(c)

				return okHandler(c)
			}, mw.Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, decodeError(t, rec).Code)
				assert.Nil(t, seen)
			} else {
				assert.Equal(t, user, seen)
			}
		})
	}
}

func TestAuthMiddleware_Authenticate_EnrichesLogger(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "ann", Active: true}
	userUC := mockUsecase.NewMockUserUsecase(t)
	userUC.On("Authenticate", mock.Anything, "good").Return(user, nil).Once()
	mw := NewAuthMiddleware(userUC)

	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(deliverycontext.WithLogger(req.Context(), base))
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	c := e.NewContext(req, httptest.NewRecorder())

	err := mw.Authenticate(func(c echo.Context) error {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "user_id="+user.ID.String())
}

func TestAuthMiddleware_Gates(t *testing.T) {
	mw := NewAuthMiddleware(mockUsecase.NewMockUserUsecase(t))

	tests := []struct {
		name     string
		gate     echo.MiddlewareFunc
		user     *entity.User
		wantCode int
		wantErr  string
	}{
		{name: "verified passes", gate: mw.RequireVerified, user: &entity.User{VerifiedEmail: true}, wantCode: http.StatusOK},
		{name: "unverified blocked", gate: mw.RequireVerified, user: &entity.User{}, wantCode: http.StatusForbidden, wantErr: domainerrors.ErrEmailNotVerified.ErrorCode()},
		{name: "admin passes", gate: mw.RequireAdmin, user: &entity.User{Admin: true}, wantCode: http.StatusOK},
		{name: "non-admin blocked", gate: mw.RequireAdmin, user: &entity.User{VerifiedEmail: true}, wantCode: http.StatusForbidden, wantErr: domainerrors.ErrAdminRequired.ErrorCode()},
		{name: "no user", gate: mw.RequireAdmin, wantCode: http.StatusUnauthorized, wantErr: domainerrors.ErrMissingToken.ErrorCode()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(slog.New(slog.NewTextHandler(io.Discard, nil)))
			setUser := func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					if tt.user != nil {
						deliverycontext.SetUser(c, tt.user)
					}

					return next(c)
				}
			}
			e.GET("/gated", okHandler, setUser, tt.gate)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/gated", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, decodeError(t, rec).Code)
			}
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantErr     string
		wantDetails any
		wantLogged  bool
	}{
		{
			name:        "app error with details",
			err:         domainerrors.ErrUnprocessable.WithDetails("page must be a positive integer"),
			wantCode:    http.StatusUnprocessableEntity,
			wantErr:     domainerrors.ErrUnprocessable.ErrorCode(),
			wantDetails: "page must be a positive integer",
		},
		{
			name:       "wrapped server app error",
			err:        domainerrors.ErrOrderSaveFailed.WrapMessage("mongo down"),
			wantCode:   domainerrors.ErrOrderSaveFailed.HTTPCode(),
			wantErr:    domainerrors.ErrOrderSaveFailed.ErrorCode(),
			wantLogged: true,
		},
		{
			name:     "echo http error",
			err:      echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantCode: http.StatusMethodNotAllowed,
			wantErr:  "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantCode:   http.StatusInternalServerError,
			wantErr:    domainerrors.ErrInternalError.ErrorCode(),
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			mw.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			info := decodeError(t, rec)
			assert.Equal(t, tt.wantErr, info.Code)
			assert.Equal(t, tt.wantDetails, info.Details)
			assert.Equal(t, tt.wantLogged, buf.Len() > 0)
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}

	t.Run("committed response untouched", func(t *testing.T) {
		mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		require.NoError(t, c.NoContent(http.StatusNoContent))

		mw.HandleHTTPError(errors.New("late"), c)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestNewRateLimiter(t *testing.T) {
	t.Run("disabled passes everything", func(t *testing.T) {
		cfg := &config.Config{}
		e := newTestEcho(slog.New(slog.NewTextHandler(io.Discard, nil)))
		e.POST("/auth/login", okHandler, NewRateLimiter(cfg))

		for range 5 {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("burst exhausted", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.HTTP.RateLimit = &config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 2, ExpiresIn: time.Minute}
		e := newTestEcho(slog.New(slog.NewTextHandler(io.Discard, nil)))
		e.POST("/auth/login", okHandler, NewRateLimiter(cfg))

		codes := make([]int, 0, 3)
		for range 3 {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", nil))
			codes = append(codes, rec.Code)
		}

		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	})
}
