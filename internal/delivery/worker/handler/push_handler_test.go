package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop/config"
	"shop/internal/domain/constants"
	"shop/internal/domain/service"
	"shop/internal/errors"
	"shop/internal/infra/pubsub"
	mockSvc "shop/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, provider, env string) (*PushHandler, *mockSvc.MockMailer) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider}}
	cfg.Env.Env = env
	mailer := mockSvc.NewMockMailer(t)

	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Mailer: mailer,
	})

	return h, mailer
}

func pushBody(t *testing.T, event *service.EmailEvent) []byte {
	msg, err := pubsub.NewPushMessage(event)
	require.NoError(t, err)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func doPush(h *PushHandler, body []byte, authHeader string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.EmailEvent{
		RequestID: "req-1",
		EventID:   "evt-1",
		Kind:      service.EmailKindVerification,
		To:        "ann@example.com",
		Username:  "ann",
		Code:      123456,
	}

	t.Run("sends decoded event", func(t *testing.T) {
		h, mailer := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)
		mailer.On("Send", mock.Anything, mock.MatchedBy(func(got *service.EmailEvent) bool {
			return got.EventID == "evt-1" && got.To == "ann@example.com" && got.Code == 123456
		})).Return(nil).Once()

		rec := doPush(h, pushBody(t, event), "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("mail failure is acknowledged", func(t *testing.T) {
		h, mailer := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)
		mailer.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()

		rec := doPush(h, pushBody(t, event), "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed envelope", func(t *testing.T) {
		h, mailer := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

		rec := doPush(h, []byte(`{"message":{"data":"not base64!"}}`), "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("event without recipient", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

		rec := doPush(h, pushBody(t, &service.EmailEvent{EventID: "evt-2", Kind: service.EmailKindVerification}), "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPushHandler_VerifyPushAuth(t *testing.T) {
	event := &service.EmailEvent{EventID: "evt-1", Kind: service.EmailKindVerification, To: "ann@example.com"}

	t.Run("develop skips verification", func(t *testing.T) {
		h, mailer := newTestPushHandler(t, constants.PubSubProviderGoogle, constants.EnvDevelop)
		assert.False(t, h.verifyPushAuth)
		mailer.On("Send", mock.Anything, mock.Anything).Return(nil).Once()

		rec := doPush(h, pushBody(t, event), "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token rejected", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderGoogle, "production")
		require.True(t, h.verifyPushAuth)

		rec := doPush(h, pushBody(t, event), "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token rejected", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderGoogle, "production")
		h.validate = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
			return nil, errors.New("bad signature")
		}

		rec := doPush(h, pushBody(t, event), "Bearer junk")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer rejected", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderGoogle, "production")
		h.validate = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		rec := doPush(h, pushBody(t, event), "Bearer token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token accepted", func(t *testing.T) {
		h, mailer := newTestPushHandler(t, constants.PubSubProviderGoogle, "production")
		var gotAudience string
		h.validate = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
			gotAudience = audience

			return &idtoken.Payload{
				Issuer: "https://accounts.google.com",
				Claims: map[string]any{"email_verified": true},
			}, nil
		}
		mailer.On("Send", mock.Anything, mock.Anything).Return(nil).Once()

		rec := doPush(h, pushBody(t, event), "Bearer token")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://example.com/push", gotAudience)
	})
}
