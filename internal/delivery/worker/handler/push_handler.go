// Package handler holds the mail worker's Pub/Sub push endpoint.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"shop/config"
	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/constants"
	"shop/internal/domain/service"
	"shop/internal/errors"
	"shop/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator checks a Google-signed OIDC token for the given audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns Pub/Sub push deliveries into sent emails.
type PushHandler struct {
	verifyPushAuth bool
	validate       tokenValidator
	mailer         service.Mailer
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Mailer service.Mailer
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validate:       idtoken.Validate,
		mailer:         params.Mailer,
		logger:         params.Logger,
	}
}

// HandlePush answers 400 for envelopes that can never succeed and 200 for
// everything else, including failed sends, so Pub/Sub does not redeliver.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPushToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.Event()
	if err != nil {
		h.logger.Error("[Worker] Malformed email event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := event.RequestID
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.mailer.Send(ctx, event); err != nil {
		reqLogger.Error("[Worker] Failed to send email",
			slog.String("event_id", event.EventID),
			slog.String("kind", string(event.Kind)),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Email sent",
		slog.String("event_id", event.EventID),
		slog.String("kind", string(event.Kind)),
	)

	return c.NoContent(http.StatusOK)
}

// verifyPushToken validates the bearer token Pub/Sub attaches to push requests.
// The expected audience is this endpoint's own URL.
func (h *PushHandler) verifyPushToken(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("push service account email not verified")
	}

	return nil
}
