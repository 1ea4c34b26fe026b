package pubsub

import (
	"context"
	"log/slog"

	"shop/config"
	"shop/internal/domain/constants"
	"shop/internal/domain/service"
	"shop/internal/errors"

	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Mailer service.Mailer
}

// NewEventPublisher builds the configured transport and puts the async queue in front of it.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil {
		cfg = &config.PubSubConfig{}
	}

	transport, err := newTransport(params.Ctx, cfg, params.Mailer, params.Logger)
	if err != nil {
		return nil, err
	}

	publisher := NewAsyncPublisher(transport, cfg.QueueSize, cfg.Workers, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			publisher.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing EventPublisher")
			stopErr := publisher.Stop(ctx)
			if err := transport.Close(); err != nil {
				return err
			}

			return stopErr
		},
	})

	return publisher, nil
}

func newTransport(ctx context.Context, cfg *config.PubSubConfig, mailer service.Mailer, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case "", constants.PubSubProviderDirect:
		logger.Info("Sending emails in-process")

		return NewDirectPublisher(mailer), nil

	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for email events", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher for email events",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}
