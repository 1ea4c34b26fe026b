package mail

import (
	"context"
	"log/slog"

	"shop/config"
	"shop/internal/domain/service"
)

// New picks the SMTP mailer when smtp.host is set and a log-only mailer otherwise.
func New(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		logger.Warn("SMTP not configured, emails will only be logged")

		return &logMailer{logger: logger}, nil
	}

	return NewSMTPMailer(cfg, logger)
}

// logMailer writes rendered emails to the log for local development.
type logMailer struct {
	logger *slog.Logger
}

func (m *logMailer) Send(ctx context.Context, event *service.EmailEvent) error {
	body, err := render(event)
	if err != nil {
		return err
	}

	m.logger.InfoContext(ctx, "Email not sent, SMTP disabled",
		slog.String("event_id", event.EventID),
		slog.String("to", event.To),
		slog.String("subject", body.Subject),
		slog.String("body", body.Text),
	)

	return nil
}
