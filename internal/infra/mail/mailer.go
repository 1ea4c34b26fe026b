// Package mail delivers email events over SMTP.
package mail

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log/slog"
	"time"

	"shop/config"
	"shop/internal/domain/service"
	"shop/internal/errors"

	gomail "gopkg.in/mail.v2"
)

const defaultSMTPTimeout = 10 * time.Second

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// rendered is a fully prepared message body.
type rendered struct {
	Subject string
	HTML    string
	Text    string
}

// sender abstracts the SMTP dialer so rendering can be tested without a server.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpMailer struct {
	from   string
	sender sender
	logger *slog.Logger
}

// NewSMTPMailer builds a Mailer from the smtp config block.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp configuration is missing")
	}

	dialer := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	dialer.Timeout = defaultSMTPTimeout
	if cfg.SMTP.Timeout > 0 {
		dialer.Timeout = cfg.SMTP.Timeout
	}

	from := cfg.SMTP.From
	if from == "" {
		from = cfg.SMTP.Username
	}

	return &smtpMailer{from: from, sender: dialer, logger: logger}, nil
}

// Send renders the event and hands it to the SMTP server.
func (m *smtpMailer) Send(ctx context.Context, event *service.EmailEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := render(event)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", event.To)
	msg.SetHeader("Subject", body.Subject)
	msg.SetBody("text/plain", body.Text)
	msg.AddAlternative("text/html", body.HTML)

	start := time.Now()
	if err := m.sender.DialAndSend(msg); err != nil {
		return errors.Wrapf(err, "failed to send %s email", event.Kind)
	}

	m.logger.InfoContext(ctx, "Email sent",
		slog.String("event_id", event.EventID),
		slog.String("kind", string(event.Kind)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return nil
}

func render(event *service.EmailEvent) (*rendered, error) {
	switch event.Kind {
	case service.EmailKindVerification:
		var buf bytes.Buffer
		if err := templates.ExecuteTemplate(&buf, "verification.html", event); err != nil {
			return nil, errors.Wrap(err, "failed to render verification email")
		}

		return &rendered{
			Subject: "Confirm your email",
			HTML:    buf.String(),
			Text:    verificationText(event),
		}, nil
	default:
		return nil, errors.Errorf("unknown email kind %q", event.Kind)
	}
}
