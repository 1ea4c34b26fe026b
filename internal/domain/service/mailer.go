package service

import "context"

// Mailer renders and delivers an email event.
type Mailer interface {
	Send(ctx context.Context, event *EmailEvent) error
}
