package pubsub

import (
	"context"

	"shop/internal/domain/service"
)

// directPublisher sends emails in-process, skipping any broker.
type directPublisher struct {
	mailer service.Mailer
}

// NewDirectPublisher wraps a mailer as an EventPublisher.
func NewDirectPublisher(mailer service.Mailer) service.EventPublisher {
	return &directPublisher{mailer: mailer}
}

func (p *directPublisher) PublishEmailEvent(ctx context.Context, event *service.EmailEvent) error {
	return p.mailer.Send(ctx, event)
}

func (p *directPublisher) Close() error {
	return nil
}
