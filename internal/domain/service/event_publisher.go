package service

import (
	"context"
)

// EmailKind selects the template used to render an email event.
type EmailKind string

const (
	// EmailKindVerification carries a 6-digit verification code.
	EmailKindVerification EmailKind = "verification"
)

// EmailEvent is a request to send one email, produced by the API and consumed by a mailer.
type EmailEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	EventID   string    `json:"event_id"`
	Kind      EmailKind `json:"kind"`
	To        string    `json:"to"`
	Username  string    `json:"username,omitempty"`
	Code      int       `json:"code,omitempty"`
}

// EventPublisher hands email events to whatever transport is configured.
type EventPublisher interface {
	PublishEmailEvent(ctx context.Context, event *EmailEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
