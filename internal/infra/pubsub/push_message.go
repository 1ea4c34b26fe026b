package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"shop/internal/domain/service"
	"shop/internal/errors"
)

const localSubscription = "projects/local/subscriptions/email-sub"

// PushMessage is the body Pub/Sub POSTs to a push subscription endpoint.
// The local publisher produces the same shape so the worker has one decoder.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage wraps an event the way a push subscription would deliver it.
func NewPushMessage(event *service.EmailEvent) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: localSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = event.EventID
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return msg, nil
}

// Event decodes the base64 payload back into an email event.
func (m *PushMessage) Event() (*service.EmailEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event service.EmailEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal email event")
	}
	if event.To == "" || event.Kind == "" {
		return nil, errors.New("email event is missing recipient or kind")
	}
	if event.RequestID == "" {
		event.RequestID = m.Message.Attributes["request_id"]
	}

	return &event, nil
}

// eventAttributes are copied onto the transport message for filtering and tracing.
func eventAttributes(event *service.EmailEvent) map[string]string {
	attributes := map[string]string{
		"event_id": event.EventID,
		"kind":     string(event.Kind),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
