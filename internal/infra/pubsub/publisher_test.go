package pubsub

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop/config"
	"shop/internal/domain/constants"
	"shop/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	events []*service.EmailEvent
}

func (m *recordingMailer) Send(_ context.Context, event *service.EmailEvent) error {
	m.events = append(m.events, event)

	return nil
}

func TestPushMessage_RoundTrip(t *testing.T) {
	event := &service.EmailEvent{
		RequestID: "req-1",
		EventID:   "evt-1",
		Kind:      service.EmailKindVerification,
		To:        "alice@example.com",
		Code:      123456,
	}

	msg, err := NewPushMessage(event)
	require.NoError(t, err)
	assert.Equal(t, "evt-1", msg.Message.MessageID)
	assert.Equal(t, "req-1", msg.Message.Attributes["request_id"])

	got, err := msg.Event()
	require.NoError(t, err)
	assert.Equal(t, event, got)
}

func TestPushMessage_RejectsGarbage(t *testing.T) {
	msg := &PushMessage{}
	msg.Message.Data = "!!not-base64!!"

	_, err := msg.Event()
	assert.Error(t, err)

	msg.Message.Data = "e30=" // {}
	_, err = msg.Event()
	assert.Error(t, err)
}

func TestLocalHTTPPublisher(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := p.PublishEmailEvent(context.Background(), &service.EmailEvent{
		RequestID: "req-9",
		EventID:   "evt-9",
		Kind:      service.EmailKindVerification,
		To:        "bob@example.com",
		Code:      999999,
	})
	require.NoError(t, err)
	assert.Equal(t, "req-9", requestID)

	event, err := received.Event()
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", event.To)
	assert.Equal(t, 999999, event.Code)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	p := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := p.PublishEmailEvent(context.Background(), &service.EmailEvent{EventID: "e", Kind: service.EmailKindVerification, To: "a@b.c"})
	assert.Error(t, err)
}

func TestNewTransport(t *testing.T) {
	mailer := &recordingMailer{}

	direct, err := newTransport(context.Background(), &config.PubSubConfig{}, mailer, discardLogger())
	require.NoError(t, err)
	require.NoError(t, direct.PublishEmailEvent(context.Background(), &service.EmailEvent{EventID: "d"}))
	assert.Len(t, mailer.events, 1)

	local, err := newTransport(context.Background(), &config.PubSubConfig{
		Provider:      constants.PubSubProviderLocal,
		LocalEndpoint: "http://localhost:8081/push",
	}, mailer, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, local)

	_, err = newTransport(context.Background(), &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, mailer, discardLogger())
	assert.Error(t, err)

	_, err = newTransport(context.Background(), &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, mailer, discardLogger())
	assert.Error(t, err)

	_, err = newTransport(context.Background(), &config.PubSubConfig{Provider: "kafka"}, mailer, discardLogger())
	assert.Error(t, err)
}
