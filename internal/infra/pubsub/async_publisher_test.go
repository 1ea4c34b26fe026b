package pubsub

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"shop/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	mu      sync.Mutex
	events  []*service.EmailEvent
	block   chan struct{}
	err     error
	closed  bool
	ctxLive []bool
}

func (f *fakeTransport) PublishEmailEvent(ctx context.Context, event *service.EmailEvent) error {
	if f.block != nil {
		<-f.block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	f.ctxLive = append(f.ctxLive, ctx.Err() == nil)

	return f.err
}

func (f *fakeTransport) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true

	return nil
}

func (f *fakeTransport) delivered() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.events)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAsyncPublisher_DeliversQueuedEvents(t *testing.T) {
	transport := &fakeTransport{}
	p := NewAsyncPublisher(transport, 8, 2, discardLogger())
	p.Start()

	for i := range 5 {
		require.NoError(t, p.PublishEmailEvent(context.Background(), &service.EmailEvent{EventID: string(rune('a' + i))}))
	}

	require.NoError(t, p.Stop(context.Background()))
	assert.Equal(t, 5, transport.delivered())
}

func TestAsyncPublisher_DetachesRequestCancellation(t *testing.T) {
	transport := &fakeTransport{}
	p := NewAsyncPublisher(transport, 1, 1, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, p.PublishEmailEvent(ctx, &service.EmailEvent{EventID: "1"}))
	cancel()

	p.Start()
	require.NoError(t, p.Stop(context.Background()))

	require.Len(t, transport.ctxLive, 1)
	assert.True(t, transport.ctxLive[0])
}

func TestAsyncPublisher_DropsWhenFull(t *testing.T) {
	transport := &fakeTransport{}
	p := NewAsyncPublisher(transport, 2, 1, discardLogger())

	// Workers are not started, so the queue fills up.
	for i := range 4 {
		assert.NoError(t, p.PublishEmailEvent(context.Background(), &service.EmailEvent{EventID: string(rune('a' + i))}))
	}
	assert.Len(t, p.queue, 2)

	p.Start()
	require.NoError(t, p.Stop(context.Background()))
	assert.Equal(t, 2, transport.delivered())
}

func TestAsyncPublisher_PublishAfterStopIsDropped(t *testing.T) {
	transport := &fakeTransport{}
	p := NewAsyncPublisher(transport, 2, 1, discardLogger())
	p.Start()
	require.NoError(t, p.Stop(context.Background()))

	assert.NoError(t, p.PublishEmailEvent(context.Background(), &service.EmailEvent{EventID: "late"}))
	assert.Equal(t, 0, transport.delivered())
}

func TestAsyncPublisher_StopHonoursDeadline(t *testing.T) {
	transport := &fakeTransport{block: make(chan struct{})}
	p := NewAsyncPublisher(transport, 2, 1, discardLogger())
	p.Start()
	require.NoError(t, p.PublishEmailEvent(context.Background(), &service.EmailEvent{EventID: "slow"}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, p.Stop(ctx), context.DeadlineExceeded)

	close(transport.block)
}

func TestAsyncPublisher_CloseClosesTransport(t *testing.T) {
	transport := &fakeTransport{}
	p := NewAsyncPublisher(transport, 1, 1, discardLogger())
	p.Start()

	require.NoError(t, p.Close())
	assert.True(t, transport.closed)
}

func TestAsyncPublisher_DeliveryErrorIsLoggedOnly(t *testing.T) {
	transport := &fakeTransport{err: assert.AnError}
	p := NewAsyncPublisher(transport, 1, 1, discardLogger())
	p.Start()

	require.NoError(t, p.PublishEmailEvent(context.Background(), &service.EmailEvent{EventID: "x"}))
	require.NoError(t, p.Stop(context.Background()))
	assert.Equal(t, 1, transport.delivered())
}
