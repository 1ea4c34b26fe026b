package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"shop/internal/domain/service"
)

const defaultDeliveryTimeout = 30 * time.Second

type queuedEvent struct {
	ctx   context.Context
	event *service.EmailEvent
}

// AsyncPublisher puts events on a bounded queue drained by a fixed set of workers,
// so request handlers never wait on SMTP or a broker. A full queue drops the event.
type AsyncPublisher struct {
	next    service.EventPublisher
	logger  *slog.Logger
	workers int
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan queuedEvent
	wg     sync.WaitGroup
}

// NewAsyncPublisher wraps next. Start must be called before events are delivered.
func NewAsyncPublisher(next service.EventPublisher, queueSize, workers int, logger *slog.Logger) *AsyncPublisher {
	if queueSize < 1 {
		queueSize = 1
	}
	if workers < 1 {
		workers = 1
	}

	return &AsyncPublisher{
		next:    next,
		logger:  logger,
		workers: workers,
		timeout: defaultDeliveryTimeout,
		queue:   make(chan queuedEvent, queueSize),
	}
}

// Start launches the workers.
func (p *AsyncPublisher) Start() {
	for range p.workers {
		p.wg.Add(1)
		go p.run()
	}
}

// PublishEmailEvent enqueues the event and returns immediately.
// The request context is detached from cancellation so delivery outlives the request.
func (p *AsyncPublisher) PublishEmailEvent(ctx context.Context, event *service.EmailEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.logger.WarnContext(ctx, "Email event dropped, publisher closed", slog.String("event_id", event.EventID))

		return nil
	}

	select {
	case p.queue <- queuedEvent{ctx: context.WithoutCancel(ctx), event: event}:
	default:
		p.logger.WarnContext(ctx, "Email event dropped, queue full",
			slog.String("event_id", event.EventID),
			slog.Int("queue_size", cap(p.queue)),
		)
	}

	return nil
}

// Stop closes the queue and waits for queued events to drain, up to ctx's deadline.
func (p *AsyncPublisher) Stop(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		p.logger.Warn("Email queue not drained before shutdown", slog.Int("pending", len(p.queue)))

		return ctx.Err()
	}
}

// Close stops the wrapper and then the wrapped publisher.
func (p *AsyncPublisher) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	stopErr := p.Stop(ctx)
	if err := p.next.Close(); err != nil {
		return err
	}

	return stopErr
}

func (p *AsyncPublisher) run() {
	defer p.wg.Done()

	for item := range p.queue {
		p.deliver(item)
	}
}

func (p *AsyncPublisher) deliver(item queuedEvent) {
	ctx, cancel := context.WithTimeout(item.ctx, p.timeout)
	defer cancel()

	if err := p.next.PublishEmailEvent(ctx, item.event); err != nil {
		p.logger.ErrorContext(ctx, "Email event delivery failed",
			slog.String("event_id", item.event.EventID),
			slog.String("kind", string(item.event.Kind)),
			slog.Any("error", err),
		)
	}
}
