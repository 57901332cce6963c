package events

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Event is a message dispatched in-process to subscribers of its name.
type Event interface {
	EventName() string
}

// Handler reacts to a published event.
type Handler func(ctx context.Context, evt Event) error

// Publisher is the side of the bus services depend on.
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

// Subscriber registers handlers by event name.
type Subscriber interface {
	Subscribe(name string, handler Handler)
}

var ErrBusClosed = errors.New("events: bus closed")

// Bus dispatches events synchronously: Publish returns after every handler ran.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   *zap.Logger
}

func NewBus(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{handlers: make(map[string][]Handler), logger: logger}
}

func (b *Bus) Subscribe(name string, handler Handler) {
	if handler == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], handler)
}

// Publish runs the handlers registered for evt in subscription order.
// Handler errors do not stop the remaining handlers; they are joined.
func (b *Bus) Publish(ctx context.Context, evt Event) error {
	return b.dispatch(ctx, evt)
}

func (b *Bus) dispatch(ctx context.Context, evt Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[evt.EventName()]...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		b.logger.Debug("event has no subscribers", zap.String("event", evt.EventName()))
		return nil
	}

	var result error
	for _, h := range handlers {
		if err := h(ctx, evt); err != nil {
			b.logger.Error("event handler failed", zap.String("event", evt.EventName()), zap.Error(err))
			result = errors.Join(result, err)
		}
	}
	return result
}

type envelope struct {
	ctx context.Context
	evt Event
}

// AsyncBus queues events on a bounded channel drained by a fixed worker pool.
// Each published event is dispatched once; ordering across events is not kept.
type AsyncBus struct {
	*Bus

	queue   chan envelope
	workers int

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewAsyncBus creates the bus; call Start before publishing.
func NewAsyncBus(queueSize, workers int, logger *zap.Logger) *AsyncBus {
	if queueSize <= 0 {
		queueSize = 1
	}
	if workers <= 0 {
		workers = 1
	}
	return &AsyncBus{
		Bus:     NewBus(logger),
		queue:   make(chan envelope, queueSize),
		workers: workers,
	}
}

func (b *AsyncBus) Start() {
	for i := 0; i < b.workers; i++ {
		b.wg.Add(1)
		go b.work()
	}
	b.logger.Info("event workers started", zap.Int("workers", b.workers), zap.Int("queue_size", cap(b.queue)))
}

func (b *AsyncBus) work() {
	defer b.wg.Done()
	for env := range b.queue {
		// errors were already logged by dispatch
		_ = b.dispatch(env.ctx, env.evt)
	}
}

// Publish enqueues evt. It blocks while the queue is full until ctx is done.
// The handler context is detached from ctx's cancellation.
func (b *AsyncBus) Publish(ctx context.Context, evt Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrBusClosed
	}
	select {
	case b.queue <- envelope{ctx: context.WithoutCancel(ctx), evt: evt}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("events: enqueue %s: %w", evt.EventName(), ctx.Err())
	}
}

// Close stops accepting events and waits for queued ones to drain or ctx to end.
func (b *AsyncBus) Close(ctx context.Context) error {
	b.mu.Lock()
	if !b.closed {
		b.closed = true
		close(b.queue)
	}
	b.mu.Unlock()

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
