package events

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercadolivro/bookstore-backend/entity"
)

type pingEvent struct{ n int }

func (pingEvent) EventName() string { return "ping" }

func TestBusDispatchesToSubscribersInOrder(t *testing.T) {
	bus := NewBus(nil)
	var got []string
	bus.Subscribe("ping", func(ctx context.Context, evt Event) error {
		got = append(got, "first")
		return nil
	})
	bus.Subscribe("ping", func(ctx context.Context, evt Event) error {
		got = append(got, "second")
		return nil
	})
	bus.Subscribe("other", func(ctx context.Context, evt Event) error {
		got = append(got, "other")
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), pingEvent{}))
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestBusJoinsHandlerErrorsAndKeepsGoing(t *testing.T) {
	bus := NewBus(nil)
	boom := errors.New("boom")
	calls := 0
	bus.Subscribe("ping", func(ctx context.Context, evt Event) error {
		calls++
		return boom
	})
	bus.Subscribe("ping", func(ctx context.Context, evt Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), pingEvent{})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestBusWithoutSubscribers(t *testing.T) {
	assert.NoError(t, NewBus(nil).Publish(context.Background(), pingEvent{}))
}

func TestAsyncBusDeliversEachEventOnce(t *testing.T) {
	bus := NewAsyncBus(4, 3, nil)
	var mu sync.Mutex
	seen := map[int]int{}
	bus.Subscribe("ping", func(ctx context.Context, evt Event) error {
		mu.Lock()
		defer mu.Unlock()
		seen[evt.(pingEvent).n]++
		return nil
	})
	bus.Start()

	for i := 0; i < 50; i++ {
		require.NoError(t, bus.Publish(context.Background(), pingEvent{n: i}))
	}
	require.NoError(t, bus.Close(context.Background()))

	assert.Len(t, seen, 50)
	for n, count := range seen {
		assert.Equal(t, 1, count, "event %d", n)
	}
}

func TestAsyncBusRejectsAfterClose(t *testing.T) {
	bus := NewAsyncBus(1, 1, nil)
	bus.Start()
	require.NoError(t, bus.Close(context.Background()))

	assert.ErrorIs(t, bus.Publish(context.Background(), pingEvent{}), ErrBusClosed)
	assert.NoError(t, bus.Close(context.Background()))
}

func TestAsyncBusPublishHonoursContextWhenQueueFull(t *testing.T) {
	bus := NewAsyncBus(1, 1, nil)
	release := make(chan struct{})
	var handled atomic.Int32
	bus.Subscribe("ping", func(ctx context.Context, evt Event) error {
		<-release
		handled.Add(1)
		return nil
	})
	bus.Start()

	require.NoError(t, bus.Publish(context.Background(), pingEvent{n: 1}))
	// the worker may or may not have picked up the first event yet; fill until blocked
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	var err error
	for i := 0; i < 3 && err == nil; i++ {
		err = bus.Publish(ctx, pingEvent{n: 2 + i})
	}
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	require.NoError(t, bus.Close(context.Background()))
	assert.GreaterOrEqual(t, handled.Load(), int32(1))
}

func TestAsyncBusHandlerContextOutlivesPublisher(t *testing.T) {
	bus := NewAsyncBus(1, 1, nil)
	errs := make(chan error, 1)
	bus.Subscribe("ping", func(ctx context.Context, evt Event) error {
		errs <- ctx.Err()
		return nil
	})
	bus.Start()

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, bus.Publish(ctx, pingEvent{}))
	cancel()
	require.NoError(t, bus.Close(context.Background()))

	assert.NoError(t, <-errs)
}

func TestNewPurchaseCreatedSnapshotsBooks(t *testing.T) {
	p := entity.Purchase{ID: uuid.New(), Books: []entity.Book{{ID: uuid.New(), Status: entity.BookActive}}}

	evt := NewPurchaseCreated(p)
	p.Books[0].Status = entity.BookSold

	assert.Equal(t, PurchaseCreatedName, evt.EventName())
	assert.Equal(t, p.ID, evt.Purchase.ID)
	assert.Equal(t, entity.BookActive, evt.Purchase.Books[0].Status)
}
