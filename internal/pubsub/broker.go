package pubsub

import (
	"context"
	"sync"
	"time"
)

// subscriptionBuffer is how many undelivered events a subscriber may lag
// behind before new events are dropped for it.
const subscriptionBuffer = 64

// Broker fans events out to any number of subscribers. Delivery is best
// effort: a slow subscriber loses events rather than stalling the publisher,
// which is the right trade for the advisory signals larder sends over it
// (debug log lines, cache flush notifications).
type Broker[T any] struct {
	mu          sync.RWMutex
	subscribers map[chan Event[T]]struct{}
	closed      bool
	buffer      int
}

// NewBroker creates a broker with the default per-subscription buffer.
func NewBroker[T any]() *Broker[T] {
	return NewBrokerWithBuffer[T](subscriptionBuffer)
}

// NewBrokerWithBuffer creates a broker whose subscriptions buffer size events.
func NewBrokerWithBuffer[T any](size int) *Broker[T] {
	return &Broker[T]{
		subscribers: make(map[chan Event[T]]struct{}),
		buffer:      size,
	}
}

// Subscribe registers a new subscription. The returned channel closes when
// ctx is cancelled or the broker shuts down. Subscribing to a closed broker
// yields an already-closed channel.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		ch := make(chan Event[T])
		close(ch)
		return ch
	}

	sub := make(chan Event[T], b.buffer)
	b.subscribers[sub] = struct{}{}

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subscribers[sub]; ok {
			delete(b.subscribers, sub)
			close(sub)
		}
	}()

	return sub
}

// Publish delivers the event to every subscriber with buffer room and
// silently skips the rest. Publishing to a closed broker is a no-op.
func (b *Broker[T]) Publish(eventType EventType, payload T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	event := Event[T]{Type: eventType, Payload: payload, Timestamp: time.Now()}
	for sub := range b.subscribers {
		select {
		case sub <- event:
		default:
		}
	}
}

// Close shuts the broker down and closes every open subscription. Safe to
// call more than once.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for sub := range b.subscribers {
		close(sub)
	}
	b.subscribers = nil
}

// SubscriberCount reports how many subscriptions are currently active.
func (b *Broker[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
