// Package pubsub is the in-process event channel larder uses for advisory
// signals: the debug logger streams entries over it and the recipe cache
// announces flushes on it.
package pubsub

import (
	"context"
	"time"
)

// EventType names what happened to the payload.
type EventType string

const (
	CreatedEvent EventType = "created"
	UpdatedEvent EventType = "updated"
	DeletedEvent EventType = "deleted"

	// FlushedEvent signals that a cache or derived state was invalidated
	// and consumers should re-read from the source of truth.
	FlushedEvent EventType = "flushed"
)

// Event is a published occurrence with a typed payload and the time it was
// published.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber hands out subscription channels for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher accepts events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
