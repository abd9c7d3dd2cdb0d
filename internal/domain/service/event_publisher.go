package service

import (
	"context"
	"time"
)

// ChangeEvent announces that a storage key was rewritten.
type ChangeEvent struct {
	Key        string    `json:"key"`
	Origin     string    `json:"origin"` // Instance ID of the writer
	OccurredAt time.Time `json:"occurred_at"`
}

// ChangePublisher announces local writes to other instances sharing the store.
type ChangePublisher interface {
	// PublishChange publishes a change event to the configured transport
	PublishChange(ctx context.Context, event *ChangeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// ChangeFeed fans change events out to in-process subscribers.
type ChangeFeed interface {
	// Broadcast delivers the event to every subscriber without blocking
	Broadcast(event ChangeEvent)

	// Subscribe returns a channel of events and a function that cancels the subscription
	Subscribe() (<-chan ChangeEvent, func())
}

// ChangeListener is implemented by transports that receive remote events
// themselves rather than through the push endpoint.
type ChangeListener interface {
	// Listen hands each remote event to deliver until ctx is done
	Listen(ctx context.Context, deliver func(ChangeEvent)) error
}

// InstanceID identifies this process as the origin of change events.
type InstanceID string
