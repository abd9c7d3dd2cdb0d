package pubsub

import (
	"log/slog"
	"sync"

	"riskmonitor/internal/domain/service"
)

const subscriberBuffer = 16

// hub is the in-process change feed. Slow subscribers miss events instead
// of blocking writers; reconciliation re-reads full state anyway.
type hub struct {
	mu     sync.RWMutex
	subs   map[int]chan service.ChangeEvent
	nextID int
	logger *slog.Logger
}

// NewHub creates an empty change feed
func NewHub(logger *slog.Logger) service.ChangeFeed {
	return &hub{
		subs:   make(map[int]chan service.ChangeEvent),
		logger: logger,
	}
}

func (h *hub) Broadcast(event service.ChangeEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.subs {
		select {
		case ch <- event:
		default:
			h.logger.Debug("[ChangeHub] Subscriber busy, dropping event",
				slog.Int("subscriber", id),
				slog.String("key", event.Key),
			)
		}
	}
}

func (h *hub) Subscribe() (<-chan service.ChangeEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan service.ChangeEvent, subscriberBuffer)
	h.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()

			delete(h.subs, id)
			close(ch)
		})
	}

	return ch, cancel
}

// Relay hands remote events to the local feed, skipping events this
// instance wrote itself.
type Relay struct {
	feed   service.ChangeFeed
	origin service.InstanceID
	logger *slog.Logger
}

// NewRelay creates a relay into feed for the given instance
func NewRelay(feed service.ChangeFeed, origin service.InstanceID, logger *slog.Logger) *Relay {
	return &Relay{feed: feed, origin: origin, logger: logger}
}

// Forward broadcasts a remote event and reports whether it was accepted
func (r *Relay) Forward(event service.ChangeEvent) bool {
	if event.Origin == string(r.origin) {
		return false
	}

	r.logger.Debug("[ChangeHub] Remote change received",
		slog.String("key", event.Key),
		slog.String("origin", event.Origin),
	)
	r.feed.Broadcast(event)

	return true
}
