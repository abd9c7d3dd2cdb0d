package storage

import (
	"context"
	"log/slog"
	"time"

	"riskmonitor/internal/domain/repository"
	"riskmonitor/internal/domain/service"
)

// notifyingStore announces every successful write, locally through the feed
// and to other instances through the publisher. Announcement failures never
// fail the write.
type notifyingStore struct {
	next      repository.KeyValueStore
	publisher service.ChangePublisher
	feed      service.ChangeFeed
	origin    service.InstanceID
	logger    *slog.Logger
	now       func() time.Time
}

// NewNotifyingStore decorates next with change announcements
func NewNotifyingStore(
	next repository.KeyValueStore,
	publisher service.ChangePublisher,
	feed service.ChangeFeed,
	origin service.InstanceID,
	logger *slog.Logger,
) repository.KeyValueStore {
	return &notifyingStore{
		next:      next,
		publisher: publisher,
		feed:      feed,
		origin:    origin,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *notifyingStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.next.Get(ctx, key)
}

func (s *notifyingStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.next.Set(ctx, key, value); err != nil {
		return err
	}

	s.announce(ctx, key)

	return nil
}

func (s *notifyingStore) Remove(ctx context.Context, key string) error {
	if err := s.next.Remove(ctx, key); err != nil {
		return err
	}

	s.announce(ctx, key)

	return nil
}

func (s *notifyingStore) announce(ctx context.Context, key string) {
	event := service.ChangeEvent{
		Key:        key,
		Origin:     string(s.origin),
		OccurredAt: s.now().UTC(),
	}

	if s.feed != nil {
		s.feed.Broadcast(event)
	}

	if s.publisher == nil {
		return
	}

	if err := s.publisher.PublishChange(ctx, &event); err != nil {
		s.logger.Warn("Failed to publish storage change",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}
