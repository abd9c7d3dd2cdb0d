package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"riskmonitor/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisTransport publishes and receives change events on a redis channel.
type RedisTransport struct {
	client  redis.UniversalClient
	channel string
	logger  *slog.Logger
}

// NewRedisTransport creates a transport on the given channel
func NewRedisTransport(client redis.UniversalClient, channel string, logger *slog.Logger) *RedisTransport {
	return &RedisTransport{client: client, channel: channel, logger: logger}
}

// PublishChange publishes the event with PUBLISH
func (t *RedisTransport) PublishChange(ctx context.Context, event *service.ChangeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := t.client.Publish(ctx, t.channel, data).Err(); err != nil {
		return errors.Wrapf(err, "publish to %s", t.channel)
	}

	return nil
}

// Listen subscribes to the channel until ctx is done
func (t *RedisTransport) Listen(ctx context.Context, deliver func(service.ChangeEvent)) error {
	sub := t.client.Subscribe(ctx, t.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}

		return errors.Wrapf(err, "subscribe to %s", t.channel)
	}

	t.logger.Info("[RedisPubSub] Listening for changes", slog.String("channel", t.channel))

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}

			var event service.ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				t.logger.Warn("[RedisPubSub] Malformed change event", slog.Any("error", err))

				continue
			}

			deliver(event)
		}
	}
}

// Close is a no-op; the shared client is closed by its own lifecycle hook
func (t *RedisTransport) Close() error {
	return nil
}
