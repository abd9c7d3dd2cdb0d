package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"riskmonitor/internal/domain/service"
	"riskmonitor/internal/errors"

	"github.com/segmentio/kafka-go"
)

const kafkaRetryDelay = time.Second

// KafkaTransport writes change events to a topic and reads them back with a
// per-instance consumer group so every instance sees every event.
type KafkaTransport struct {
	writer *kafka.Writer
	reader *kafka.Reader
	logger *slog.Logger
}

// NewKafkaTransport creates a writer and reader on topic
func NewKafkaTransport(brokers []string, topic, groupID string, logger *slog.Logger) *KafkaTransport {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		Topic:       topic,
		GroupID:     groupID,
		StartOffset: kafka.LastOffset,
		MinBytes:    1,
		MaxBytes:    1 << 20,
		MaxWait:     500 * time.Millisecond,
	})

	return &KafkaTransport{writer: writer, reader: reader, logger: logger}
}

// PublishChange writes the event keyed by storage key
func (t *KafkaTransport) PublishChange(ctx context.Context, event *service.ChangeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	err = t.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Key),
		Value: data,
		Time:  event.OccurredAt,
	})

	return errors.Wrap(err, "kafka write")
}

// Listen reads events until ctx is done
func (t *KafkaTransport) Listen(ctx context.Context, deliver func(service.ChangeEvent)) error {
	t.logger.Info("[KafkaPubSub] Listening for changes", slog.String("topic", t.reader.Config().Topic))

	for {
		msg, err := t.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			t.logger.Warn("[KafkaPubSub] Read failed", slog.Any("error", err))

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(kafkaRetryDelay):
			}

			continue
		}

		var event service.ChangeEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			t.logger.Warn("[KafkaPubSub] Malformed change event", slog.Any("error", err))

			continue
		}

		deliver(event)
	}
}

// Close flushes the writer and leaves the consumer group
func (t *KafkaTransport) Close() error {
	return errors.WithStack(errors.Join(t.writer.Close(), t.reader.Close()))
}
