package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	"riskmonitor/internal/domain/repository"

	"github.com/pkg/errors"
)

// Collection is a typed view of a key that holds a JSON array.
type Collection[T any] struct {
	store  repository.KeyValueStore
	key    string
	logger *slog.Logger
}

// NewCollection binds a collection to key in store
func NewCollection[T any](store repository.KeyValueStore, key string, logger *slog.Logger) *Collection[T] {
	return &Collection[T]{store: store, key: key, logger: logger}
}

// validator is implemented by items that can tell a usable stored record
// from a damaged one.
type validator interface {
	Valid() bool
}

// Load returns the stored items. Absent data or a value that is not a JSON
// array reads as an empty collection. Elements that are null, fail to decode
// or fail their own validation are skipped, so one damaged record never hides
// the rest. Only backend failures are returned as errors.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	data, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", c.key)
	}

	if !found || len(bytes.TrimSpace(data)) == 0 {
		return []T{}, nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		c.logger.Warn("Malformed collection, reading as empty",
			slog.String("key", c.key),
			slog.Any("error", err),
		)

		return []T{}, nil
	}

	items := make([]T, 0, len(raws))
	for i, raw := range raws {
		item, reason := decodeItem[T](raw)
		if reason != "" {
			c.logger.Warn("Skipping damaged record",
				slog.String("key", c.key),
				slog.Int("index", i),
				slog.String("reason", reason),
			)

			continue
		}
		items = append(items, item)
	}

	return items, nil
}

func decodeItem[T any](raw json.RawMessage) (T, string) {
	var item T
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return item, "null record"
	}
	if err := json.Unmarshal(raw, &item); err != nil {
		return item, err.Error()
	}
	if v, ok := any(item).(validator); ok && !v.Valid() {
		return item, "invalid record"
	}

	return item, ""
}

// Save rewrites the whole collection
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return errors.Wrapf(err, "encode %s", c.key)
	}

	if err := c.store.Set(ctx, c.key, data); err != nil {
		return errors.Wrapf(err, "save %s", c.key)
	}

	return nil
}

// Record is a typed view of a key that holds a single JSON object.
type Record[T any] struct {
	store  repository.KeyValueStore
	key    string
	logger *slog.Logger
}

// NewRecord binds a record to key in store
func NewRecord[T any](store repository.KeyValueStore, key string, logger *slog.Logger) *Record[T] {
	return &Record[T]{store: store, key: key, logger: logger}
}

// Load returns nil when the key is absent or holds malformed data
func (r *Record[T]) Load(ctx context.Context) (*T, error) {
	data, found, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", r.key)
	}

	trimmed := bytes.TrimSpace(data)
	if !found || len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	value := new(T)
	if err := json.Unmarshal(trimmed, value); err != nil {
		r.logger.Warn("Malformed record, reading as absent",
			slog.String("key", r.key),
			slog.Any("error", err),
		)

		return nil, nil
	}

	return value, nil
}

// Save replaces the record
func (r *Record[T]) Save(ctx context.Context, value *T) error {
	if value == nil {
		return r.Clear(ctx)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode %s", r.key)
	}

	if err := r.store.Set(ctx, r.key, data); err != nil {
		return errors.Wrapf(err, "save %s", r.key)
	}

	return nil
}

// Clear removes the record
func (r *Record[T]) Clear(ctx context.Context) error {
	return errors.Wrapf(r.store.Remove(ctx, r.key), "clear %s", r.key)
}
