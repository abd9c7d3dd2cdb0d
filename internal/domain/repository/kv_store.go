// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"riskmonitor/internal/domain/entity"
)

// KeyValueStore is the raw persistent medium. Writes are durable once they return.
type KeyValueStore interface {
	// Get returns the stored bytes and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set replaces the value of key.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// AlertStore persists the whole alert collection under a single key.
type AlertStore interface {
	// LoadAlerts returns the collection in insertion order. Absent or
	// malformed data reads as an empty collection.
	LoadAlerts(ctx context.Context) ([]entity.Alert, error)

	// SaveAlerts rewrites the whole collection.
	SaveAlerts(ctx context.Context, alerts []entity.Alert) error
}

// UserStore persists the users collection and the current session record.
type UserStore interface {
	LoadUsers(ctx context.Context) ([]entity.User, error)
	SaveUsers(ctx context.Context, users []entity.User) error

	// LoadCurrentUser returns nil when nobody is logged in.
	LoadCurrentUser(ctx context.Context) (*entity.User, error)
	SaveCurrentUser(ctx context.Context, user *entity.User) error
	ClearCurrentUser(ctx context.Context) error
}
