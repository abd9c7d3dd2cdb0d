// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	domainerrors "riskmonitor/internal/domain/errors"
	"riskmonitor/internal/domain/repository"
	"riskmonitor/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvStore implements repository.KeyValueStore on the kv_entries table.
type kvStore struct {
	db *gorm.DB
}

// NewKVStore migrates the kv_entries table and returns a store backed by it.
func NewKVStore(ctx context.Context, db *gorm.DB) (repository.KeyValueStore, error) {
	if err := db.WithContext(ctx).AutoMigrate(&model.KVEntryModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate kv_entries")
	}

	return &kvStore{db: db}, nil
}

// Get retrieves the value stored under key.
func (repo *kvStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry model.KVEntryModel
	err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}

		return nil, false, domainerrors.NewStorageExecuteError(err, "failed to read "+key)
	}

	return entry.Value, true, nil
}

// Set upserts the value stored under key.
func (repo *kvStore) Set(ctx context.Context, key string, value []byte) error {
	entry := model.KVEntryModel{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return domainerrors.NewStorageExecuteError(err, "failed to write "+key)
	}

	return nil
}

// Remove deletes the entry; a missing key is not an error.
func (repo *kvStore) Remove(ctx context.Context, key string) error {
	err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&model.KVEntryModel{}).Error
	if err != nil {
		return domainerrors.NewStorageExecuteError(err, "failed to delete "+key)
	}

	return nil
}
