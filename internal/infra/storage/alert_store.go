package storage

import (
	"context"
	"log/slog"

	"riskmonitor/internal/domain/constants"
	"riskmonitor/internal/domain/entity"
	"riskmonitor/internal/domain/repository"
)

type alertStore struct {
	alerts *Collection[entity.Alert]
}

// NewAlertStore keeps the alert collection under the "alerts" key
func NewAlertStore(store repository.KeyValueStore, logger *slog.Logger) repository.AlertStore {
	return &alertStore{
		alerts: NewCollection[entity.Alert](store, constants.KeyAlerts, logger),
	}
}

func (s *alertStore) LoadAlerts(ctx context.Context) ([]entity.Alert, error) {
	return s.alerts.Load(ctx)
}

func (s *alertStore) SaveAlerts(ctx context.Context, alerts []entity.Alert) error {
	return s.alerts.Save(ctx, alerts)
}
