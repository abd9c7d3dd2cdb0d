package storage

import (
	"context"
	"log/slog"

	"riskmonitor/config"
	"riskmonitor/internal/domain/constants"
	"riskmonitor/internal/domain/repository"
	"riskmonitor/internal/domain/service"
	"riskmonitor/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the key-value store, injected by Fx
type StoreParams struct {
	fx.In

	Lc        fx.Lifecycle
	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
	Redis     *goredis.Client `optional:"true"`
	Publisher service.ChangePublisher
	Feed      service.ChangeFeed
	Origin    service.InstanceID
}

// NewKeyValueStore creates the configured backend wrapped with change announcements
func NewKeyValueStore(params StoreParams) (repository.KeyValueStore, error) {
	backend, err := newBackend(params)
	if err != nil {
		return nil, err
	}

	return NewNotifyingStore(backend, params.Publisher, params.Feed, params.Origin, params.Logger), nil
}

func newBackend(params StoreParams) (repository.KeyValueStore, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	switch cfg.Driver {
	case "", constants.StorageDriverMemory:
		logger.Info("Using in-memory storage")

		return NewMemoryStore(), nil

	case constants.StorageDriverBlob:
		if cfg.BlobURL == "" {
			return nil, errors.New("blob URL is required for blob storage")
		}
		logger.Info("Using blob storage", slog.String("bucket", cfg.BlobURL))

		store, err := OpenBlobStore(params.Ctx, cfg.BlobURL, cfg.KeyPrefix)
		if err != nil {
			return nil, err
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return store.Close()
			},
		})

		return store, nil

	case constants.StorageDriverPostgres:
		logger.Info("Using postgres storage")

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewKVStore(params.Ctx, db)

	case constants.StorageDriverRedis:
		if params.Redis == nil {
			return nil, errors.New("redis configuration is required for redis storage")
		}
		logger.Info("Using redis storage", slog.String("prefix", cfg.KeyPrefix))

		return NewRedisStore(params.Redis, cfg.KeyPrefix), nil

	default:
		return nil, errors.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewKeyValueStore,
		NewAlertStore,
		NewUserStore,
	),
)
