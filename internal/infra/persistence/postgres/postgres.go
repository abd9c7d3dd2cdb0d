package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"riskmonitor/config"
	"riskmonitor/internal/domain/lifecycle"
	"riskmonitor/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolWatchInterval      = 5 * time.Second
	poolWaitWarnThreshold  = 50 * time.Millisecond
	kvStoreComponentLogKey = "kv_store"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the database backing the kv_entries store. The pool is pinged on
// start and watched for connection waits until stop.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is required for the postgres storage driver")
	}

	logger := params.Logger.With(slog.String("component", kvStoreComponentLogKey))

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open kv store database")
	}
	db = db.Session(&gorm.Session{
		// Each key is a single row written by a single statement.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get kv store sql.DB")
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping kv store database")
			}

			go watchPool(watchCtx, logger, sqlDB.Stats, poolWatchInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// watchPool reports connection waits seen since the previous tick. Alert
// writers hold the in-process lock while waiting, so a slow pool stalls
// every mutation.
func watchPool(ctx context.Context, logger *slog.Logger, stats func() sql.DBStats, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := stats()
			logPoolWaits(ctx, logger, prev, cur)
			prev = cur
		}
	}
}

func logPoolWaits(ctx context.Context, logger *slog.Logger, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= poolWaitWarnThreshold {
		level = slog.LevelWarn
	}

	logger.LogAttrs(ctx, level, "kv store waited for a connection",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("inUse", cur.InUse),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	)
}
