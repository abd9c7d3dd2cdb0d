package main

import (
	"context"
	"log/slog"
	"os"

	"riskmonitor/config"
	"riskmonitor/internal/delivery"
	"riskmonitor/internal/delivery/api"
	"riskmonitor/internal/delivery/api/middleware"
	"riskmonitor/internal/delivery/api/router/handler"
	"riskmonitor/internal/delivery/worker"
	workerhandler "riskmonitor/internal/delivery/worker/handler"
	"riskmonitor/internal/domain/service"
	"riskmonitor/internal/infra/auth"
	"riskmonitor/internal/infra/geocoding"
	"riskmonitor/internal/infra/geolocation"
	logs "riskmonitor/internal/infra/log"
	"riskmonitor/internal/infra/notification"
	"riskmonitor/internal/infra/persistence/redis"
	"riskmonitor/internal/infra/pubsub"
	"riskmonitor/internal/infra/qrcode"
	"riskmonitor/internal/infra/storage"
	"riskmonitor/internal/infra/tiles"
	"riskmonitor/internal/infra/weather"
	"riskmonitor/internal/usecase/impl"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			redis.New,
			newInstanceID,
		),
		pubsub.Module,
	)
}

// newInstanceID tags this process's change events so it can skip its own echoes
func newInstanceID() service.InstanceID {
	return service.InstanceID(uuid.NewString())
}

func injectRepo() fx.Option {
	return storage.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			notification.NewAlertNotifier,
			newQRCodeService,
			geolocation.NewPositionProvider,
			geocoding.NewReverseGeocoder,
			weather.NewWeatherProvider,
			tiles.NewTileServer,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAlertService,
			impl.NewMapService,
			impl.NewUserService,
			impl.NewWeatherService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewGeolocationMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAlertHandler,
			handler.NewMapHandler,
			handler.NewWeatherHandler,
			handler.NewTileHandler,
			workerhandler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				newPushDeliveries,
				fx.ResultTags(`group:"deliveries,flatten"`),
			),
		),
	)
}

// newPushDeliveries adds the dedicated push listener when pubsub.pushPort is set.
// The API server always mounts the push route as well.
func newPushDeliveries(params worker.ServerParams) ([]delivery.Delivery, error) {
	if params.Cfg.PubSub == nil || params.Cfg.PubSub.PushPort <= 0 {
		return nil, nil
	}

	server, err := worker.NewServer(params)
	if err != nil {
		return nil, err
	}

	return []delivery.Delivery{server}, nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
