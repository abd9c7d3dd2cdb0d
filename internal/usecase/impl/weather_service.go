package impl

import (
	"context"
	"log/slog"

	deliverycontext "riskmonitor/internal/delivery/context"
	"riskmonitor/internal/domain/entity"
	domainerrors "riskmonitor/internal/domain/errors"
	"riskmonitor/internal/domain/service"
	"riskmonitor/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Reasons shown on an unavailable weather card
const (
	WeatherReasonLocationDenied      = "location permission denied"
	WeatherReasonLocationUnavailable = "location unavailable"
	WeatherReasonService             = "weather service unavailable"
)

type weatherService struct {
	positions service.PositionProvider
	provider  service.WeatherProvider
	logger    *slog.Logger
}

// WeatherServiceParams holds dependencies for WeatherService, injected by Fx.
type WeatherServiceParams struct {
	fx.In

	Positions service.PositionProvider
	Provider  service.WeatherProvider
	Logger    *slog.Logger
}

func NewWeatherService(params WeatherServiceParams) usecase.WeatherUsecase {
	return &weatherService{
		positions: params.Positions,
		provider:  params.Provider,
		logger:    params.Logger,
	}
}

// CurrentWeather reports conditions at loc, or at the device position when
// loc is nil.
func (s *weatherService) CurrentWeather(ctx context.Context, loc *entity.Location) *usecase.WeatherCard {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	var at entity.Location
	if loc != nil {
		at = *loc
	} else {
		position, err := s.positions.CurrentPosition(ctx)
		if err != nil {
			logger.Debug("Weather skipped without position", slog.Any("error", err))

			return unavailable(positionReason(err))
		}
		at = position
	}
	if !at.Valid() {
		return unavailable(WeatherReasonLocationUnavailable)
	}

	weather, err := s.provider.Current(ctx, at)
	if err != nil {
		logger.Warn("Weather lookup failed", slog.Any("error", err))

		return unavailable(weatherReason(err))
	}

	return &usecase.WeatherCard{Available: true, Weather: weather}
}

func unavailable(reason string) *usecase.WeatherCard {
	return &usecase.WeatherCard{Available: false, Reason: reason}
}

func positionReason(err error) string {
	if errors.Is(err, domainerrors.ErrPermissionDenied) {
		return WeatherReasonLocationDenied
	}

	return WeatherReasonLocationUnavailable
}

// weatherReason surfaces the provider's failure detail when it has one.
func weatherReason(err error) string {
	var appErr *domainerrors.BaseError
	if errors.As(err, &appErr) && appErr.Details() != "" {
		return appErr.Details()
	}

	return WeatherReasonService
}
