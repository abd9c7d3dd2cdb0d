package service

import (
	"context"

	"riskmonitor/internal/domain/entity"
)

// WeatherProvider reports current conditions at a point.
type WeatherProvider interface {
	Current(ctx context.Context, loc entity.Location) (*entity.Weather, error)
}
