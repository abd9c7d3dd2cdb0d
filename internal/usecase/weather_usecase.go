package usecase

import (
	"context"

	"riskmonitor/internal/domain/entity"
)

// WeatherCard is either a snapshot of current conditions or the reason
// none is available.
type WeatherCard struct {
	Available bool            `json:"available"`
	Weather   *entity.Weather `json:"weather,omitempty"`
	Reason    string          `json:"reason,omitempty"`
}

// WeatherUsecase builds the weather card. It never fails: every problem
// degrades to an unavailable card.
type WeatherUsecase interface {
	CurrentWeather(ctx context.Context, loc *entity.Location) *WeatherCard
}
