package handler

import (
	"net/http"

	"riskmonitor/internal/delivery/api/response"
	"riskmonitor/internal/delivery/api/validator"
	"riskmonitor/internal/domain/entity"
	"riskmonitor/internal/usecase"

	"github.com/labstack/echo/v4"
)

// WeatherHandler serves the weather card
type WeatherHandler struct {
	weatherUC usecase.WeatherUsecase
}

// NewWeatherHandler creates a new WeatherHandler
func NewWeatherHandler(weatherUC usecase.WeatherUsecase) *WeatherHandler {
	return &WeatherHandler{weatherUC: weatherUC}
}

// CurrentWeather reports conditions at the lat/lng query point, or at the
// device position when the query is absent. It always answers 200.
func (h *WeatherHandler) CurrentWeather(c echo.Context) error {
	var loc *entity.Location
	if c.QueryParam("lat") != "" || c.QueryParam("lng") != "" {
		var req usecase.PositionInput
		if err := echo.QueryParamsBinder(c).
			MustFloat64("lat", &req.Lat).
			MustFloat64("lng", &req.Lng).
			BindError(); err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "lat and lng must be given together")
		}
		if err := c.Validate(&req); err != nil {
			return response.ValidationFailed(c, validator.FieldErrors(err))
		}

		at := req.Location()
		loc = &at
	}

	return response.Success(c, http.StatusOK, h.weatherUC.CurrentWeather(c.Request().Context(), loc))
}
