// Package weather reads current conditions from OpenWeatherMap.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"riskmonitor/config"
	"riskmonitor/internal/domain/entity"
	domainerrors "riskmonitor/internal/domain/errors"
	"riskmonitor/internal/domain/service"
)

// currentResponse is the subset of the current weather payload we read
type currentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

type openWeatherClient struct {
	baseURL    string
	apiKey     string
	units      string
	lang       string
	httpClient *http.Client
}

// NewWeatherProvider creates an OpenWeatherMap client
func NewWeatherProvider(cfg *config.Config) service.WeatherProvider {
	w := cfg.Weather

	return &openWeatherClient{
		baseURL: strings.TrimRight(w.BaseURL, "/"),
		apiKey:  w.APIKey,
		units:   w.Units,
		lang:    w.Lang,
		httpClient: &http.Client{
			Timeout: w.Timeout,
		},
	}
}

// Current returns the conditions at loc. A missing API key or any upstream
// failure is ErrWeatherUnavailable with the reason in its details.
func (c *openWeatherClient) Current(ctx context.Context, loc entity.Location) (*entity.Weather, error) {
	if c.apiKey == "" {
		return nil, domainerrors.ErrWeatherUnavailable.WithDetails("missing API key")
	}

	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(loc.Lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(loc.Lng, 'f', -1, 64))
	query.Set("appid", c.apiKey)
	if c.units != "" {
		query.Set("units", c.units)
	}
	if c.lang != "" {
		query.Set("lang", c.lang)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+query.Encode(), nil)
	if err != nil {
		return nil, domainerrors.ErrWeatherUnavailable.WithDetails(err.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrWeatherUnavailable.WithDetails("network error")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, domainerrors.ErrWeatherUnavailable.WithDetails("invalid API key")
	default:
		return nil, domainerrors.ErrWeatherUnavailable.WithDetails(fmt.Sprintf("unexpected HTTP status %d", resp.StatusCode))
	}

	var payload currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domainerrors.ErrWeatherUnavailable.WithDetails("malformed response")
	}

	weather := &entity.Weather{
		Location:    loc,
		City:        payload.Name,
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
	}
	if len(payload.Weather) > 0 {
		weather.Description = payload.Weather[0].Description
		weather.Icon = payload.Weather[0].Icon
	}

	return weather, nil
}
