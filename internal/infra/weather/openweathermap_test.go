package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskmonitor/config"
	"riskmonitor/internal/domain/entity"
	domainerrors "riskmonitor/internal/domain/errors"
)

func newTestProvider(baseURL, apiKey string) *openWeatherClient {
	cfg := &config.Config{Weather: &config.WeatherConfig{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Units:   "metric",
		Lang:    "pt_br",
		Timeout: time.Second,
	}}

	provider, _ := NewWeatherProvider(cfg).(*openWeatherClient)

	return provider
}

func TestOpenWeatherClient_Current(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "pt_br", r.URL.Query().Get("lang"))
		assert.Equal(t, "-23.5", r.URL.Query().Get("lat"))

		_, _ = w.Write([]byte(`{
			"name": "São Paulo",
			"main": {"temp": 22.5, "feels_like": 21.9, "humidity": 78},
			"wind": {"speed": 3.6},
			"weather": [{"description": "chuva leve", "icon": "10d"}]
		}`))
	}))
	defer server.Close()

	loc := entity.Location{Lat: -23.5, Lng: -46.6}
	got, err := newTestProvider(server.URL+"/", "secret").Current(context.Background(), loc)
	require.NoError(t, err)

	assert.Equal(t, &entity.Weather{
		Location:    loc,
		City:        "São Paulo",
		Temperature: 22.5,
		FeelsLike:   21.9,
		Humidity:    78,
		WindSpeed:   3.6,
		Description: "chuva leve",
		Icon:        "10d",
	}, got)
}

func TestOpenWeatherClient_Unavailable(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		status  int
		body    string
		details string
	}{
		{name: "missing key", details: "missing API key"},
		{name: "rejected key", apiKey: "bad", status: http.StatusUnauthorized, details: "invalid API key"},
		{name: "upstream error", apiKey: "secret", status: http.StatusInternalServerError, details: "unexpected HTTP status 500"},
		{name: "malformed body", apiKey: "secret", status: http.StatusOK, body: "nope", details: "malformed response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls++
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestProvider(server.URL, tt.apiKey).Current(context.Background(), entity.Location{})
			require.ErrorIs(t, err, domainerrors.ErrWeatherUnavailable)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.details, appErr.Details())

			if tt.apiKey == "" {
				assert.Zero(t, calls)
			}
		})
	}
}
