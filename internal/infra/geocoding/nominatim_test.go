package geocoding

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskmonitor/config"
	"riskmonitor/internal/domain/entity"
	domainerrors "riskmonitor/internal/domain/errors"
)

type mapCache struct {
	mu      sync.Mutex
	entries map[string]*entity.Place
}

func (c *mapCache) get(_ context.Context, key string) (*entity.Place, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	place, ok := c.entries[key]

	return place, ok
}

func (c *mapCache) set(_ context.Context, key string, place *entity.Place, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = place

	return nil
}

func newTestClient(baseURL string, cache placeCache) *nominatimClient {
	cfg := &config.GeocodingConfig{
		BaseURL:        baseURL,
		UserAgent:      "RiskMonitor/test",
		AcceptLanguage: "pt-BR",
		Timeout:        time.Second,
		CacheTTL:       time.Hour,
	}

	return newNominatimClient(cfg, cache, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNominatimClient_Reverse(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "-23.55052", r.URL.Query().Get("lat"))
		assert.Equal(t, "-46.633308", r.URL.Query().Get("lon"))
		assert.Equal(t, "18", r.URL.Query().Get("zoom"))
		assert.Equal(t, "1", r.URL.Query().Get("addressdetails"))
		assert.Equal(t, "RiskMonitor/test", r.Header.Get("User-Agent"))
		assert.Equal(t, "pt-BR", r.Header.Get("Accept-Language"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"display_name": "Praça da Sé, Sé, São Paulo",
			"address": {"road": "Praça da Sé", "suburb": "Sé", "city": "São Paulo", "state": "São Paulo"}
		}`))
	}))
	defer server.Close()

	cache := &mapCache{entries: map[string]*entity.Place{}}
	client := newTestClient(server.URL, cache)
	loc := entity.Location{Lat: -23.55052, Lng: -46.633308}

	place, err := client.Reverse(context.Background(), loc)
	require.NoError(t, err)
	assert.Equal(t, "Praça da Sé, Sé, São Paulo", place.DisplayName)
	assert.Equal(t, "Praça da Sé", place.Address["road"])
	assert.Equal(t, "Sé", place.Address["suburb"])

	// Second lookup is served from the cache
	again, err := client.Reverse(context.Background(), loc)
	require.NoError(t, err)
	assert.Equal(t, place, again)
	assert.Equal(t, 1, calls)
	assert.Contains(t, cache.entries, "geocode:-23.55052,-46.63331")
}

func TestNominatimClient_ReverseFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("<html>"))
			},
		},
		{
			name: "nominatim error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			cache := &mapCache{entries: map[string]*entity.Place{}}
			client := newTestClient(server.URL, cache)

			place, err := client.Reverse(context.Background(), entity.Location{Lat: 1, Lng: 2})
			assert.Nil(t, place)
			assert.ErrorIs(t, err, domainerrors.ErrAddressUnavailable)
			assert.Empty(t, cache.entries)
		})
	}
}

func TestNominatimClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL, noCache{})

	_, err := client.Reverse(context.Background(), entity.Location{Lat: 1, Lng: 2})
	assert.ErrorIs(t, err, domainerrors.ErrAddressUnavailable)
}

func TestNewReverseGeocoder_WithoutRedis(t *testing.T) {
	cfg := &config.Config{Geocoding: &config.GeocodingConfig{BaseURL: "https://nominatim.example.com/"}}

	geocoder := NewReverseGeocoder(Params{Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	client, ok := geocoder.(*nominatimClient)
	require.True(t, ok)
	assert.Equal(t, "https://nominatim.example.com", client.baseURL)
	assert.IsType(t, noCache{}, client.cache)
}
