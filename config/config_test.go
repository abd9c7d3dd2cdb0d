package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Storage)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)

	require.NotNil(t, cfg.Alerts)
	assert.InDelta(t, 50.0, cfg.Alerts.DefaultRadius, 1e-9)
	assert.InDelta(t, 1000.0, cfg.Alerts.MaxRadius, 1e-9)
	assert.Equal(t, 60, cfg.Alerts.DescriptionPreviewLength)

	require.NotNil(t, cfg.Map)
	assert.InDelta(t, -23.550520, cfg.Map.CenterLat, 1e-9)
	assert.InDelta(t, -46.633308, cfg.Map.CenterLng, 1e-9)
	assert.Equal(t, 13, cfg.Map.Zoom)
	assert.Equal(t, time.Second, cfg.Map.PollInterval)
	assert.Equal(t, "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png", cfg.Map.TileURL)

	require.NotNil(t, cfg.Geolocation)
	assert.Equal(t, "request", cfg.Geolocation.Provider)
	require.NotNil(t, cfg.PubSub)
	require.NotNil(t, cfg.PMTiles)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Alerts: &AlertsConfig{DefaultRadius: 75, MaxRadius: 300},
		Map:    &MapConfig{CenterLat: 1, CenterLng: 2, Zoom: 5, PollInterval: 5 * time.Second},
	}

	applyDefaults(cfg)

	assert.InDelta(t, 75.0, cfg.Alerts.DefaultRadius, 1e-9)
	assert.InDelta(t, 300.0, cfg.Alerts.MaxRadius, 1e-9)
	assert.InDelta(t, 1.0, cfg.Map.CenterLat, 1e-9)
	assert.Equal(t, 5, cfg.Map.Zoom)
	assert.Equal(t, 5*time.Second, cfg.Map.PollInterval)
}
