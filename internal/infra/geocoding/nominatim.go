// Package geocoding resolves coordinates to addresses through Nominatim.
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"riskmonitor/config"
	"riskmonitor/internal/domain/entity"
	domainerrors "riskmonitor/internal/domain/errors"
	"riskmonitor/internal/domain/service"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// reverseResponse is the subset of the Nominatim reverse payload we read
type reverseResponse struct {
	DisplayName string            `json:"display_name"`
	Address     map[string]string `json:"address"`
	Error       string            `json:"error"`
}

// nominatimClient calls the Nominatim reverse endpoint
type nominatimClient struct {
	baseURL        string
	userAgent      string
	acceptLanguage string
	httpClient     *http.Client
	cache          placeCache
	cacheTTL       time.Duration
	logger         *slog.Logger
}

// Params holds dependencies for the reverse geocoder
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Redis  *goredis.Client `optional:"true"`
}

// NewReverseGeocoder creates the Nominatim client, caching results in redis
// when a client is available.
func NewReverseGeocoder(params Params) service.ReverseGeocoder {
	cfg := params.Config.Geocoding

	var cache placeCache = noCache{}
	if params.Redis != nil {
		cache = newRedisCache(params.Redis)
	}

	return newNominatimClient(cfg, cache, params.Logger)
}

func newNominatimClient(cfg *config.GeocodingConfig, cache placeCache, logger *slog.Logger) *nominatimClient {
	return &nominatimClient{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:      cfg.UserAgent,
		acceptLanguage: cfg.AcceptLanguage,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cache:    cache,
		cacheTTL: cfg.CacheTTL,
		logger:   logger,
	}
}

// Reverse looks up the address at loc. Every failure is reported as
// ErrAddressUnavailable.
func (c *nominatimClient) Reverse(ctx context.Context, loc entity.Location) (*entity.Place, error) {
	key := cacheKey(loc)
	if place, ok := c.cache.get(ctx, key); ok {
		return place, nil
	}

	place, err := c.fetch(ctx, loc)
	if err != nil {
		c.logger.Debug("Reverse geocoding failed",
			slog.Float64("lat", loc.Lat),
			slog.Float64("lng", loc.Lng),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrAddressUnavailable.WithDetails(err.Error())
	}

	if err := c.cache.set(ctx, key, place, c.cacheTTL); err != nil {
		c.logger.Warn("Failed to cache geocoding result", slog.Any("error", err))
	}

	return place, nil
}

func (c *nominatimClient) fetch(ctx context.Context, loc entity.Location) (*entity.Place, error) {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("lat", strconv.FormatFloat(loc.Lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(loc.Lng, 'f', -1, 64))
	query.Set("zoom", "18")
	query.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create reverse request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.acceptLanguage != "" {
		req.Header.Set("Accept-Language", c.acceptLanguage)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reverse request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected HTTP status %d", resp.StatusCode)
	}

	var payload reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse reverse response: %w", err)
	}

	if payload.Error != "" {
		return nil, fmt.Errorf("nominatim: %s", payload.Error)
	}

	return &entity.Place{
		DisplayName: payload.DisplayName,
		Address:     payload.Address,
	}, nil
}

// cacheKey rounds to 5 decimals (about a metre), the precision popups show
func cacheKey(loc entity.Location) string {
	return fmt.Sprintf("geocode:%.5f,%.5f", loc.Lat, loc.Lng)
}
