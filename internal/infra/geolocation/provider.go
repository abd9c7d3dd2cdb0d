// Package geolocation implements service.PositionProvider.
package geolocation

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"riskmonitor/config"
	"riskmonitor/internal/domain/constants"
	"riskmonitor/internal/domain/entity"
	domainerrors "riskmonitor/internal/domain/errors"
	"riskmonitor/internal/domain/service"

	"github.com/pkg/errors"
)

// Failure codes a client may send in the X-Geolocation-Error header
const (
	FailurePermissionDenied    = "permission_denied"
	FailurePositionUnavailable = "position_unavailable"
	FailureTimeout             = "timeout"
)

type fixKey struct{}

// fix is what the client reported for the current request
type fix struct {
	location *entity.Location
	err      error
}

// WithPosition carries the client's device position on ctx
func WithPosition(ctx context.Context, loc entity.Location) context.Context {
	return context.WithValue(ctx, fixKey{}, fix{location: &loc})
}

// WithFailure carries the client's geolocation failure on ctx
func WithFailure(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, fixKey{}, fix{err: err})
}

// ParseFailure maps a client failure code to a domain error. Timeouts and
// unknown codes count as an unavailable position.
func ParseFailure(code string) error {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case FailurePermissionDenied:
		return domainerrors.ErrPermissionDenied
	case FailureTimeout:
		return domainerrors.ErrPositionUnavailable.WithDetails("timeout")
	default:
		return domainerrors.ErrPositionUnavailable
	}
}

// ParseHeader reads a "lat,lng" pair
func ParseHeader(value string) (entity.Location, error) {
	latRaw, lngRaw, ok := strings.Cut(value, ",")
	if !ok {
		return entity.Location{}, errors.Errorf("malformed position %q", value)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
	if err != nil {
		return entity.Location{}, errors.Wrap(err, "latitude")
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(lngRaw), 64)
	if err != nil {
		return entity.Location{}, errors.Wrap(err, "longitude")
	}

	return entity.Location{Lat: lat, Lng: lng}, nil
}

// requestProvider answers with whatever the client put on the request
type requestProvider struct{}

// NewRequestProvider returns a provider reading the client-reported fix from ctx
func NewRequestProvider() service.PositionProvider {
	return requestProvider{}
}

func (requestProvider) CurrentPosition(ctx context.Context) (entity.Location, error) {
	if err := ctx.Err(); err != nil {
		return entity.Location{}, domainerrors.ErrPositionUnavailable.WithDetails(err.Error())
	}

	reported, ok := ctx.Value(fixKey{}).(fix)
	if !ok {
		return entity.Location{}, domainerrors.ErrPositionUnavailable.WithDetails("no position reported")
	}

	if reported.err != nil {
		return entity.Location{}, reported.err
	}

	if reported.location == nil || !reported.location.Valid() {
		return entity.Location{}, domainerrors.ErrPositionUnavailable.WithDetails("reported position out of range")
	}

	return *reported.location, nil
}

type staticProvider struct {
	location entity.Location
}

// NewStaticProvider always answers with loc
func NewStaticProvider(loc entity.Location) service.PositionProvider {
	return staticProvider{location: loc}
}

func (p staticProvider) CurrentPosition(context.Context) (entity.Location, error) {
	return p.location, nil
}

// NewPositionProvider selects the provider named in configuration
func NewPositionProvider(cfg *config.Config, logger *slog.Logger) (service.PositionProvider, error) {
	geo := cfg.Geolocation
	if geo == nil {
		return NewRequestProvider(), nil
	}

	switch geo.Provider {
	case "", constants.GeolocationProviderRequest:
		return NewRequestProvider(), nil
	case constants.GeolocationProviderStatic:
		loc := entity.Location{Lat: geo.Latitude, Lng: geo.Longitude}
		if !loc.Valid() {
			return nil, errors.Errorf("static position %v,%v is out of range", geo.Latitude, geo.Longitude)
		}
		logger.Info("Using static geolocation",
			slog.Float64("lat", loc.Lat),
			slog.Float64("lng", loc.Lng),
		)

		return NewStaticProvider(loc), nil
	default:
		return nil, errors.Errorf("unknown geolocation provider %q", geo.Provider)
	}
}
