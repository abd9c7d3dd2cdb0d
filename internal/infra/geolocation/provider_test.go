package geolocation

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskmonitor/config"
	"riskmonitor/internal/domain/entity"
	domainerrors "riskmonitor/internal/domain/errors"
)

func TestRequestProvider_CurrentPosition(t *testing.T) {
	provider := NewRequestProvider()
	saoPaulo := entity.Location{Lat: -23.55052, Lng: -46.633308}

	tests := []struct {
		name    string
		ctx     context.Context
		want    entity.Location
		wantErr error
	}{
		{
			name: "reported fix",
			ctx:  WithPosition(context.Background(), saoPaulo),
			want: saoPaulo,
		},
		{
			name:    "nothing reported",
			ctx:     context.Background(),
			wantErr: domainerrors.ErrPositionUnavailable,
		},
		{
			name:    "out of range fix",
			ctx:     WithPosition(context.Background(), entity.Location{Lat: 91, Lng: 0}),
			wantErr: domainerrors.ErrPositionUnavailable,
		},
		{
			name:    "permission denied",
			ctx:     WithFailure(context.Background(), ParseFailure("permission_denied")),
			wantErr: domainerrors.ErrPermissionDenied,
		},
		{
			name:    "timeout",
			ctx:     WithFailure(context.Background(), ParseFailure("TIMEOUT")),
			wantErr: domainerrors.ErrPositionUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := provider.CurrentPosition(tt.ctx)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequestProvider_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(WithPosition(context.Background(), entity.Location{Lat: 1, Lng: 1}))
	cancel()

	_, err := NewRequestProvider().CurrentPosition(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrPositionUnavailable)
}

func TestParseHeader(t *testing.T) {
	loc, err := ParseHeader(" -23.55052 , -46.633308 ")
	require.NoError(t, err)
	assert.Equal(t, entity.Location{Lat: -23.55052, Lng: -46.633308}, loc)

	for _, bad := range []string{"", "1", "a,2", "1,b"} {
		_, err := ParseHeader(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseFailure(t *testing.T) {
	assert.ErrorIs(t, ParseFailure("permission_denied"), domainerrors.ErrPermissionDenied)
	assert.ErrorIs(t, ParseFailure("position_unavailable"), domainerrors.ErrPositionUnavailable)
	assert.ErrorIs(t, ParseFailure("something else"), domainerrors.ErrPositionUnavailable)
}

func TestNewPositionProvider(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	provider, err := NewPositionProvider(&config.Config{
		Geolocation: &config.GeolocationConfig{Provider: "static", Latitude: -23.5, Longitude: -46.6},
	}, logger)
	require.NoError(t, err)

	loc, err := provider.CurrentPosition(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.Location{Lat: -23.5, Lng: -46.6}, loc)

	_, err = NewPositionProvider(&config.Config{
		Geolocation: &config.GeolocationConfig{Provider: "static", Latitude: 100},
	}, logger)
	assert.Error(t, err)

	_, err = NewPositionProvider(&config.Config{
		Geolocation: &config.GeolocationConfig{Provider: "gps"},
	}, logger)
	assert.Error(t, err)

	provider, err = NewPositionProvider(&config.Config{}, logger)
	require.NoError(t, err)
	assert.IsType(t, requestProvider{}, provider)
}
