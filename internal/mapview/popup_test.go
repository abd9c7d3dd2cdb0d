package mapview

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"riskmonitor/internal/domain/entity"
	domainerrors "riskmonitor/internal/domain/errors"
	servicemocks "riskmonitor/internal/mocks/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTruncate(t *testing.T) {
	short := "River overflow"
	assert.Equal(t, short, Truncate(short, 60))

	long := strings.Repeat("a", 61)
	assert.Equal(t, strings.Repeat("a", 60)+"...", Truncate(long, 60))

	exact := strings.Repeat("é", 60)
	assert.Equal(t, exact, Truncate(exact, 60))
}

func TestFormatTimestamp(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	ts := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, "01/05/2024 09:30", FormatTimestamp(ts, saoPaulo))
	assert.Equal(t, "01/05/2024 12:30", FormatTimestamp(ts, nil))
}

func TestFormatCoordinates(t *testing.T) {
	assert.Equal(t, "-27.59690, -48.54950", FormatCoordinates(entity.Location{Lat: -27.5969, Lng: -48.5495}))
}

func TestFormatAddress(t *testing.T) {
	tests := []struct {
		name  string
		place *entity.Place
		want  string
	}{
		{name: "nil", want: AddressUnavailable},
		{
			name: "ordered parts",
			place: &entity.Place{Address: map[string]string{
				"state": "Santa Catarina", "city": "Florianópolis", "road": "Rua A",
				"suburb": "Centro", "neighbourhood": "Vila", "postcode": "88000",
			}},
			want: "Rua A, Vila, Centro, Florianópolis, Santa Catarina",
		},
		{name: "display name fallback", place: &entity.Place{DisplayName: "Somewhere"}, want: "Somewhere"},
		{name: "empty", place: &entity.Place{}, want: AddressUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAddress(tt.place))
		})
	}
}

func popupAlert() entity.Alert {
	return entity.Alert{
		ID:          7,
		Title:       "Flood Risk",
		Description: strings.Repeat("x", 80),
		RiskLevel:   entity.RiskHigh,
		Radius:      50,
		Location:    entity.Location{Lat: -27.5969, Lng: -48.5495},
		Timestamp:   time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
	}
}

func TestPopups_ResolvesAddress(t *testing.T) {
	geocoder := servicemocks.NewMockReverseGeocoder(t)
	geocoder.EXPECT().
		Reverse(mock.Anything, entity.Location{Lat: -27.5969, Lng: -48.5495}).
		Return(&entity.Place{Address: map[string]string{"road": "Rua A", "city": "Florianópolis"}}, nil)

	popups := NewPopups(geocoder, PopupOptions{PreviewLength: 60}, discardLogger())
	defer popups.CloseAll()

	content := mustOpen(t, popups, popupAlert())
	assert.NotEmpty(t, content.PopupID)
	assert.Equal(t, strings.Repeat("x", 60)+"...", content.Description)
	assert.Equal(t, "01/05/2024 12:30", content.Timestamp)
	assert.Equal(t, "-27.59690, -48.54950", content.Coordinates)
	assert.Equal(t, "High", content.RiskLabel)
	assert.Equal(t, AddressLoading, content.Address)

	require.Eventually(t, func() bool {
		got, ok := popups.Get(content.PopupID)

		return ok && got.AddressState == AddressStateReady
	}, time.Second, 5*time.Millisecond)

	got, _ := popups.Get(content.PopupID)
	assert.Equal(t, "Rua A, Florianópolis", got.Address)
}

func TestPopups_LookupFailure(t *testing.T) {
	geocoder := servicemocks.NewMockReverseGeocoder(t)
	geocoder.EXPECT().Reverse(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrAddressUnavailable)

	popups := NewPopups(geocoder, PopupOptions{PreviewLength: 60}, discardLogger())
	defer popups.CloseAll()

	content := mustOpen(t, popups, popupAlert())

	require.Eventually(t, func() bool {
		got, _ := popups.Get(content.PopupID)

		return got.AddressState == AddressStateError
	}, time.Second, 5*time.Millisecond)

	got, _ := popups.Get(content.PopupID)
	assert.Equal(t, AddressUnavailable, got.Address)
	assert.Equal(t, "-27.59690, -48.54950", got.Coordinates)
}

func TestPopups_CloseCancelsLookup(t *testing.T) {
	started := make(chan struct{})
	geocoder := servicemocks.NewMockReverseGeocoder(t)
	geocoder.EXPECT().
		Reverse(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ entity.Location) (*entity.Place, error) {
			close(started)
			<-ctx.Done()

			return &entity.Place{DisplayName: "late"}, nil
		})

	popups := NewPopups(geocoder, PopupOptions{PreviewLength: 60}, discardLogger())

	content := mustOpen(t, popups, popupAlert())
	<-started
	popups.Close(content.PopupID)
	popups.CloseAll()

	_, ok := popups.Get(content.PopupID)
	assert.False(t, ok)
}

func TestPopups_EvictsIdle(t *testing.T) {
	geocoder := servicemocks.NewMockReverseGeocoder(t)
	geocoder.EXPECT().Reverse(mock.Anything, mock.Anything).Return(&entity.Place{DisplayName: "x"}, nil)

	popups := NewPopups(geocoder, PopupOptions{}, discardLogger())
	defer popups.CloseAll()

	base := time.Now()
	popups.now = func() time.Time { return base }
	first := mustOpen(t, popups, popupAlert())

	popups.now = func() time.Time { return base.Add(popupIdleTTL + time.Minute) }
	second := mustOpen(t, popups, popupAlert())

	_, ok := popups.Get(first.PopupID)
	assert.False(t, ok)
	_, ok = popups.Get(second.PopupID)
	assert.True(t, ok)
}

func mustOpen(t *testing.T, popups *Popups, alert entity.Alert) PopupContent {
	t.Helper()

	content, ok := popups.Open(alert)
	require.True(t, ok)

	return content
}

func TestPopups_OpenAfterCloseAllIsRefused(t *testing.T) {
	geocoder := servicemocks.NewMockReverseGeocoder(t)
	popups := NewPopups(geocoder, PopupOptions{}, discardLogger())

	popups.CloseAll()

	_, ok := popups.Open(popupAlert())
	assert.False(t, ok)
	popups.CloseAll()
}

func TestPopups_OpenRacingCloseAll(t *testing.T) {
	geocoder := servicemocks.NewMockReverseGeocoder(t)
	geocoder.EXPECT().Reverse(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrAddressUnavailable).Maybe()

	popups := NewPopups(geocoder, PopupOptions{}, discardLogger())

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			popups.Open(popupAlert())
		}()
	}
	popups.CloseAll()
	wg.Wait()
	popups.CloseAll()

	_, ok := popups.Open(popupAlert())
	assert.False(t, ok)
}
