package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"riskmonitor/config"
	"riskmonitor/internal/domain/entity"
	domainerrors "riskmonitor/internal/domain/errors"
	"riskmonitor/internal/infra/pubsub"
	"riskmonitor/internal/infra/storage"
	"riskmonitor/internal/mapview"
	mockService "riskmonitor/internal/mocks/service"
	"riskmonitor/internal/usecase"
)

func newMapTestConfig() *config.Config {
	return &config.Config{
		Alerts: &config.AlertsConfig{DefaultRadius: 50, MaxRadius: 1000, DescriptionPreviewLength: 60},
		Map: &config.MapConfig{
			CenterLat:    -23.550520,
			CenterLng:    -46.633308,
			Zoom:         13,
			PollInterval: 20 * time.Millisecond,
			TileURL:      "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
			Attribution:  "© OpenStreetMap contributors",
			ZoneSegments: 16,
			Timezone:     "America/Sao_Paulo",
		},
	}
}

type mapFixture struct {
	alerts   usecase.AlertUsecase
	maps     usecase.MapUsecase
	geocoder *mockService.MockReverseGeocoder
}

func newMapFixture(t *testing.T) *mapFixture {
	t.Helper()

	cfg := newMapTestConfig()
	logger := newDiscardLogger()
	feed := pubsub.NewHub(logger)
	store := storage.NewAlertStore(storage.NewNotifyingStore(storage.NewMemoryStore(), nil, feed, "test", logger), logger)

	alerts := NewAlertService(AlertServiceParams{
		Store:     store,
		Positions: mockService.NewMockPositionProvider(t),
		Notifier:  mockService.NewMockAlertNotifier(t),
		Config:    cfg,
		Logger:    logger,
	})
	geocoder := mockService.NewMockReverseGeocoder(t)

	lc := fxtest.NewLifecycle(t)
	maps := NewMapService(MapServiceParams{
		Lc:       lc,
		Alerts:   alerts,
		Store:    store,
		Feed:     feed,
		Geocoder: geocoder,
		Config:   cfg,
		Logger:   logger,
	})
	lc.RequireStart()
	t.Cleanup(lc.RequireStop)

	return &mapFixture{alerts: alerts, maps: maps, geocoder: geocoder}
}

func TestMapService_Settings(t *testing.T) {
	f := newMapFixture(t)

	settings := f.maps.Settings()
	assert.Equal(t, entity.Location{Lat: -23.550520, Lng: -46.633308}, settings.Center)
	assert.Equal(t, 13, settings.Zoom)
	assert.Equal(t, "© OpenStreetMap contributors", settings.Attribution)
	assert.False(t, settings.LocalTiles)
}

func TestMapService_LayerFollowsStorage(t *testing.T) {
	f := newMapFixture(t)
	ctx := context.Background()

	assert.Empty(t, f.maps.Layer(ctx).Markers)

	alert, err := f.alerts.CreateAlertAt(ctx, entity.AlertDraft{Title: "Flood Risk", Description: "d", RiskLevel: "medium"}, florianopolis)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(f.maps.Layer(ctx).Markers) == 1
	}, time.Second, 10*time.Millisecond)

	marker := f.maps.Layer(ctx).Markers[0]
	assert.Equal(t, alert.ID, marker.ID)
	assert.Equal(t, mapview.ColorMedium, marker.Color)

	collection := f.maps.GeoJSON(ctx)
	assert.Len(t, collection.Features, 2, "marker and zone")
}

func TestMapService_MoveAlert(t *testing.T) {
	f := newMapFixture(t)
	ctx := context.Background()

	alert, err := f.alerts.CreateAlertAt(ctx, entity.AlertDraft{Title: "Flood Risk", Description: "d"}, florianopolis)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return len(f.maps.Layer(ctx).Markers) == 1
	}, time.Second, 10*time.Millisecond)

	updates, cancel := f.maps.Subscribe()
	defer cancel()

	target := entity.Location{Lat: -27.6, Lng: -48.56}
	marker, err := f.maps.MoveAlert(ctx, alert.ID, target)
	require.NoError(t, err)
	assert.Equal(t, target, marker.Location)

	assert.Equal(t, target, f.maps.Layer(ctx).Markers[0].Location, "local state moves immediately")

	select {
	case update := <-updates:
		require.Len(t, update.Updated, 1)
		assert.Equal(t, alert.ID, update.Updated[0].ID)
	case <-time.After(time.Second):
		t.Fatal("no update streamed")
	}

	stored, err := f.alerts.GetAlert(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, target, stored.Location)
}

func TestMapService_MoveAlert_FailureLeavesStateAlone(t *testing.T) {
	f := newMapFixture(t)
	ctx := context.Background()

	_, err := f.maps.MoveAlert(ctx, 99, florianopolis)
	assert.ErrorIs(t, err, domainerrors.ErrAlertNotFound)

	_, err = f.maps.MoveAlert(ctx, 99, entity.Location{Lat: 91})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)

	assert.Empty(t, f.maps.Layer(ctx).Markers)
}

func TestMapService_Popups(t *testing.T) {
	f := newMapFixture(t)
	ctx := context.Background()

	alert, err := f.alerts.CreateAlertAt(ctx, entity.AlertDraft{Title: "Flood Risk", Description: "River level rising"}, florianopolis)
	require.NoError(t, err)

	f.geocoder.EXPECT().Reverse(mock.Anything, florianopolis).Return(&entity.Place{
		DisplayName: "Centro, Florianópolis",
		Address:     map[string]string{"road": "Rua Felipe Schmidt", "city": "Florianópolis"},
	}, nil)

	popup, err := f.maps.OpenPopup(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, "-27.59690, -48.54950", popup.Coordinates)

	require.Eventually(t, func() bool {
		current, err := f.maps.Popup(popup.PopupID)

		return err == nil && current.AddressState == mapview.AddressStateReady
	}, time.Second, 10*time.Millisecond)

	f.maps.ClosePopup(popup.PopupID)
	_, err = f.maps.Popup(popup.PopupID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = f.maps.OpenPopup(ctx, alert.ID+1)
	assert.ErrorIs(t, err, domainerrors.ErrAlertNotFound)
}

func TestMapService_OpenPopupAfterShutdown(t *testing.T) {
	f := newMapFixture(t)
	ctx := context.Background()

	alert, err := f.alerts.CreateAlertAt(ctx, entity.AlertDraft{Title: "Flood Risk", Description: "d"}, florianopolis)
	require.NoError(t, err)

	f.maps.(*mapService).popups.CloseAll()

	_, err = f.maps.OpenPopup(ctx, alert.ID)
	assert.ErrorIs(t, err, domainerrors.ErrShuttingDown)
}
