package impl

import (
	"context"
	"log/slog"

	"riskmonitor/config"
	"riskmonitor/internal/domain/entity"
	domainerrors "riskmonitor/internal/domain/errors"
	"riskmonitor/internal/domain/repository"
	"riskmonitor/internal/domain/service"
	"riskmonitor/internal/mapview"
	"riskmonitor/internal/usecase"

	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

type mapService struct {
	alerts     usecase.AlertUsecase
	reconciler *mapview.Reconciler
	popups     *mapview.Popups
	settings   usecase.MapSettings
	segments   int
	logger     *slog.Logger
}

// MapServiceParams holds dependencies for MapService, injected by Fx.
type MapServiceParams struct {
	fx.In

	Lc       fx.Lifecycle
	Alerts   usecase.AlertUsecase
	Store    repository.AlertStore
	Feed     service.ChangeFeed
	Geocoder service.ReverseGeocoder
	Config   *config.Config
	Logger   *slog.Logger
}

// NewMapService builds the map state and ties its reconciliation loop to the
// application lifecycle.
func NewMapService(params MapServiceParams) usecase.MapUsecase {
	srv := newMapService(params)

	var cancel context.CancelFunc
	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := srv.reconciler.Load(ctx); err != nil {
				// The first poll tick retries.
				srv.logger.Warn("Initial map load failed", slog.Any("error", err))
			}

			var runCtx context.Context
			runCtx, cancel = context.WithCancel(context.Background())
			go srv.reconciler.Run(runCtx)

			return nil
		},
		OnStop: func(context.Context) error {
			if cancel != nil {
				cancel()
			}
			srv.popups.CloseAll()

			return nil
		},
	})

	return srv
}

func newMapService(params MapServiceParams) *mapService {
	mapCfg := params.Config.Map
	previewLength := 60
	if params.Config.Alerts != nil && params.Config.Alerts.DescriptionPreviewLength > 0 {
		previewLength = params.Config.Alerts.DescriptionPreviewLength
	}

	localTiles := params.Config.PMTiles != nil && params.Config.PMTiles.Enabled

	return &mapService{
		alerts:     params.Alerts,
		reconciler: mapview.NewReconciler(params.Store, params.Feed, mapCfg.PollInterval, params.Logger),
		popups: mapview.NewPopups(params.Geocoder, mapview.PopupOptions{
			PreviewLength: previewLength,
			Location:      mapview.ResolveTimezone(mapCfg.Timezone, params.Logger),
		}, params.Logger),
		settings: usecase.MapSettings{
			Center:      entity.Location{Lat: mapCfg.CenterLat, Lng: mapCfg.CenterLng},
			Zoom:        mapCfg.Zoom,
			TileURL:     mapCfg.TileURL,
			Attribution: mapCfg.Attribution,
			LocalTiles:  localTiles,
		},
		segments: mapCfg.ZoneSegments,
		logger:   params.Logger,
	}
}

func (s *mapService) Settings() usecase.MapSettings {
	return s.settings
}

func (s *mapService) Layer(context.Context) mapview.Layer {
	return mapview.BuildLayer(s.reconciler.Alerts())
}

func (s *mapService) GeoJSON(context.Context) *geojson.FeatureCollection {
	return mapview.BuildGeoJSON(s.reconciler.Alerts(), s.segments)
}

func (s *mapService) Subscribe() (<-chan mapview.Update, func()) {
	return s.reconciler.Subscribe()
}

// MoveAlert writes the new position first; the in-memory state follows only
// after the write succeeded.
func (s *mapService) MoveAlert(ctx context.Context, id int64, loc entity.Location) (*mapview.Marker, error) {
	alert, err := s.alerts.RepositionAlert(ctx, id, loc)
	if err != nil {
		return nil, err
	}

	s.reconciler.ApplyLocal(*alert)
	marker := mapview.NewMarker(*alert)

	return &marker, nil
}

func (s *mapService) OpenPopup(ctx context.Context, alertID int64) (*mapview.PopupContent, error) {
	alert, err := s.alerts.GetAlert(ctx, alertID)
	if err != nil {
		return nil, err
	}

	content, ok := s.popups.Open(*alert)
	if !ok {
		return nil, domainerrors.ErrShuttingDown
	}

	return &content, nil
}

func (s *mapService) Popup(popupID string) (*mapview.PopupContent, error) {
	content, ok := s.popups.Get(popupID)
	if !ok {
		return nil, domainerrors.ErrNotFound.WithDetails("popup " + popupID)
	}

	return &content, nil
}

func (s *mapService) ClosePopup(popupID string) {
	s.popups.Close(popupID)
}
