package usecase

import (
	"context"

	"riskmonitor/internal/domain/entity"
	"riskmonitor/internal/mapview"

	"github.com/paulmach/orb/geojson"
)

// MapSettings is the initial viewport and tile source of the map.
type MapSettings struct {
	Center      entity.Location `json:"center"`
	Zoom        int             `json:"zoom"`
	TileURL     string          `json:"tileUrl"`
	Attribution string          `json:"attribution"`
	// LocalTiles is set when tiles are also served from /tiles
	LocalTiles bool `json:"localTiles"`
}

// MapUsecase serves the map's view of the alert collection. Reads come from
// the reconciled in-memory state, writes go straight to the alert repository.
type MapUsecase interface {
	Settings() MapSettings
	Layer(ctx context.Context) mapview.Layer
	GeoJSON(ctx context.Context) *geojson.FeatureCollection

	// Subscribe streams map updates until cancel is called. The channel is
	// closed when the subscriber falls behind; it must reload the layer.
	Subscribe() (<-chan mapview.Update, func())

	// MoveAlert persists a dragged marker, then applies it locally.
	MoveAlert(ctx context.Context, id int64, loc entity.Location) (*mapview.Marker, error)

	OpenPopup(ctx context.Context, alertID int64) (*mapview.PopupContent, error)
	Popup(popupID string) (*mapview.PopupContent, error)
	ClosePopup(popupID string)
}
