package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"riskmonitor/internal/domain/entity"
	domainerrors "riskmonitor/internal/domain/errors"
	"riskmonitor/internal/mapview"
	mockUsecase "riskmonitor/internal/mocks/usecase"
	"riskmonitor/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMapTestHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockMapUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockMapUsecase(t)
	h := NewMapHandler(MapHandlerParams{MapUC: uc, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/map/settings", h.Settings)
	e.GET("/map/layer", h.Layer)
	e.GET("/map/layer.geojson", h.GeoJSON)
	e.GET("/map/stream", h.Stream)
	e.PATCH("/map/alerts/:id/position", h.MoveAlert)
	e.POST("/map/alerts/:id/popup", h.OpenPopup)
	e.GET("/map/popups/:popupId", h.GetPopup)
	e.DELETE("/map/popups/:popupId", h.ClosePopup)

	return e, uc
}

func TestMapHandler_Settings(t *testing.T) {
	e, uc := newMapTestHandler(t)

	uc.EXPECT().Settings().Return(usecase.MapSettings{
		Center:  florianopolis,
		Zoom:    13,
		TileURL: "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
	})

	rec := serve(e, http.MethodGet, "/map/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var settings usecase.MapSettings
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &settings))
	assert.Equal(t, 13, settings.Zoom)
	assert.Equal(t, florianopolis, settings.Center)
}

func TestMapHandler_GeoJSON(t *testing.T) {
	e, uc := newMapTestHandler(t)

	uc.EXPECT().GeoJSON(mock.Anything).Return(geojson.NewFeatureCollection())

	rec := serve(e, http.MethodGet, "/map/layer.geojson", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, rec.Body.String())
}

func TestMapHandler_MoveAlert(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		setupMocks func(*mockUsecase.MockMapUsecase)
		wantStatus int
	}{
		{
			name:   "moved",
			target: "/map/alerts/5/position",
			body:   `{"lat":-27.5969,"lng":-48.5495}`,
			setupMocks: func(uc *mockUsecase.MockMapUsecase) {
				uc.EXPECT().MoveAlert(mock.Anything, int64(5), florianopolis).
					Return(&mapview.Marker{ID: 5, Location: florianopolis}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "out of range",
			target:     "/map/alerts/5/position",
			body:       `{"lat":-27.5969,"lng":-190}`,
			setupMocks: func(*mockUsecase.MockMapUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			target:     "/map/alerts/5/position",
			body:       `{"lat":"north"}`,
			setupMocks: func(*mockUsecase.MockMapUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "unknown alert",
			target: "/map/alerts/9/position",
			body:   `{"lat":0,"lng":0}`,
			setupMocks: func(uc *mockUsecase.MockMapUsecase) {
				uc.EXPECT().MoveAlert(mock.Anything, int64(9), entity.Location{}).
					Return(nil, domainerrors.ErrAlertNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, uc := newMapTestHandler(t)
			tt.setupMocks(uc)

			rec := serve(e, http.MethodPatch, tt.target, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestMapHandler_Popups(t *testing.T) {
	e, uc := newMapTestHandler(t)

	uc.EXPECT().OpenPopup(mock.Anything, int64(5)).Return(&mapview.PopupContent{
		PopupID:      "p-1",
		AlertID:      5,
		AddressState: mapview.AddressStateLoading,
	}, nil)
	rec := serve(e, http.MethodPost, "/map/alerts/5/popup", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var popup mapview.PopupContent
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &popup))
	assert.Equal(t, "p-1", popup.PopupID)

	uc.EXPECT().Popup("missing").Return(nil, domainerrors.ErrNotFound.WithDetails("popup missing is not open"))
	rec = serve(e, http.MethodGet, "/map/popups/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	uc.EXPECT().ClosePopup("p-1").Return()
	rec = serve(e, http.MethodDelete, "/map/popups/p-1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMapHandler_Stream(t *testing.T) {
	e, uc := newMapTestHandler(t)

	updates := make(chan mapview.Update, 1)
	var cancelled atomic.Bool
	uc.EXPECT().Subscribe().Return((<-chan mapview.Update)(updates), func() { cancelled.Store(true) })
	uc.EXPECT().Layer(mock.Anything).Return(mapview.Layer{Markers: []mapview.Marker{{ID: 1}}})

	srv := httptest.NewServer(e)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/map/stream"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var msg StreamMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, StreamMessageLayer, msg.Type)
	require.NotNil(t, msg.Layer)
	assert.Len(t, msg.Layer.Markers, 1)

	updates <- mapview.Update{Removed: []int64{1}}
	msg = StreamMessage{}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, StreamMessageUpdate, msg.Type)
	require.NotNil(t, msg.Update)
	assert.Equal(t, []int64{1}, msg.Update.Removed)

	// a closed channel means the subscriber was dropped
	close(updates)
	msg = StreamMessage{}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, StreamMessageResync, msg.Type)

	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseTryAgainLater))
	assert.Eventually(t, cancelled.Load, time.Second, 10*time.Millisecond)
}
