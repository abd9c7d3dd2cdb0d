package handler

import (
	"log/slog"
	"net/http"
	"time"

	"riskmonitor/internal/delivery/api/response"
	"riskmonitor/internal/delivery/api/validator"
	deliverycontext "riskmonitor/internal/delivery/context"
	"riskmonitor/internal/mapview"
	"riskmonitor/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 512
)

// Stream message types
const (
	StreamMessageLayer  = "layer"
	StreamMessageUpdate = "update"
	// StreamMessageResync tells a client it fell behind and must reconnect
	StreamMessageResync = "resync"
)

// StreamMessage is one frame of the map stream
type StreamMessage struct {
	Type   string          `json:"type"`
	Layer  *mapview.Layer  `json:"layer,omitempty"`
	Update *mapview.Update `json:"update,omitempty"`
}

// MapHandlerParams holds dependencies for MapHandler, injected by Fx.
type MapHandlerParams struct {
	fx.In

	MapUC  usecase.MapUsecase
	Logger *slog.Logger
}

// MapHandler serves the map layer, its live stream and popups
type MapHandler struct {
	mapUC    usecase.MapUsecase
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewMapHandler is the constructor for MapHandler
func NewMapHandler(params MapHandlerParams) *MapHandler {
	return &MapHandler{
		mapUC:  params.MapUC,
		logger: params.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				// streams authenticate with the token query parameter
				return true
			},
		},
	}
}

// Settings returns the initial viewport and tile source
func (h *MapHandler) Settings(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.mapUC.Settings())
}

// Layer returns markers and zones
func (h *MapHandler) Layer(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.mapUC.Layer(c.Request().Context()))
}

// GeoJSON returns the layer as a bare FeatureCollection for map libraries
func (h *MapHandler) GeoJSON(c echo.Context) error {
	return c.JSON(http.StatusOK, h.mapUC.GeoJSON(c.Request().Context()))
}

// MoveAlert persists a dragged marker
func (h *MapHandler) MoveAlert(c echo.Context) error {
	id, err := parseAlertID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	loc, err := bindPosition(c)
	if err != nil {
		if fields := validator.FieldErrors(err); fields != nil {
			return response.ValidationFailed(c, fields)
		}

		return response.BindingError(c, "INVALID_INPUT", "Invalid position input")
	}

	marker, err := h.mapUC.MoveAlert(c.Request().Context(), id, loc)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, marker)
}

// OpenPopup renders an alert popup and starts its address lookup
func (h *MapHandler) OpenPopup(c echo.Context) error {
	id, err := parseAlertID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	popup, err := h.mapUC.OpenPopup(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, popup)
}

// GetPopup polls a popup until its address resolves
func (h *MapHandler) GetPopup(c echo.Context) error {
	popup, err := h.mapUC.Popup(c.Param("popupId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, popup)
}

// ClosePopup dismisses a popup and drops its pending lookup
func (h *MapHandler) ClosePopup(c echo.Context) error {
	h.mapUC.ClosePopup(c.Param("popupId"))

	return c.NoContent(http.StatusNoContent)
}

// Stream upgrades to a websocket that first sends the full layer, then one
// frame per map update.
func (h *MapHandler) Stream(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	// Subscribe before the snapshot so no update falls in between
	updates, cancel := h.mapUC.Subscribe()
	defer cancel()

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// the upgrader already wrote the error response
		logger.Warn("Failed to upgrade map stream", slog.Any("error", err))

		return nil
	}
	defer conn.Close()

	closed := make(chan struct{})
	go readPump(conn, closed)

	layer := h.mapUC.Layer(ctx)
	if err := writeFrame(conn, StreamMessage{Type: StreamMessageLayer, Layer: &layer}); err != nil {
		return nil
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return nil
		case update, ok := <-updates:
			if !ok {
				logger.Debug("Map stream subscriber fell behind")
				_ = writeFrame(conn, StreamMessage{Type: StreamMessageResync})
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseTryAgainLater, StreamMessageResync),
					time.Now().Add(writeWait))

				return nil
			}
			if err := writeFrame(conn, StreamMessage{Type: StreamMessageUpdate, Update: &update}); err != nil {
				return nil
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return nil
			}
		}
	}
}

func writeFrame(conn *websocket.Conn, msg StreamMessage) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return conn.WriteJSON(msg)
}

// readPump discards client frames and reports when the peer goes away
func readPump(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
