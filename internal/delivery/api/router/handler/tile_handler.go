package handler

import (
	"net/http"
	"strconv"
	"strings"

	"riskmonitor/config"
	"riskmonitor/internal/delivery/api/response"
	"riskmonitor/internal/domain/constants"
	"riskmonitor/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TileHandlerParams holds dependencies for TileHandler, injected by Fx.
type TileHandlerParams struct {
	fx.In

	Tiles  service.TileServer
	Config *config.Config
}

// TileHandler proxies z/x/y tiles from the local archive
type TileHandler struct {
	tiles       service.TileServer
	attribution string
}

// NewTileHandler creates a new TileHandler
func NewTileHandler(params TileHandlerParams) *TileHandler {
	attribution := ""
	if params.Config != nil && params.Config.Map != nil {
		attribution = params.Config.Map.Attribution
	}

	return &TileHandler{tiles: params.Tiles, attribution: attribution}
}

// Tile serves one tile with the archive's content headers
func (h *TileHandler) Tile(c echo.Context) error {
	z, errZ := strconv.Atoi(c.Param("z"))
	x, errX := strconv.Atoi(c.Param("x"))
	// y may carry the tile extension, e.g. 12.mvt
	rawY, _, _ := strings.Cut(c.Param("y"), ".")
	y, errY := strconv.Atoi(rawY)
	if errZ != nil || errX != nil || errY != nil {
		return response.BadRequest(c, "INVALID_TILE", "Tile coordinates must be integers")
	}

	tile, err := h.tiles.Tile(c.Request().Context(), z, x, y)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	header := c.Response().Header()
	for key, value := range tile.Headers {
		header.Set(key, value)
	}
	if h.attribution != "" {
		header.Set(constants.HeaderTileAttribution, h.attribution)
	}

	contentType := header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	return c.Blob(http.StatusOK, contentType, tile.Data)
}
