package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"riskmonitor/config"
	"riskmonitor/internal/delivery/api/response"
	"riskmonitor/internal/delivery/api/validator"
	"riskmonitor/internal/domain/entity"
	"riskmonitor/internal/infra/geolocation"
	"riskmonitor/internal/mapview"
	"riskmonitor/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// AlertHandler serves the alert list and the create/edit forms
type AlertHandler struct {
	alertUC  usecase.AlertUsecase
	timezone *time.Location
	logger   *slog.Logger
	now      func() time.Time
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	timezone := time.UTC
	if params.Config != nil && params.Config.Map != nil {
		timezone = mapview.ResolveTimezone(params.Config.Map.Timezone, params.Logger)
	}

	return &AlertHandler{
		alertUC:  params.AlertUC,
		timezone: timezone,
		logger:   params.Logger,
		now:      time.Now,
	}
}

// ListAlerts returns every alert in insertion order with its list decoration
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	alerts, err := h.alertUC.ListAlerts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapview.BuildList(alerts, h.timezone, h.now()))
}

// CreateAlert handles the create form. A position in the body stands in for
// the geolocation headers.
func (h *AlertHandler) CreateAlert(c echo.Context) error {
	var req usecase.CreateAlertInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	ctx := c.Request().Context()
	if req.Position != nil {
		ctx = geolocation.WithPosition(ctx, req.Position.Location())
	}

	alert, err := h.alertUC.CreateAlert(ctx, req.Draft())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, alert)
}

// GetAlert returns a single alert
func (h *AlertHandler) GetAlert(c echo.Context) error {
	id, err := parseAlertID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	alert, err := h.alertUC.GetAlert(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alert)
}

// UpdateAlert handles the edit form
func (h *AlertHandler) UpdateAlert(c echo.Context) error {
	id, err := parseAlertID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	var req usecase.UpdateAlertInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	alert, err := h.alertUC.UpdateAlert(c.Request().Context(), id, req.Patch())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alert)
}

// DeleteAlert removes an alert; deleting twice succeeds
func (h *AlertHandler) DeleteAlert(c echo.Context) error {
	id, err := parseAlertID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	if err := h.alertUC.DeleteAlert(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// NearbyAlerts returns the alerts whose zone covers the lat/lng query point
func (h *AlertHandler) NearbyAlerts(c echo.Context) error {
	var req usecase.PositionInput
	if err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &req.Lat).
		MustFloat64("lng", &req.Lng).
		BindError(); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lat and lng query parameters are required")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	alerts, err := h.alertUC.AlertsAt(c.Request().Context(), req.Location())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapview.BuildList(alerts, h.timezone, h.now()))
}

// ShareCode returns the alert's QR share code as a PNG
func (h *AlertHandler) ShareCode(c echo.Context) error {
	id, err := parseAlertID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	png, err := h.alertUC.ShareCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func parseAlertID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// bindPosition reads and validates a {lat, lng} body
func bindPosition(c echo.Context) (entity.Location, error) {
	var req usecase.PositionInput
	if err := c.Bind(&req); err != nil {
		return entity.Location{}, err
	}

	if err := c.Validate(&req); err != nil {
		return entity.Location{}, err
	}

	return req.Location(), nil
}
