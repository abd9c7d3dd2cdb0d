package middleware

import (
	"log/slog"

	deliverycontext "riskmonitor/internal/delivery/context"
	"riskmonitor/internal/domain/constants"
	domainerrors "riskmonitor/internal/domain/errors"
	"riskmonitor/internal/infra/geolocation"

	"github.com/labstack/echo/v4"
)

// GeolocationMiddleware moves the client's device fix, or the reason it has
// none, from request headers onto the request context.
type GeolocationMiddleware struct {
	logger *slog.Logger
}

// NewGeolocationMiddleware creates a new geolocation middleware
func NewGeolocationMiddleware(logger *slog.Logger) *GeolocationMiddleware {
	return &GeolocationMiddleware{logger: logger}
}

// Process attaches the fix. A failure header wins over a position header.
func (m *GeolocationMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx := req.Context()

		if code := req.Header.Get(constants.HeaderGeolocationError); code != "" {
			ctx = geolocation.WithFailure(ctx, geolocation.ParseFailure(code))
		} else if raw := req.Header.Get(constants.HeaderGeolocation); raw != "" {
			loc, err := geolocation.ParseHeader(raw)
			if err != nil {
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Ignoring malformed geolocation header",
					slog.String("value", raw),
					slog.Any("error", err),
				)
				ctx = geolocation.WithFailure(ctx, domainerrors.ErrPositionUnavailable.WithDetails("malformed position"))
			} else {
				ctx = geolocation.WithPosition(ctx, loc)
			}
		}

		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}
