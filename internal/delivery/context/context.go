// Package context carries request-scoped values between the delivery layer
// and the services: the request ID, the authenticated user and a logger
// already tagged with both.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	keyRequestID contextKey = "request_id"
	keyUserEmail contextKey = "user_email"
	keyLogger    contextKey = "logger"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request ID set by the request ID middleware, or
// an empty string outside a request.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(keyRequestID)).(string); ok {
		return id
	}

	return GetRequestIDFromContext(c.Request().Context())
}

// SetRequestID stores the request ID on both the echo and the request context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), requestID)))
}

// GetRequestIDFromContext extracts the request ID from ctx.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// SetUserEmail records the authenticated user on the echo and request
// contexts and tags the request logger with it.
func SetUserEmail(c echo.Context, email string) {
	c.Set(string(keyUserEmail), email)

	ctx := context.WithValue(c.Request().Context(), keyUserEmail, email)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user", email)))
	}
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetUserEmail returns the authenticated user, if any.
func GetUserEmail(c echo.Context) (string, bool) {
	email, ok := c.Get(string(keyUserEmail)).(string)

	return email, ok && email != ""
}

// UserEmailFromContext returns the authenticated user carried by ctx.
func UserEmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(keyUserEmail).(string)

	return email
}

// GetLogger extracts the request-scoped logger from ctx, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the request-scoped logger from ctx.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}
