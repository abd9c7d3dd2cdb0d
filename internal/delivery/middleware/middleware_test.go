package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"riskmonitor/config"
	deliverycontext "riskmonitor/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantKept bool
	}{
		{name: "generated when absent", incoming: ""},
		{name: "client id kept", incoming: "peer-7f3a", wantKept: true},
		{name: "oversized id replaced", incoming: strings.Repeat("a", 65)},
		{name: "control characters replaced", incoming: "abc\ninjected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger()
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/alerts", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var fromCtx string
			err := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
				ctx := c.Request().Context()
				fromCtx = deliverycontext.GetRequestIDFromContext(ctx)
				deliverycontext.GetLoggerOrDefault(ctx, nil).Info("inside")

				return nil
			})(c)
			require.NoError(t, err)

			id := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, id)
			assert.Equal(t, id, fromCtx)
			assert.Equal(t, id, deliverycontext.GetRequestID(c))
			assert.Contains(t, buf.String(), "request_id="+id)
			if tt.wantKept {
				assert.Equal(t, tt.incoming, id)
			} else {
				assert.NotEqual(t, tt.incoming, id)
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		path    string
		status  int
		wantLog bool
	}{
		{name: "debug logs success", debug: true, path: "/api/v1/alerts", status: http.StatusOK, wantLog: true},
		{name: "quiet route skipped", debug: true, path: "/tiles/1/0/0", status: http.StatusOK},
		{name: "quiet route failure logged", debug: true, path: "/tiles/1/0/0", status: http.StatusNotFound, wantLog: true},
		{name: "production skips success", path: "/api/v1/alerts", status: http.StatusOK},
		{name: "production logs server errors", path: "/api/v1/alerts", status: http.StatusBadGateway, wantLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger()
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, tt.path+"?token=secret", nil)
			c := e.NewContext(req, httptest.NewRecorder())

			err := NewLoggerMiddleware(logger, cfg).Handle(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})(c)
			require.NoError(t, err)

			if tt.wantLog {
				assert.Contains(t, buf.String(), "HTTP Request")
				assert.NotContains(t, buf.String(), "secret")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestLoggerMiddleware_UnhandledError(t *testing.T) {
	logger, buf := newBufferLogger()
	cfg := &config.Config{}

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/alerts", nil), httptest.NewRecorder())

	err := NewLoggerMiddleware(logger, cfg).Handle(func(echo.Context) error {
		return assert.AnError
	})(c)

	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, buf.String(), "status=500")
}
