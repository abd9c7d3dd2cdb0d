package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"riskmonitor/config"
	"riskmonitor/internal/delivery"
	"riskmonitor/internal/delivery/middleware"
	"riskmonitor/internal/delivery/worker/handler"
	"riskmonitor/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	pushPath      = "/push"
	pushBodyLimit = "64K"
)

// workerServer accepts change events pushed by Pub/Sub subscriptions or by
// peer instances using the local HTTP publisher.
type workerServer struct {
	port   int
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the push listener on pubsub.pushPort. It is only
// provided when that port is set.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	if params.Cfg.PubSub == nil || params.Cfg.PubSub.PushPort <= 0 {
		return nil, errors.New("pubsub.pushPort must be set for the worker server")
	}

	logger := params.Logger.With(slog.String("component", "push_listener"))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, params.Cfg).Handle)
	// A change event carries only a key, an origin and a timestamp.
	e.Use(echomiddleware.BodyLimit(pushBodyLimit))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST(pushPath, params.PushHandler.HandlePush)

	srv := &workerServer{
		port:   params.Cfg.PubSub.PushPort,
		logger: logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting push listener", slog.String("hostPort", hostPort), slog.String("path", pushPath))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down push listener")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
