// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"riskmonitor/internal/delivery/api/middleware"
	"riskmonitor/internal/delivery/api/router/handler"
	workerhandler "riskmonitor/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler           *handler.AuthHandler
	AlertHandler          *handler.AlertHandler
	MapHandler            *handler.MapHandler
	WeatherHandler        *handler.WeatherHandler
	TileHandler           *handler.TileHandler
	PushHandler           *workerhandler.PushHandler
	AuthMiddleware        *middleware.AuthMiddleware
	GeolocationMiddleware *middleware.GeolocationMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler           *handler.AuthHandler
	alertHandler          *handler.AlertHandler
	mapHandler            *handler.MapHandler
	weatherHandler        *handler.WeatherHandler
	tileHandler           *handler.TileHandler
	pushHandler           *workerhandler.PushHandler
	authMiddleware        *middleware.AuthMiddleware
	geolocationMiddleware *middleware.GeolocationMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:           params.AuthHandler,
		alertHandler:          params.AlertHandler,
		mapHandler:            params.MapHandler,
		weatherHandler:        params.WeatherHandler,
		tileHandler:           params.TileHandler,
		pushHandler:           params.PushHandler,
		authMiddleware:        params.AuthMiddleware,
		geolocationMiddleware: params.GeolocationMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Tiles are public so map libraries can fetch them without headers
	e.GET("/tiles/:z/:x/:y", r.tileHandler.Tile)

	// Change notifications from peer instances
	e.POST("/internal/pubsub/push", r.pushHandler.HandlePush)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/session", r.authHandler.Session)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication
	apiV1.Use(r.geolocationMiddleware.Process)

	alertsGroup := apiV1.Group("/alerts")
	{
		alertsGroup.GET("", r.alertHandler.ListAlerts)
		alertsGroup.POST("", r.alertHandler.CreateAlert)
		alertsGroup.GET("/nearby", r.alertHandler.NearbyAlerts)
		alertsGroup.GET("/:id", r.alertHandler.GetAlert)
		alertsGroup.PUT("/:id", r.alertHandler.UpdateAlert)
		alertsGroup.DELETE("/:id", r.alertHandler.DeleteAlert)
		alertsGroup.GET("/:id/qr", r.alertHandler.ShareCode)
	}

	mapGroup := apiV1.Group("/map")
	{
		mapGroup.GET("/settings", r.mapHandler.Settings)
		mapGroup.GET("/layer", r.mapHandler.Layer)
		mapGroup.GET("/layer.geojson", r.mapHandler.GeoJSON)
		mapGroup.GET("/stream", r.mapHandler.Stream)
		mapGroup.PATCH("/alerts/:id/position", r.mapHandler.MoveAlert)
		mapGroup.POST("/alerts/:id/popup", r.mapHandler.OpenPopup)
		mapGroup.GET("/popups/:popupId", r.mapHandler.GetPopup)
		mapGroup.DELETE("/popups/:popupId", r.mapHandler.ClosePopup)
	}

	apiV1.GET("/weather", r.weatherHandler.CurrentWeather)
}
