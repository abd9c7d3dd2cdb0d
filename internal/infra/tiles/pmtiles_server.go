// Package tiles serves map tiles from a PMTiles archive.
package tiles

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"riskmonitor/config"
	domainerrors "riskmonitor/internal/domain/errors"
	"riskmonitor/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/protomaps/go-pmtiles/pmtiles"
	"go.uber.org/fx"
)

const (
	tileCacheSize = 64
	maxZoom       = 30
)

// archive is the part of *pmtiles.Server the tile server reads through
type archive interface {
	Get(ctx context.Context, path string) (int, map[string]string, []byte)
}

type pmtilesServer struct {
	archive     archive
	tilesetName string
	tileType    string
	logger      *slog.Logger
}

// Params holds dependencies for the PMTiles tile server
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewTileServer opens the configured archive, or returns a server that
// reports every tile as missing when none is configured.
func NewTileServer(params Params) (service.TileServer, error) {
	cfg := params.Config.PMTiles
	logger := params.Logger

	if cfg == nil || !cfg.Enabled {
		logger.Info("PMTiles tile proxy disabled")

		return disabledServer{}, nil
	}

	if cfg.Source == "" {
		return nil, errors.New("PMTiles source is required when enabled")
	}

	bucketPath, prefix, tilesetName := parseSourcePath(cfg.Source)

	// pmtiles requires a *log.Logger; its request logging is not needed here
	silentLogger := log.New(io.Discard, "", 0)

	server, err := pmtiles.NewServer(bucketPath, prefix, silentLogger, tileCacheSize, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PMTiles server")
	}

	server.Start()

	logger.Info("PMTiles tile proxy initialized",
		slog.String("source", cfg.Source),
		slog.String("tileset", tilesetName),
		slog.String("tile_type", cfg.TileType),
	)

	return newPMTilesServer(server, tilesetName, cfg.TileType, logger), nil
}

func newPMTilesServer(archive archive, tilesetName, tileType string, logger *slog.Logger) *pmtilesServer {
	return &pmtilesServer{
		archive:     archive,
		tilesetName: tilesetName,
		tileType:    tileType,
		logger:      logger,
	}
}

// Tile reads one tile. Missing tiles map to ErrTileNotFound.
func (s *pmtilesServer) Tile(ctx context.Context, z, x, y int) (*service.Tile, error) {
	if z < 0 || z > maxZoom || x < 0 || y < 0 || x >= 1<<z || y >= 1<<z {
		return nil, domainerrors.ErrTileNotFound.WithDetails(fmt.Sprintf("tile %d/%d/%d is out of range", z, x, y))
	}

	// Format: /{tileset}/{z}/{x}/{y}.{ext}
	tilePath := fmt.Sprintf("/%s/%d/%d/%d.%s", s.tilesetName, z, x, y, s.tileType)

	statusCode, headers, data := s.archive.Get(ctx, tilePath)

	switch {
	case statusCode == http.StatusOK:
		return &service.Tile{Data: data, Headers: headers}, nil
	case statusCode == http.StatusNotFound || statusCode == http.StatusNoContent:
		return nil, domainerrors.ErrTileNotFound
	default:
		s.logger.Warn("Unexpected PMTiles status",
			slog.String("path", tilePath),
			slog.Int("status", statusCode),
		)

		return nil, errors.Errorf("unexpected status code: %d", statusCode)
	}
}

type disabledServer struct{}

func (disabledServer) Tile(context.Context, int, int, int) (*service.Tile, error) {
	return nil, domainerrors.ErrTileNotFound
}

// parseSourcePath splits a source into the bucket URL, the key prefix inside
// the bucket and the tileset name.
// Examples:
//   - "file:///path/to/saopaulo.pmtiles" -> ("file:///path/to", "", "saopaulo")
//   - "/path/to/saopaulo.pmtiles" -> ("file:///path/to", "", "saopaulo")
//   - "https://example.com/tiles/saopaulo.pmtiles" -> ("https://example.com/tiles", "", "saopaulo")
//   - "gs://bucket/path/saopaulo.pmtiles" -> ("gs://bucket", "path", "saopaulo")
func parseSourcePath(source string) (bucketPath, prefix, tilesetName string) {
	if strings.HasPrefix(source, "file://") {
		path := strings.TrimPrefix(source, "file://")

		return "file://" + filepath.Dir(path), "", tilesetFromFile(path)
	}

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		lastSlash := strings.LastIndex(source, "/")

		return source[:lastSlash], "", strings.TrimSuffix(source[lastSlash+1:], ".pmtiles")
	}

	if scheme, rest, ok := strings.Cut(source, "://"); ok {
		bucket, key, _ := strings.Cut(rest, "/")
		dir := ""
		if idx := strings.LastIndex(key, "/"); idx >= 0 {
			dir = key[:idx]
		}

		return scheme + "://" + bucket, dir, tilesetFromFile(key)
	}

	return "file://" + filepath.Dir(source), "", tilesetFromFile(source)
}

func tilesetFromFile(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".pmtiles")
}
