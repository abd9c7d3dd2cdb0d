package tiles

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskmonitor/config"
	domainerrors "riskmonitor/internal/domain/errors"
)

type fakeArchive struct {
	paths   []string
	status  int
	headers map[string]string
	data    []byte
}

func (f *fakeArchive) Get(_ context.Context, path string) (int, map[string]string, []byte) {
	f.paths = append(f.paths, path)

	return f.status, f.headers, f.data
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseSourcePath(t *testing.T) {
	tests := []struct {
		name            string
		source          string
		expectedBucket  string
		expectedPrefix  string
		expectedTileset string
	}{
		{"file:// prefix", "file:///data/tiles/saopaulo.pmtiles", "file:///data/tiles", "", "saopaulo"},
		{"local path", "/data/tiles/saopaulo.pmtiles", "file:///data/tiles", "", "saopaulo"},
		{"root path", "/saopaulo.pmtiles", "file:///", "", "saopaulo"},
		{"no extension", "/data/tiles/saopaulo", "file:///data/tiles", "", "saopaulo"},
		{"https URL", "https://example.com/tiles/saopaulo.pmtiles", "https://example.com/tiles", "", "saopaulo"},
		{"http URL with port", "http://localhost:8080/data/roads.pmtiles", "http://localhost:8080/data", "", "roads"},
		{"gs bucket root", "gs://my-bucket/saopaulo.pmtiles", "gs://my-bucket", "", "saopaulo"},
		{"gs nested", "gs://my-bucket/path/to/saopaulo.pmtiles", "gs://my-bucket", "path/to", "saopaulo"},
		{"s3 folder", "s3://my-bucket/folder/saopaulo.pmtiles", "s3://my-bucket", "folder", "saopaulo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, prefix, tileset := parseSourcePath(tt.source)
			assert.Equal(t, tt.expectedBucket, bucket, "bucket mismatch")
			assert.Equal(t, tt.expectedPrefix, prefix, "prefix mismatch")
			assert.Equal(t, tt.expectedTileset, tileset, "tileset mismatch")
		})
	}
}

func TestPMTilesServer_Tile(t *testing.T) {
	archive := &fakeArchive{
		status:  http.StatusOK,
		headers: map[string]string{"Content-Type": "application/x-protobuf"},
		data:    []byte{0x1a, 0x00},
	}
	server := newPMTilesServer(archive, "saopaulo", "mvt", discardLogger())

	tile, err := server.Tile(context.Background(), 13, 3037, 4647)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1a, 0x00}, tile.Data)
	assert.Equal(t, "application/x-protobuf", tile.Headers["Content-Type"])
	assert.Equal(t, []string{"/saopaulo/13/3037/4647.mvt"}, archive.paths)
}

func TestPMTilesServer_TileMissing(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusNoContent} {
		server := newPMTilesServer(&fakeArchive{status: status}, "saopaulo", "png", discardLogger())

		_, err := server.Tile(context.Background(), 1, 0, 0)
		assert.ErrorIs(t, err, domainerrors.ErrTileNotFound)
	}
}

func TestPMTilesServer_TileOutOfRange(t *testing.T) {
	archive := &fakeArchive{status: http.StatusOK}
	server := newPMTilesServer(archive, "saopaulo", "mvt", discardLogger())

	for _, zxy := range [][3]int{{0, 1, 0}, {2, 4, 0}, {2, 0, -1}, {-1, 0, 0}} {
		_, err := server.Tile(context.Background(), zxy[0], zxy[1], zxy[2])
		assert.ErrorIs(t, err, domainerrors.ErrTileNotFound)
	}
	assert.Empty(t, archive.paths)
}

func TestPMTilesServer_UnexpectedStatus(t *testing.T) {
	server := newPMTilesServer(&fakeArchive{status: http.StatusBadGateway}, "saopaulo", "mvt", discardLogger())

	_, err := server.Tile(context.Background(), 0, 0, 0)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrTileNotFound)
}

func TestNewTileServer_Disabled(t *testing.T) {
	svc, err := NewTileServer(Params{Config: &config.Config{}, Logger: discardLogger()})
	require.NoError(t, err)

	_, err = svc.Tile(context.Background(), 0, 0, 0)
	assert.ErrorIs(t, err, domainerrors.ErrTileNotFound)
}

func TestNewTileServer_MissingSource(t *testing.T) {
	cfg := &config.Config{PMTiles: &config.PMTilesConfig{Enabled: true}}

	svc, err := NewTileServer(Params{Config: cfg, Logger: discardLogger()})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "source is required")
}
