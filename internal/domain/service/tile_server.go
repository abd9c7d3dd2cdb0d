package service

import "context"

// Tile is a single map tile with its content headers.
type Tile struct {
	Data    []byte
	Headers map[string]string
}

// TileServer serves z/x/y tiles from a local archive.
type TileServer interface {
	Tile(ctx context.Context, z, x, y int) (*Tile, error)
}
