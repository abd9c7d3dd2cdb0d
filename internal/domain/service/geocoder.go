package service

import (
	"context"

	"riskmonitor/internal/domain/entity"
)

// ReverseGeocoder turns coordinates into a structured address.
type ReverseGeocoder interface {
	Reverse(ctx context.Context, loc entity.Location) (*entity.Place, error)
}
