package service

import (
	"context"

	"riskmonitor/internal/domain/entity"
)

// PositionProvider yields the device's current coordinates. A single shot
// with no retry; failures are ErrPermissionDenied or ErrPositionUnavailable.
type PositionProvider interface {
	CurrentPosition(ctx context.Context) (entity.Location, error)
}
