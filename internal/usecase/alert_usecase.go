package usecase

import (
	"context"

	"riskmonitor/internal/domain/entity"
)

// --- Input DTOs ---

// PositionInput is a device fix reported by the client.
type PositionInput struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

// Location converts the input into a domain location.
func (p PositionInput) Location() entity.Location {
	return entity.Location{Lat: p.Lat, Lng: p.Lng}
}

// CreateAlertInput is the create form. Position is optional; without it the
// fix must come from the request's geolocation headers.
type CreateAlertInput struct {
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description" validate:"required"`
	RiskLevel   string         `json:"riskLevel"`
	Position    *PositionInput `json:"position,omitempty" validate:"omitempty"`
}

// Draft converts the form into a domain draft.
func (in CreateAlertInput) Draft() entity.AlertDraft {
	return entity.AlertDraft{Title: in.Title, Description: in.Description, RiskLevel: in.RiskLevel}
}

// UpdateAlertInput is the edit form.
type UpdateAlertInput struct {
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description" validate:"required"`
	RiskLevel   string         `json:"riskLevel"`
	Radius      *float64       `json:"radius,omitempty"`
	Position    *PositionInput `json:"position,omitempty" validate:"omitempty"`
}

// Patch converts the form into a domain patch.
func (in UpdateAlertInput) Patch() entity.AlertPatch {
	patch := entity.AlertPatch{
		Title:       in.Title,
		Description: in.Description,
		RiskLevel:   in.RiskLevel,
		Radius:      in.Radius,
	}
	if in.Position != nil {
		loc := in.Position.Location()
		patch.Location = &loc
	}

	return patch
}

// AlertUsecase owns validated read/write access to the alert collection.
// Every mutation rewrites the whole persisted collection.
type AlertUsecase interface {
	// ListAlerts returns alerts in insertion order, read fresh from storage.
	ListAlerts(ctx context.Context) ([]entity.Alert, error)
	GetAlert(ctx context.Context, id int64) (*entity.Alert, error)

	// CreateAlert acquires the device position first and fails without
	// writing when geolocation fails.
	CreateAlert(ctx context.Context, draft entity.AlertDraft) (*entity.Alert, error)
	CreateAlertAt(ctx context.Context, draft entity.AlertDraft, loc entity.Location) (*entity.Alert, error)

	UpdateAlert(ctx context.Context, id int64, patch entity.AlertPatch) (*entity.Alert, error)
	// DeleteAlert is idempotent.
	DeleteAlert(ctx context.Context, id int64) error
	RepositionAlert(ctx context.Context, id int64, loc entity.Location) (*entity.Alert, error)

	// AlertsAt returns the alerts whose zone contains loc.
	AlertsAt(ctx context.Context, loc entity.Location) ([]entity.Alert, error)
	// ShareCode renders a PNG QR code for an existing alert.
	ShareCode(ctx context.Context, id int64) ([]byte, error)
}
