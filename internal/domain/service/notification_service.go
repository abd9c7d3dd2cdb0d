package service

import (
	"context"

	"riskmonitor/internal/domain/entity"
)

// AlertNotifier pushes alert announcements to subscribed devices.
type AlertNotifier interface {
	// AnnounceAlert broadcasts a newly created alert to the configured topic
	AnnounceAlert(ctx context.Context, alert *entity.Alert) error
}
