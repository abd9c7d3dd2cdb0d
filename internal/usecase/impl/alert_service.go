package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"riskmonitor/config"
	deliverycontext "riskmonitor/internal/delivery/context"
	"riskmonitor/internal/domain/entity"
	domainerrors "riskmonitor/internal/domain/errors"
	"riskmonitor/internal/domain/repository"
	"riskmonitor/internal/domain/service"
	"riskmonitor/internal/mapview"
	"riskmonitor/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// alertService implements the AlertUsecase interface.
type alertService struct {
	store     repository.AlertStore
	positions service.PositionProvider
	notifier  service.AlertNotifier
	qrcode    service.QRCodeService
	radius    float64
	maxRadius float64
	logger    *slog.Logger
	now       func() time.Time

	// mu serialises read-modify-write passes within this process
	mu sync.Mutex
}

// AlertServiceParams holds dependencies for AlertService, injected by Fx.
type AlertServiceParams struct {
	fx.In

	Store     repository.AlertStore
	Positions service.PositionProvider
	Notifier  service.AlertNotifier
	QRCode    service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAlertService is the constructor for alertService.
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	radius, maxRadius := 50.0, 1000.0
	if params.Config != nil && params.Config.Alerts != nil {
		radius = params.Config.Alerts.DefaultRadius
		maxRadius = params.Config.Alerts.MaxRadius
	}

	return &alertService{
		store:     params.Store,
		positions: params.Positions,
		notifier:  params.Notifier,
		qrcode:    params.QRCode,
		radius:    radius,
		maxRadius: maxRadius,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// ListAlerts returns the stored alerts in insertion order.
func (s *alertService) ListAlerts(ctx context.Context) ([]entity.Alert, error) {
	alerts, err := s.store.LoadAlerts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load alerts")
	}

	return alerts, nil
}

// GetAlert returns a single alert.
func (s *alertService) GetAlert(ctx context.Context, id int64) (*entity.Alert, error) {
	alerts, err := s.ListAlerts(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(alerts, id)
	if idx < 0 {
		return nil, domainerrors.ErrAlertNotFound
	}

	return &alerts[idx], nil
}

// CreateAlert gates creation on the device position. No lock is held while
// waiting for it.
func (s *alertService) CreateAlert(ctx context.Context, draft entity.AlertDraft) (*entity.Alert, error) {
	loc, err := s.positions.CurrentPosition(ctx)
	if err != nil {
		return nil, err
	}

	return s.CreateAlertAt(ctx, draft, loc)
}

// CreateAlertAt validates the draft and appends the alert at loc.
func (s *alertService) CreateAlertAt(ctx context.Context, draft entity.AlertDraft, loc entity.Location) (*entity.Alert, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	title, description, level, err := normalizeFields(draft.Title, draft.Description, draft.RiskLevel)
	if err != nil {
		return nil, err
	}
	if !loc.Valid() {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	alert, err := s.appendAlert(ctx, entity.Alert{
		Title:       title,
		Description: description,
		RiskLevel:   level,
		Radius:      s.radius,
		Location:    loc,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Alert created",
		slog.Int64("alert_id", alert.ID),
		slog.String("risk_level", string(alert.RiskLevel)),
	)

	if alert.RiskLevel == entity.RiskHigh {
		if err := s.notifier.AnnounceAlert(ctx, alert); err != nil {
			logger.Warn("Failed to announce high-risk alert",
				slog.Int64("alert_id", alert.ID),
				slog.Any("error", err),
			)
		}
	}

	return alert, nil
}

// appendAlert stamps id and timestamp on alert and persists it at the end of
// the collection.
func (s *alertService) appendAlert(ctx context.Context, alert entity.Alert) (*entity.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alerts, err := s.ListAlerts(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	alert.ID = nextID(alerts, now)
	alert.Timestamp = now

	if err := s.store.SaveAlerts(ctx, append(alerts, alert)); err != nil {
		return nil, errors.Wrap(err, "failed to save alerts")
	}

	return &alert, nil
}

// UpdateAlert re-validates the editable fields. Location and timestamp are
// kept unless the patch carries a location.
func (s *alertService) UpdateAlert(ctx context.Context, id int64, patch entity.AlertPatch) (*entity.Alert, error) {
	title, description, level, err := normalizeFields(patch.Title, patch.Description, patch.RiskLevel)
	if err != nil {
		return nil, err
	}
	if patch.Location != nil && !patch.Location.Valid() {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	return s.modify(ctx, id, func(alert *entity.Alert) {
		alert.Title = title
		alert.Description = description
		alert.RiskLevel = level
		if patch.Radius != nil {
			alert.Radius = entity.ClampRadius(*patch.Radius, alert.Radius, s.maxRadius)
		}
		if patch.Location != nil {
			alert.Location = *patch.Location
		}
	})
}

// RepositionAlert overwrites only the location.
func (s *alertService) RepositionAlert(ctx context.Context, id int64, loc entity.Location) (*entity.Alert, error) {
	if !loc.Valid() {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	return s.modify(ctx, id, func(alert *entity.Alert) {
		alert.Location = loc
	})
}

// DeleteAlert removes the alert; a missing id is not an error.
func (s *alertService) DeleteAlert(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	alerts, err := s.ListAlerts(ctx)
	if err != nil {
		return err
	}

	idx := indexOf(alerts, id)
	if idx < 0 {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Delete of missing alert ignored", slog.Int64("alert_id", id))

		return nil
	}

	if err := s.store.SaveAlerts(ctx, slices.Delete(alerts, idx, idx+1)); err != nil {
		return errors.Wrap(err, "failed to save alerts")
	}

	return nil
}

// AlertsAt returns the alerts whose zone contains loc.
func (s *alertService) AlertsAt(ctx context.Context, loc entity.Location) ([]entity.Alert, error) {
	if !loc.Valid() {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	alerts, err := s.ListAlerts(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]entity.Alert, 0)
	for _, alert := range alerts {
		if mapview.Contains(alert, loc) {
			matches = append(matches, alert)
		}
	}

	return matches, nil
}

// ShareCode renders the QR share code of an existing alert.
func (s *alertService) ShareCode(ctx context.Context, id int64) ([]byte, error) {
	alert, err := s.GetAlert(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcode.GenerateAlertQR(alert.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share code")
	}

	return png, nil
}

// modify applies change to one alert and persists the collection. Nothing
// is written when the alert is missing.
func (s *alertService) modify(ctx context.Context, id int64, change func(*entity.Alert)) (*entity.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alerts, err := s.ListAlerts(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(alerts, id)
	if idx < 0 {
		return nil, domainerrors.ErrAlertNotFound
	}

	change(&alerts[idx])

	if err := s.store.SaveAlerts(ctx, alerts); err != nil {
		return nil, errors.Wrap(err, "failed to save alerts")
	}

	updated := alerts[idx]

	return &updated, nil
}

// normalizeFields trims and checks the editable fields of a draft or patch.
func normalizeFields(title, description, riskLevel string) (string, string, entity.RiskLevel, error) {
	title, description, problem := entity.NormalizeAlertText(title, description)
	if problem != "" {
		return "", "", "", domainerrors.ErrValidationFailed.WithDetails(problem)
	}

	return title, description, entity.ParseRiskLevel(riskLevel), nil
}

// nextID uses the creation time in milliseconds, moved past the largest
// existing id when the clock has not advanced.
func nextID(alerts []entity.Alert, now time.Time) int64 {
	id := now.UnixMilli()
	for _, alert := range alerts {
		if alert.ID >= id {
			id = alert.ID + 1
		}
	}

	return id
}

func indexOf(alerts []entity.Alert, id int64) int {
	return slices.IndexFunc(alerts, func(a entity.Alert) bool { return a.ID == id })
}
