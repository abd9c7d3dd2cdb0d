package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"riskmonitor/config"
	"riskmonitor/internal/domain/entity"
	"riskmonitor/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// messageSender is the slice of *messaging.Client the notifier uses
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messageSender
	topic  string
	logger *slog.Logger
}

// NewAlertNotifier returns a Firebase topic notifier when credentials and a
// topic are configured, and a no-op notifier otherwise.
func NewAlertNotifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.AlertNotifier, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" || cfg.Firebase.Topic == "" {
		logger.Info("Push notifications disabled")

		return noopNotifier{}, nil
	}

	return NewFirebaseService(ctx, cfg.Firebase, logger)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.AlertNotifier, error) {
	opt := option.WithCredentialsFile(cfg.CredentialsPath)

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return newFirebaseService(client, cfg.Topic, logger), nil
}

func newFirebaseService(client messageSender, topic string, logger *slog.Logger) *firebaseService {
	return &firebaseService{
		client: client,
		topic:  topic,
		logger: logger,
	}
}

// AnnounceAlert sends the alert to every device subscribed to the topic
func (s *firebaseService) AnnounceAlert(ctx context.Context, alert *entity.Alert) error {
	message := &messaging.Message{
		Topic: s.topic,
		Notification: &messaging.Notification{
			Title: alert.Title,
			Body:  alert.Description,
		},
		Data: map[string]string{
			"alert_id":   strconv.FormatInt(alert.ID, 10),
			"risk_level": string(alert.RiskLevel),
			"lat":        strconv.FormatFloat(alert.Location.Lat, 'f', 6, 64),
			"lng":        strconv.FormatFloat(alert.Location.Lng, 'f', 6, 64),
			"radius":     strconv.FormatFloat(alert.Radius, 'f', -1, 64),
			"timestamp":  alert.Timestamp.UTC().Format(time.RFC3339),
		},
		Android: &messaging.AndroidConfig{Priority: "high"},
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	s.logger.Debug("Alert announced",
		slog.Int64("alert_id", alert.ID),
		slog.String("message_id", messageID),
	)

	return nil
}

type noopNotifier struct{}

func (noopNotifier) AnnounceAlert(context.Context, *entity.Alert) error {
	return nil
}
