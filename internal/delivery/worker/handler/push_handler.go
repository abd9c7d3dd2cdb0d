package handler

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"riskmonitor/config"
	deliverycontext "riskmonitor/internal/delivery/context"
	"riskmonitor/internal/domain/service"
	"riskmonitor/internal/infra/pubsub"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator checks a Google-signed OIDC token against an audience
type tokenValidator func(req *http.Request, token, audience string) (*idtoken.Payload, error)

// PushHandler receives storage change events pushed by peer instances or by
// Google Pub/Sub push subscriptions
type PushHandler struct {
	audience string
	validate tokenValidator
	relay    *pubsub.Relay
	logger   *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Relay  *pubsub.Relay
	Logger *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler. Tokens are verified
// only when an audience is configured.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	audience := ""
	if params.Config != nil && params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		audience: audience,
		validate: func(req *http.Request, token, audience string) (*idtoken.Payload, error) {
			return idtoken.Validate(req.Context(), token, audience)
		},
		relay:  params.Relay,
		logger: params.Logger,
	}
}

// HandlePush handles incoming Pub/Sub push messages. Malformed messages are
// acknowledged so they are not redelivered forever.
func (h *PushHandler) HandlePush(c echo.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	if h.audience != "" {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PubSubPushMessage
	if err := c.Bind(&pushMsg); err != nil {
		logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := decodeChangeEvent(&pushMsg)
	if err != nil {
		logger.Warn("[Worker] Dropping undecodable change event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	accepted := h.relay.Forward(*event)
	logger.Debug("[Worker] Change event received",
		slog.String("key", event.Key),
		slog.String("origin", event.Origin),
		slog.Bool("accepted", accepted),
	)

	return c.NoContent(http.StatusOK)
}

func decodeChangeEvent(pushMsg *pubsub.PubSubPushMessage) (*service.ChangeEvent, error) {
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event service.ChangeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse change event")
	}
	if event.Key == "" {
		return nil, errors.New("change event without key")
	}

	return &event, nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	payload, err := h.validate(req, token, h.audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
