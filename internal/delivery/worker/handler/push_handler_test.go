package handler

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"riskmonitor/internal/domain/service"
	"riskmonitor/internal/infra/pubsub"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

const testOrigin = service.InstanceID("instance-a")

func newPushTestHandler(t *testing.T, audience string, validate tokenValidator) (*PushHandler, <-chan service.ChangeEvent) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	feed := pubsub.NewHub(logger)
	events, cancel := feed.Subscribe()
	t.Cleanup(cancel)

	return &PushHandler{
		audience: audience,
		validate: validate,
		relay:    pubsub.NewRelay(feed, testOrigin, logger),
		logger:   logger,
	}, events
}

func pushRequest(t *testing.T, event *service.ChangeEvent, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	body, err := pubsub.EncodePushMessage(event)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestPushHandler_ForwardsRemoteChange(t *testing.T) {
	h, events := newPushTestHandler(t, "", nil)

	c, rec := pushRequest(t, &service.ChangeEvent{Key: "alerts", Origin: "instance-b", OccurredAt: time.Now()}, "")
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	select {
	case event := <-events:
		assert.Equal(t, "alerts", event.Key)
		assert.Equal(t, "instance-b", event.Origin)
	case <-time.After(time.Second):
		t.Fatal("change event was not broadcast")
	}
}

func TestPushHandler_SkipsOwnOrigin(t *testing.T) {
	h, events := newPushTestHandler(t, "", nil)

	c, rec := pushRequest(t, &service.ChangeEvent{Key: "alerts", Origin: string(testOrigin)}, "")
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	select {
	case event := <-events:
		t.Fatalf("own change echoed back: %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPushHandler_AcksUndecodableMessage(t *testing.T) {
	h, events := newPushTestHandler(t, "", nil)

	req := httptest.NewRequest(http.MethodPost, "/push",
		bytes.NewReader([]byte(`{"message":{"data":"%%not-base64%%","messageId":"1"}}`)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(echo.New().NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, events)

	c, rec := pushRequest(t, &service.ChangeEvent{Origin: "instance-b"}, "")
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, events)
}

func TestPushHandler_VerifiesToken(t *testing.T) {
	validate := func(_ *http.Request, token, audience string) (*idtoken.Payload, error) {
		if audience != "https://alerts.example.com/push" {
			return nil, errors.New("unexpected audience")
		}

		switch token {
		case "good":
			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		case "wrong-issuer":
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		case "unverified":
			return &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}}, nil
		default:
			return nil, errors.New("bad signature")
		}
	}

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
	}{
		{name: "valid", authorization: "Bearer good", wantStatus: http.StatusOK},
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", authorization: "Basic good", wantStatus: http.StatusUnauthorized},
		{name: "bad signature", authorization: "Bearer forged", wantStatus: http.StatusUnauthorized},
		{name: "wrong issuer", authorization: "Bearer wrong-issuer", wantStatus: http.StatusUnauthorized},
		{name: "email not verified", authorization: "Bearer unverified", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newPushTestHandler(t, "https://alerts.example.com/push", validate)

			c, rec := pushRequest(t, &service.ChangeEvent{Key: "alerts", Origin: "instance-b"}, tt.authorization)
			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
