package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"riskmonitor/internal/domain/constants"
	"riskmonitor/internal/domain/entity"
	"riskmonitor/internal/mocks/repository"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAlertStore_LoadAbsentOrMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		seed  *string
		count int
	}{
		{name: "absent"},
		{name: "empty", seed: ptr("")},
		{name: "malformed", seed: ptr("{not json")},
		{name: "wrong shape", seed: ptr(`{"id":1}`)},
		{name: "null", seed: ptr("null")},
		{name: "one alert", seed: ptr(`[{"id":1,"title":"Flood","description":"River","riskLevel":"high","radius":50,"location":{"lat":1,"lng":2}}]`), count: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			kv := NewMemoryStore()
			if tt.seed != nil {
				require.NoError(t, kv.Set(ctx, constants.KeyAlerts, []byte(*tt.seed)))
			}

			alerts, err := NewAlertStore(kv, discardLogger()).LoadAlerts(ctx)
			require.NoError(t, err)
			assert.NotNil(t, alerts)
			assert.Len(t, alerts, tt.count)
		})
	}
}

func TestAlertStore_SaveThenLoad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewAlertStore(NewMemoryStore(), discardLogger())

	want := []entity.Alert{{
		ID:          1714564800000,
		Title:       "Flood Risk",
		Description: "River overflow",
		RiskLevel:   entity.RiskHigh,
		Radius:      50,
		Location:    entity.Location{Lat: -23.5, Lng: -46.6},
		Timestamp:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}}

	require.NoError(t, store.SaveAlerts(ctx, want))

	got, err := store.LoadAlerts(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, store.SaveAlerts(ctx, nil))
	got, err = store.LoadAlerts(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAlertStore_BackendFailure(t *testing.T) {
	t.Parallel()

	kv := repository.NewMockKeyValueStore(t)
	kv.EXPECT().Get(mock.Anything, constants.KeyAlerts).Return(nil, false, assert.AnError)

	_, err := NewAlertStore(kv, discardLogger()).LoadAlerts(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestUserStore_CurrentUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := NewMemoryStore()
	store := NewUserStore(kv, discardLogger())

	current, err := store.LoadCurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	user := &entity.User{Name: "Ana", Email: "ana@example.com"}
	require.NoError(t, store.SaveCurrentUser(ctx, user))

	current, err = store.LoadCurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, *user, *current)

	require.NoError(t, store.ClearCurrentUser(ctx))
	current, err = store.LoadCurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	require.NoError(t, kv.Set(ctx, constants.KeyCurrentUser, []byte("garbage")))
	current, err = store.LoadCurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestUserStore_Users(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewUserStore(NewMemoryStore(), discardLogger())

	users, err := store.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	want := []entity.User{{Name: "Ana", Email: "ana@example.com", Password: "hash"}}
	require.NoError(t, store.SaveUsers(ctx, want))

	users, err = store.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, users)
}

func ptr[T any](v T) *T {
	return &v
}

func TestAlertStore_LoadSkipsDamagedRecords(t *testing.T) {
	t.Parallel()

	good := `{"id":1,"title":"Flood","description":"River","riskLevel":"high","radius":50,"location":{"lat":1,"lng":2}}`

	tests := []struct {
		name    string
		damaged string
	}{
		{name: "null element", damaged: `null`},
		{name: "radius as text", damaged: `{"id":2,"title":"t","description":"d","riskLevel":"low","radius":"30"}`},
		{name: "unparseable timestamp", damaged: `{"id":2,"title":"t","description":"d","riskLevel":"low","timestamp":"yesterday"}`},
		{name: "empty title", damaged: `{"id":2,"title":"","description":"d","riskLevel":"low"}`},
		{name: "unknown risk level", damaged: `{"id":2,"title":"t","description":"d","riskLevel":"extreme"}`},
		{name: "missing id", damaged: `{"title":"t","description":"d","riskLevel":"low"}`},
		{name: "scalar element", damaged: `7`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			kv := NewMemoryStore()
			require.NoError(t, kv.Set(ctx, constants.KeyAlerts, []byte("["+tt.damaged+","+good+"]")))

			alerts, err := NewAlertStore(kv, discardLogger()).LoadAlerts(ctx)
			require.NoError(t, err)
			require.Len(t, alerts, 1)
			assert.Equal(t, int64(1), alerts[0].ID)
			assert.True(t, alerts[0].Valid())
		})
	}
}

func TestUserStore_LoadSkipsNullUsers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := NewMemoryStore()
	require.NoError(t, kv.Set(ctx, constants.KeyUsers, []byte(`[null,{"name":"Ana","email":"ana@example.com","password":"hash"}]`)))

	users, err := NewUserStore(kv, discardLogger()).LoadUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ana@example.com", users[0].Email)
}
