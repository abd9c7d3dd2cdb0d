package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogPoolWaits(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	tests := []struct {
		name string
		cur  sql.DBStats
		want string
	}{
		{name: "no new waits", cur: prev, want: ""},
		{name: "short waits", cur: sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond}, want: "level=DEBUG"},
		{name: "long waits", cur: sql.DBStats{WaitCount: 11, WaitDuration: 2 * time.Second}, want: "level=WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			logPoolWaits(context.Background(), logger, prev, tt.cur)

			if tt.want == "" {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "kv store waited for a connection")
		})
	}
}

func TestWatchPool_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		watchPool(ctx, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), func() sql.DBStats { return sql.DBStats{} }, time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watchPool did not return after cancel")
	}
}
