package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"riskmonitor/config"
	deliverycontext "riskmonitor/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), &buf
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return `SELECT * FROM "kv_entries" WHERE key = ?`, 1 }

	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		want    string
		wantNot string
	}{
		{name: "failure", begin: time.Now(), err: errors.New("connection reset"), want: "GORM query failed"},
		{name: "missing row is not a failure", begin: time.Now(), err: gorm.ErrRecordNotFound, wantNot: "GORM"},
		{name: "slow query", begin: time.Now().Add(-time.Second), want: "GORM slow query"},
		{name: "fast query hidden outside debug", begin: time.Now(), wantNot: "GORM"},
		{name: "fast query in debug", debug: true, begin: time.Now(), want: "GORM query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newTestGormLogger(tt.debug)
			l.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			if tt.want != "" {
				assert.Contains(t, buf.String(), tt.want)
			}
			if tt.wantNot != "" {
				assert.NotContains(t, buf.String(), tt.wantNot)
			}
		})
	}
}

func TestGormSlogLogger_ParamsFilterDropsValues(t *testing.T) {
	l, _ := newTestGormLogger(true)

	sql, params := l.ParamsFilter(context.Background(), "UPDATE kv_entries SET value = ?", []byte(`[{"password":"$2a$"}]`))
	assert.Equal(t, "UPDATE kv_entries SET value = ?", sql)
	assert.Nil(t, params)
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, _ := newTestGormLogger(false)

	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&reqBuf, nil)).With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Error(ctx, "failed to %s", "migrate")
	assert.Contains(t, reqBuf.String(), "request_id=req-1")
	assert.Contains(t, reqBuf.String(), "failed to migrate")

	silent := l.LogMode(logger.Silent)
	reqBuf.Reset()
	silent.Error(ctx, "ignored")
	assert.Empty(t, reqBuf.String())
}
