package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"foodsafe/config"
	deliverycontext "foodsafe/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func testQuery() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	cfg := &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: 10 * time.Millisecond}}

	t.Run("record not found is not logged", func(t *testing.T) {
		base, buf := newBufferLogger()
		l := newGormSlogLogger(base, cfg)

		l.Trace(context.Background(), time.Now(), testQuery, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("failed query logs error", func(t *testing.T) {
		base, buf := newBufferLogger()
		l := newGormSlogLogger(base, cfg)

		l.Trace(context.Background(), time.Now(), testQuery, gorm.ErrInvalidData)

		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "SELECT 1")
	})

	t.Run("slow query logs warning", func(t *testing.T) {
		base, buf := newBufferLogger()
		l := newGormSlogLogger(base, cfg)

		l.Trace(context.Background(), time.Now().Add(-time.Second), testQuery, nil)

		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("silent mode logs nothing", func(t *testing.T) {
		base, buf := newBufferLogger()
		l := newGormSlogLogger(base, cfg).LogMode(logger.Silent)

		l.Trace(context.Background(), time.Now().Add(-time.Second), testQuery, gorm.ErrInvalidData)

		assert.Empty(t, buf.String())
	})
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	base, baseBuf := newBufferLogger()
	requestLogger, requestBuf := newBufferLogger()
	ctx := deliverycontext.WithLogger(context.Background(), requestLogger.With(slog.String("request_id", "req-1")))

	l := newGormSlogLogger(base, &config.Config{})
	l.Trace(ctx, time.Now(), testQuery, gorm.ErrInvalidData)

	assert.Empty(t, baseBuf.String())
	assert.Contains(t, requestBuf.String(), "req-1")
}
