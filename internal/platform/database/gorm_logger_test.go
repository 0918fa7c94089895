package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/phrazzld/parky-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormLoggerTrace(t *testing.T) {
	log, buf := logger.NewTestLogger(t)
	gl := NewGormLogger(log)
	ctx := context.Background()
	fc := func() (string, int64) { return "SELECT * FROM parks", 3 }

	t.Run("failed statement logs redacted error", func(t *testing.T) {
		buf.Reset()
		gl.Trace(ctx, time.Now(), fc, errors.New("dial postgres://parky:secret@db:5432/parky failed"))
		out := buf.String()
		assert.Contains(t, out, `"level":"ERROR"`)
		assert.Contains(t, out, "database statement failed")
		assert.NotContains(t, out, "secret")
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		buf.Reset()
		gl.LogMode(gormlogger.Warn).Trace(ctx, time.Now(), fc, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("slow statement logs warning", func(t *testing.T) {
		buf.Reset()
		gl.Trace(ctx, time.Now().Add(-time.Second), fc, nil)
		assert.Contains(t, buf.String(), "slow database statement")
	})

	t.Run("silent mode logs nothing", func(t *testing.T) {
		buf.Reset()
		gl.LogMode(gormlogger.Silent).Trace(ctx, time.Now(), fc, errors.New("boom"))
		assert.Empty(t, buf.String())
	})

	t.Run("statements at debug", func(t *testing.T) {
		buf.Reset()
		gl.Trace(ctx, time.Now(), fc, nil)
		assert.Contains(t, buf.String(), "SELECT * FROM parks")
	})
}

func TestGormLoggerUsesContextLogger(t *testing.T) {
	base, baseBuf := logger.NewTestLogger(t)
	reqLog, reqBuf := logger.NewTestLogger(t)

	gl := NewGormLogger(base)
	ctx := logger.WithLogger(context.Background(), reqLog)
	gl.Warn(ctx, "pool exhausted after %d attempts", 3)

	assert.Empty(t, baseBuf.String())
	assert.Contains(t, reqBuf.String(), "pool exhausted after 3 attempts")
}
