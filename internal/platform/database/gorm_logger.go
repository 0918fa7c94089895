package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/parky-api/internal/platform/logger"
	"github.com/phrazzld/parky-api/internal/redact"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowThreshold = 200 * time.Millisecond

// gormLogger forwards GORM's log output to slog. Statements are logged at
// debug level, slow statements at warn and failed statements at error with
// redacted error text. Record-not-found is not treated as a failure.
type gormLogger struct {
	logger        *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

// NewGormLogger returns a GORM logger that writes through l, or through the
// request logger carried by the statement context when there is one.
func NewGormLogger(l *slog.Logger) gormlogger.Interface {
	if l == nil {
		l = slog.Default()
	}
	return &gormLogger{
		logger:        l.With(slog.String("component", "gorm")),
		level:         gormlogger.Info,
		slowThreshold: defaultSlowThreshold,
	}
}

func (g *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *g
	clone.level = level
	return &clone
}

func (g *gormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if g.level >= gormlogger.Info {
		g.from(ctx).Info(fmt.Sprintf(msg, data...))
	}
}

func (g *gormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if g.level >= gormlogger.Warn {
		g.from(ctx).Warn(fmt.Sprintf(msg, data...))
	}
}

func (g *gormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if g.level >= gormlogger.Error {
		g.from(ctx).Error(redact.String(fmt.Sprintf(msg, data...)))
	}
}

func (g *gormLogger) Trace(
	ctx context.Context,
	begin time.Time,
	fc func() (sql string, rowsAffected int64),
	err error,
) {
	if g.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	log := g.from(ctx)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && g.level >= gormlogger.Error:
		_, rows := fc()
		log.Error("database statement failed",
			slog.String("error", redact.Error(err)),
			slog.Int64("rows", rows),
			slog.Int64("duration_ms", elapsed.Milliseconds()))
	case g.slowThreshold > 0 && elapsed > g.slowThreshold && g.level >= gormlogger.Warn:
		_, rows := fc()
		log.Warn("slow database statement",
			slog.Int64("rows", rows),
			slog.Int64("duration_ms", elapsed.Milliseconds()),
			slog.Int64("threshold_ms", g.slowThreshold.Milliseconds()))
	case g.level >= gormlogger.Info && log.Enabled(ctx, slog.LevelDebug):
		sql, rows := fc()
		log.Debug("database statement",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Int64("duration_ms", elapsed.Milliseconds()))
	}
}

func (g *gormLogger) from(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, g.logger)
}
