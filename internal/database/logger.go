package database

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormLogger routes GORM's SQL tracing through logrus
type gormLogger struct {
	entry         *logrus.Entry
	level         logger.LogLevel
	slowThreshold time.Duration
}

// NewGormLogger creates a logger.Interface writing to the given logrus logger
func NewGormLogger(l *logrus.Logger, slowThreshold time.Duration) logger.Interface {
	level := logger.Warn
	if l.IsLevelEnabled(logrus.DebugLevel) {
		level = logger.Info
	}
	return &gormLogger{
		entry:         l.WithField("component", "gorm"),
		level:         level,
		slowThreshold: slowThreshold,
	}
}

func (g *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *g
	clone.level = level
	return &clone
}

func (g *gormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= logger.Info {
		g.entry.WithContext(ctx).Infof(msg, args...)
	}
}

func (g *gormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= logger.Warn {
		g.entry.WithContext(ctx).Warnf(msg, args...)
	}
}

func (g *gormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= logger.Error {
		g.entry.WithContext(ctx).Errorf(msg, args...)
	}
}

// Trace logs every executed statement at debug level, slow ones as warnings and
// failures as errors. Missing records are expected by callers and not reported.
func (g *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if g.level <= logger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	entry := g.entry.WithContext(ctx).WithFields(logrus.Fields{
		"sql":      sql,
		"rows":     rows,
		"duration": elapsed.String(),
	})

	switch {
	case err != nil && g.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		entry.WithError(err).Error("Query failed")
	case g.slowThreshold > 0 && elapsed > g.slowThreshold && g.level >= logger.Warn:
		entry.Warn("Slow query")
	case g.level >= logger.Info:
		entry.Debug("Query executed")
	}
}
