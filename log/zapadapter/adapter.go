// Package zapadapter provides a logger that writes to a go.uber.org/zap.Logger.
package zapadapter

import (
	"context"

	"github.com/extpg/extpg"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	logger *zap.Logger
}

func NewLogger(logger *zap.Logger) *Logger {
	return &Logger{logger: logger.WithOptions(zap.AddCallerSkip(1))}
}

func (pl *Logger) Log(ctx context.Context, level extpg.LogLevel, msg string, data map[string]any) {
	fields := make([]zapcore.Field, len(data))
	i := 0
	for k, v := range data {
		fields[i] = zap.Any(k, v)
		i++
	}

	switch level {
	case extpg.LogLevelTrace:
		pl.logger.Debug(msg, append(fields, zap.Stringer("EXTPG_LOG_LEVEL", level))...)
	case extpg.LogLevelDebug:
		pl.logger.Debug(msg, fields...)
	case extpg.LogLevelInfo:
		pl.logger.Info(msg, fields...)
	case extpg.LogLevelWarn:
		pl.logger.Warn(msg, fields...)
	case extpg.LogLevelError:
		pl.logger.Error(msg, fields...)
	default:
		pl.logger.Error(msg, append(fields, zap.Stringer("INVALID_EXTPG_LOG_LEVEL", level))...)
	}
}
