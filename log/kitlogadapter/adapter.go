// Package kitlogadapter provides a logger that writes to a github.com/go-kit/log.Logger.
package kitlogadapter

import (
	"context"

	"github.com/extpg/extpg"
	"github.com/go-kit/log"
	kitlevel "github.com/go-kit/log/level"
)

type Logger struct {
	l log.Logger
}

func NewLogger(l log.Logger) *Logger {
	return &Logger{l: l}
}

func (l *Logger) Log(ctx context.Context, level extpg.LogLevel, msg string, data map[string]any) {
	logger := l.l
	for k, v := range data {
		logger = log.With(logger, k, v)
	}

	switch level {
	case extpg.LogLevelTrace:
		logger.Log("EXTPG_LOG_LEVEL", level, "msg", msg)
	case extpg.LogLevelDebug:
		kitlevel.Debug(logger).Log("msg", msg)
	case extpg.LogLevelInfo:
		kitlevel.Info(logger).Log("msg", msg)
	case extpg.LogLevelWarn:
		kitlevel.Warn(logger).Log("msg", msg)
	case extpg.LogLevelError:
		kitlevel.Error(logger).Log("msg", msg)
	default:
		logger.Log("INVALID_EXTPG_LOG_LEVEL", level, "error", msg)
	}
}
