// Package logrusadapter provides a logger that writes to a github.com/sirupsen/logrus.Logger
// log.
package logrusadapter

import (
	"context"

	"github.com/extpg/extpg"
	"github.com/sirupsen/logrus"
)

type Logger struct {
	l logrus.FieldLogger
}

func NewLogger(l logrus.FieldLogger) *Logger {
	return &Logger{l: l}
}

func (l *Logger) Log(ctx context.Context, level extpg.LogLevel, msg string, data map[string]any) {
	var logger logrus.FieldLogger
	if data != nil {
		logger = l.l.WithFields(data)
	} else {
		logger = l.l
	}

	switch level {
	case extpg.LogLevelTrace:
		logger.WithField("EXTPG_LOG_LEVEL", level).Debug(msg)
	case extpg.LogLevelDebug:
		logger.Debug(msg)
	case extpg.LogLevelInfo:
		logger.Info(msg)
	case extpg.LogLevelWarn:
		logger.Warn(msg)
	case extpg.LogLevelError:
		logger.Error(msg)
	default:
		logger.WithField("INVALID_EXTPG_LOG_LEVEL", level).Error(msg)
	}
}
