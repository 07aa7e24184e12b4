// Package log15adapter provides a logger that writes to a github.com/inconshreveable/log15.Logger
// log.
package log15adapter

import (
	"context"
	"sort"

	"github.com/extpg/extpg"
)

// Log15Logger interface defines the subset of
// github.com/inconshreveable/log15.Logger that this adapter uses.
type Log15Logger interface {
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Warn(msg string, ctx ...any)
	Error(msg string, ctx ...any)
	Crit(msg string, ctx ...any)
}

type Logger struct {
	l Log15Logger
}

func NewLogger(l Log15Logger) *Logger {
	return &Logger{l: l}
}

func (l *Logger) Log(ctx context.Context, level extpg.LogLevel, msg string, data map[string]any) {
	logArgs := make([]any, 0, len(data)*2)
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		logArgs = append(logArgs, k, data[k])
	}

	switch level {
	case extpg.LogLevelTrace:
		l.l.Debug(msg, append(logArgs, "EXTPG_LOG_LEVEL", level)...)
	case extpg.LogLevelDebug:
		l.l.Debug(msg, logArgs...)
	case extpg.LogLevelInfo:
		l.l.Info(msg, logArgs...)
	case extpg.LogLevelWarn:
		l.l.Warn(msg, logArgs...)
	case extpg.LogLevelError:
		l.l.Error(msg, logArgs...)
	default:
		l.l.Error(msg, append(logArgs, "INVALID_EXTPG_LOG_LEVEL", level)...)
	}
}
