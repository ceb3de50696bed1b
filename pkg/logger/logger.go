package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

const (
	DEBUG int = iota
	INFO
	WARNING
	ERROR
	SILENCE
)

type Logger interface {
	Debugf(msg string, a ...any)
	Infof(msg string, a ...any)
	Warnf(msg string, a ...any)
	Errorf(msg string, a ...any)
}

type defaultLogger struct {
	level int
	inner *slog.Logger
}

func NewLogger(level int) *defaultLogger {
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      toSlogLevel(level),
		TimeFormat: time.DateTime,
	})

	return &defaultLogger{level: level, inner: slog.New(handler)}
}

// ParseLevel converts the level name in configuration into a logger level.
// Unknown names fall back to INFO.
func ParseLevel(s string) int {
	switch strings.ToLower(s) {
	case "debug":
		return DEBUG
	case "warn", "warning":
		return WARNING
	case "error":
		return ERROR
	case "silence", "silent", "off":
		return SILENCE
	default:
		return INFO
	}
}

func (l *defaultLogger) Debugf(msg string, a ...any) {
	if l.level <= DEBUG {
		l.inner.Debug(fmt.Sprintf(msg, a...))
	}
}

func (l *defaultLogger) Infof(msg string, a ...any) {
	if l.level <= INFO {
		l.inner.Info(fmt.Sprintf(msg, a...))
	}
}

func (l *defaultLogger) Warnf(msg string, a ...any) {
	if l.level <= WARNING {
		l.inner.Warn(fmt.Sprintf(msg, a...))
	}
}

func (l *defaultLogger) Errorf(msg string, a ...any) {
	if l.level <= ERROR {
		l.inner.Error(fmt.Sprintf(msg, a...))
	}
}

func toSlogLevel(level int) slog.Level {
	switch level {
	case DEBUG:
		return slog.LevelDebug
	case WARNING:
		return slog.LevelWarn
	case ERROR, SILENCE:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
