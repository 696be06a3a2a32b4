package logging

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ZerologLogger adapts zerolog to the Logger interface.
type ZerologLogger struct {
	l zerolog.Logger
}

// NewZerologLogger wraps an existing zerolog.Logger.
func NewZerologLogger(l zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{l: l}
}

// NewConsoleLogger builds a human-readable console logger writing to w at
// the given level ("debug", "info", "warn", "error"; anything else means
// info).
func NewConsoleLogger(w io.Writer, level string) *ZerologLogger {
	lvl := parseLevel(level)
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return &ZerologLogger{l: zerolog.New(out).Level(lvl).With().Timestamp().Logger()}
}

// NewNopLogger returns a logger that discards everything. Useful in tests.
func NewNopLogger() *ZerologLogger {
	return &ZerologLogger{l: zerolog.Nop()}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (z *ZerologLogger) event(e *zerolog.Event, msg string, args ...any) {
	e.Fields(kvToMap(args)).Msg(msg)
}

func (z *ZerologLogger) Debug(ctx context.Context, msg string, args ...any) {
	z.event(z.l.Debug(), msg, args...)
}

func (z *ZerologLogger) Info(ctx context.Context, msg string, args ...any) {
	z.event(z.l.Info(), msg, args...)
}

func (z *ZerologLogger) Warn(ctx context.Context, msg string, args ...any) {
	z.event(z.l.Warn(), msg, args...)
}

func (z *ZerologLogger) Error(ctx context.Context, msg string, args ...any) {
	z.event(z.l.Error(), msg, args...)
}

func (z *ZerologLogger) With(args ...any) Logger {
	return &ZerologLogger{l: z.l.With().Fields(kvToMap(args)).Logger()}
}

// kvToMap converts variadic key–value pairs into a field map. A trailing
// key without a value and non-string keys are kept visible instead of
// being dropped silently.
func kvToMap(args []any) map[string]any {
	if len(args) == 0 {
		return nil
	}
	m := make(map[string]any, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		if i+1 < len(args) {
			m[key] = args[i+1]
		} else {
			m[key] = "(missing)"
		}
	}
	return m
}

var _ Logger = (*ZerologLogger)(nil)
