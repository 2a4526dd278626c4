// Package logging wraps log/slog for the quantity command.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/govalues/quantity"
)

// LevelOff is above every level used by the command and disables output.
const LevelOff = slog.Level(1000)

// Logger wraps slog.Logger with quantity-specific fields.
type Logger struct {
	*slog.Logger
}

// New creates a Logger with the given handler.
// If handler is nil, the logger discards everything.
func New(handler slog.Handler) *Logger {
	if handler == nil {
		return Noop()
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewText creates a Logger that writes human-readable text to w.
func NewText(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSON creates a Logger that writes JSON lines to w.
func NewJSON(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Noop creates a Logger that discards all output.
func Noop() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: LevelOff}))}
}

// ParseLevel converts a level name into a slog level.
// The name "off" disables logging.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	case "off":
		return LevelOff, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}

// WithCommand adds the command name to the logger.
func (l *Logger) WithCommand(name string) *Logger {
	return &Logger{Logger: l.Logger.With("command", name)}
}

// LogConversion logs a conversion of q into units.
// Failures are logged at debug level, the caller reports the error.
func (l *Logger) LogConversion(ctx context.Context, q quantity.Quantity, units string, result quantity.Quantity, err error) {
	if err != nil {
		l.DebugContext(ctx, "conversion failed",
			"quantity", q.String(),
			"units", units,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "conversion completed",
			"quantity", q.String(),
			"units", units,
			"result", result.String(),
		)
	}
}

// LogEvaluation logs an evaluation of a postfix expression.
// Failures are logged at debug level, the caller reports the error.
func (l *Logger) LogEvaluation(ctx context.Context, tokens int, result quantity.Quantity, err error) {
	if err != nil {
		l.DebugContext(ctx, "evaluation failed",
			"tokens", tokens,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "evaluation completed",
			"tokens", tokens,
			"result", result.String(),
		)
	}
}
