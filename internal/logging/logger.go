package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config selects the handler and level of a logger.
type Config struct {
	Level   string
	Format  string
	Service string
	Version string
	Output  io.Writer
}

// NewLogger returns a structured logger. Format is "text" (default) or
// "json"; Level is one of debug, info, warn, error (default info).
func NewLogger(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(handler)
	var attrs []any
	if cfg.Service != "" {
		attrs = append(attrs, FieldService, cfg.Service)
	}
	if cfg.Version != "" {
		attrs = append(attrs, FieldVersion, cfg.Version)
	}
	if len(attrs) > 0 {
		logger = logger.With(attrs...)
	}
	return logger
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
