package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
		Prefix:          "bbcode",
	})
	return &Logger{Logger: l}
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(path, baseURL string, quoteDepth int) {
	if path == "" {
		path = "(defaults)"
	}
	l.Debug("config loaded",
		"path", path,
		"base_url", baseURL,
		"quote_depth", quoteDepth)
}

// ParseFailed logs a document that failed validation
func (l *Logger) ParseFailed(source, reason string) {
	l.Warn("parse failed, rendering as plain text",
		"source", source,
		"reason", reason)
}

// Checked logs a document that passed validation
func (l *Logger) Checked(source string, tags int) {
	l.Debug("document valid",
		"source", source,
		"tags", tags)
}

// Rendered logs a completed render
func (l *Logger) Rendered(source string, bytes int, duration time.Duration) {
	l.Info("rendered",
		"source", source,
		"bytes", bytes,
		"duration", duration.Round(time.Microsecond))
}
