package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

var Log *slog.Logger

func init() {
	// Auto-initialize with safe defaults for tests and development
	// Production code can override by calling Initialize() explicitly
	Initialize("info", "text")
}

// Initialize sets up the global logger with the specified level and format.
// format is one of "text", "json" or "pretty" (colored, for local runs).
func Initialize(level string, format string) {
	Log = New(os.Stdout, level, format)
	slog.SetDefault(Log) // Make it the default for entire program
}

// New builds a logger writing to w without touching the global one.
func New(w io.Writer, level string, format string) *slog.Logger {
	logLevel := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: true,
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "pretty":
		handler = charmlog.NewWithOptions(w, charmlog.Options{
			Level:           charmlog.Level(logLevel),
			ReportTimestamp: true,
			ReportCaller:    true,
		})
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// parseLevel converts string log level to slog.Level
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		// Default to Info if invalid level provided
		return slog.LevelInfo
	}
}
