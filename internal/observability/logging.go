package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NoOpLogger discards everything. Tests use it so service construction
// stays one line.
var NoOpLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// NewLogger builds the process logger: JSON to stdout, level from config
// ("debug", "info", "warn", "error"; default info). The environment is
// attached to every record.
func NewLogger(environment, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler).With(slog.String("environment", environment))
}
