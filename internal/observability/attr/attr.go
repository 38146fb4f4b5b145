// Package attr provides slog attribute helpers so call sites stay terse
// and consistently typed across modules.
package attr

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

func String(key, value string) slog.Attr {
	return slog.String(key, value)
}

func Int(key string, value int) slog.Attr {
	return slog.Int(key, value)
}

func Float64(key string, value float64) slog.Attr {
	return slog.Float64(key, value)
}

func Bool(key string, value bool) slog.Attr {
	return slog.Bool(key, value)
}

func Any(key string, value any) slog.Attr {
	return slog.Any(key, value)
}

func Duration(key string, value time.Duration) slog.Attr {
	return slog.Duration(key, value)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// RoundID formats a round identifier attribute.
func RoundID(key string, id uuid.UUID) slog.Attr {
	return slog.String(key, id.String())
}
