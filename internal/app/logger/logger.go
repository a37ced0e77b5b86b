package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the app logger. JSON in production, console writer otherwise.
func New(level, appEnv string) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil && parsed != zerolog.NoLevel {
		lvl = parsed
	}

	zerolog.TimeFieldFormat = time.RFC3339

	var out = zerolog.New(os.Stdout)
	if appEnv != "production" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
	}

	return out.With().
		Timestamp().
		Str("service", "markezon-backend").
		Logger().
		Level(lvl)
}
