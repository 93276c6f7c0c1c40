package logger

import (
	"os"
	"time"

	"github.com/personalfinancemanagentdashboard/babu/config"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	// Usable before Init for failures during early wiring; Init replaces it
	// with the configured logger.
	log = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// Init configures the package-level logger. Development gets a human console
// writer, everything else structured JSON.
func Init(cfg *config.Config) {
	level := zerolog.InfoLevel
	if !cfg.App.IsProduction() {
		level = zerolog.DebugLevel
	}

	var logger zerolog.Logger
	if cfg.App.IsProduction() {
		logger = zerolog.New(os.Stderr)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	log = logger.Level(level).With().
		Timestamp().
		Str("service", cfg.App.Name).
		Logger()
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
