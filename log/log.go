// Package log wires the structured diagnostic logger used by this verifier.
// The CLI and the verify pipeline log run progress through here (stage
// outcomes at info, per-ballot outcomes at debug); the proof-verification
// packages do not log and only append Findings to a diag.Report, which stays
// the sole source of truth for the verdict, the logger purely an
// operational trace.
package log

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger zerolog.Logger
)

func init() {
	Init("info", "console")
}

// Init (re)configures the global logger. level is one of
// debug/info/warn/error; format is console (human-readable, colorized when
// attached to a terminal) or json (one object per line, for machine
// consumption). Output is always stderr, per spec.md §6.
func Init(level, format string) {
	var out zerolog.ConsoleWriter
	var writer interface{ Write([]byte) (int, error) } = os.Stderr
	if format != "json" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
		writer = out
	}

	l := zerolog.New(writer).With().Timestamp().Logger()
	l = l.Level(parseLevel(level))

	mu.Lock()
	logger = l
	mu.Unlock()
}

func parseLevel(level string) zerolog.Level {
	switch level {
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

// Logger returns the current global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Debugf(format string, args ...any) { Logger().Debug().Msgf(format, args...) }
func Infof(format string, args ...any)  { Logger().Info().Msgf(format, args...) }
func Warnf(format string, args ...any)  { Logger().Warn().Msgf(format, args...) }
func Errorf(format string, args ...any) { Logger().Error().Msgf(format, args...) }
