// Package logging provides leveled, printf-style logging helpers
// shared across the program, backed by zerolog.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	logFile *os.File
	mu      sync.Mutex
)

// Setup configures the global logger. Any level above 0 enables debug
// output. If logFilePath is non-empty, log lines are mirrored to that
// file in plain JSON alongside the console writer.
func Setup(level int, logFilePath string) error {
	mu.Lock()
	defer mu.Unlock()

	if level > 0 {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}

	if logFilePath == "" {
		logger = zerolog.New(console).With().Timestamp().Logger()
		return nil
	}

	f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f

	logger = zerolog.New(io.MultiWriter(console, f)).With().Timestamp().Logger()
	return nil
}

// I logs at info level.
func I(format string, args ...any) {
	logger.Info().Msgf(format, args...)
}

// S logs a success at info level.
func S(format string, args ...any) {
	logger.Info().Str("result", "success").Msgf(format, args...)
}

// D logs at debug level.
func D(format string, args ...any) {
	logger.Debug().Msgf(format, args...)
}

// W logs at warn level.
func W(format string, args ...any) {
	logger.Warn().Msgf(format, args...)
}

// E logs at error level.
func E(format string, args ...any) {
	logger.Error().Msgf(format, args...)
}
