// Package logger wires the shared zerolog logger: a console writer on stderr
// plus an append-only file at logs/policyradar.log.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// maxLogSize is the cap past which the log file is truncated at startup.
const maxLogSize = 10 << 20 // 10 MiB

var (
	defaultLogger zerolog.Logger
	once          sync.Once
)

// Init initializes the default logger. The log file lives under logDir; when
// opening it fails, logging degrades to the console writer alone. Init is
// safe to call more than once; only the first call takes effect.
func Init(logDir string, debug bool) {
	once.Do(func() {
		level := zerolog.InfoLevel
		if debug {
			level = zerolog.DebugLevel
		}

		console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		writers := []io.Writer{console}

		if logDir != "" {
			if file := openLogFile(filepath.Join(logDir, "policyradar.log")); file != nil {
				writers = append(writers, file)
			}
		}

		defaultLogger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
			Level(level).
			With().Timestamp().Logger()
		defaultLogger.Info().Msg("logger initialized")
	})
}

// openLogFile opens the application log for appending, truncating it first
// when it has grown past maxLogSize. The pack carries no rotation library,
// so a startup truncation stands in for rotation.
func openLogFile(path string) *os.File {
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		_ = os.Truncate(path, 0)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil
	}
	return file
}

// Get returns the initialized default logger. Callers that reach Get before
// Init see a console-only logger.
func Get() *zerolog.Logger {
	Init("", false)
	return &defaultLogger
}

// Info logs an informational message using the default logger.
func Info(msg string) {
	Get().Info().Msg(msg)
}

// Warn logs a warning message using the default logger.
func Warn(msg string) {
	Get().Warn().Msg(msg)
}

// Error logs an error message with its cause using the default logger.
func Error(msg string, err error) {
	Get().Error().Err(err).Msg(msg)
}

// Debug logs a debug message using the default logger.
func Debug(msg string) {
	Get().Debug().Msg(msg)
}
