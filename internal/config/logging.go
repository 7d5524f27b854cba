// Package config wires process-level configuration: the global logger and
// caller-supplied standards override files.
package config

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// EnvLogFile names an optional log file to write alongside the console.
const EnvLogFile = "AQUAINDEX_LOG_FILE"

// logMu guards the global logger and its file handle.
//
//nolint:gochecknoglobals // Guards the global logger state.
var logMu sync.Mutex

//nolint:gochecknoglobals // Tracks the global logger's file handle for cleanup.
var logFileHandle *os.File

// InitLogger configures the global zerolog logger: a human-readable console
// writer on stderr, plus a file writer when AQUAINDEX_LOG_FILE is set. An
// unparsable level falls back to info.
func InitLogger(level string) error {
	logMu.Lock()
	defer logMu.Unlock()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}}

	closeLogFileLocked()
	if path := os.Getenv(EnvLogFile); path != "" {
		logFile, fileErr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if fileErr != nil {
			return fileErr
		}
		logFileHandle = logFile
		writers = append(writers, logFile)
	}

	zlog.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return nil
}

// CloseLogFile closes the log file handle, if any, and resets the global
// logger to console-only so later writes cannot hit a closed file.
func CloseLogFile() {
	logMu.Lock()
	defer logMu.Unlock()
	closeLogFileLocked()
}

func closeLogFileLocked() {
	if logFileHandle == nil {
		return
	}
	_ = logFileHandle.Close()
	logFileHandle = nil

	zlog.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).
		Level(zlog.Logger.GetLevel()).
		With().
		Timestamp().
		Logger()
}
