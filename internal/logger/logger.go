package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation describes the optional rotating log file written next to stdout.
type Rotation struct {
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Setup initializes the global zerolog logger based on environment configuration.
//   - level: log level string (trace, debug, info, warn, error, fatal, panic)
//   - format: "json" for production, "pretty" for human-readable dev output
//   - rotation: when non-nil, entries are also written as JSON to a lumberjack-rotated file
//
// Returns the configured logger instance.
func Setup(level, format string, rotation *Rotation) zerolog.Logger {
	var writer io.Writer

	if format == "pretty" {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	} else {
		writer = os.Stdout
	}

	fw, fileErr := fileWriter(rotation)
	if fw != nil {
		writer = zerolog.MultiLevelWriter(writer, fw)
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(lvl)

	log := zerolog.New(writer).
		With().
		Timestamp().
		Caller().
		Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("file", rotation.Filename).Msg("File logging disabled")
	}
	return log
}

// fileWriter returns nil without error when no log file is configured.
func fileWriter(rotation *Rotation) (io.Writer, error) {
	if rotation == nil || rotation.Filename == "" {
		return nil, nil
	}
	if dir := filepath.Dir(rotation.Filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	return &lumberjack.Logger{
		Filename:   rotation.Filename,
		MaxSize:    rotation.MaxSizeMB,
		MaxBackups: rotation.MaxBackups,
		MaxAge:     rotation.MaxAgeDays,
		Compress:   true,
	}, nil
}
