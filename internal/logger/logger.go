// Package logger builds the host's logging from one explicit Config value
// constructed at startup. There is no package-level mutable state; whoever
// needs a sink gets handed one.
package logger

import (
	"io"
	"log/slog"
	"path/filepath"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// DefaultFileName is the log file used under the configuration directory
// when no explicit path is given.
const DefaultFileName = "hearth.log"

// Rotation defaults, lumberjack semantics.
const (
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
)

// Config describes the host's log destination and rendering.
type Config struct {
	Path       string // log file; empty disables file logging
	RotateDays int    // days of rotated logs to keep; 0 keeps DefaultMaxBackups files
	NoColor    bool   // plain console rendering
	Verbose    bool   // debug level
}

// DefaultPath returns the log file path for a configuration directory.
func DefaultPath(configDir string) string {
	return filepath.Join(configDir, DefaultFileName)
}

// FileWriter returns the rotating writer for Config.Path, or nil when file
// logging is disabled.
func (c Config) FileWriter() io.WriteCloser {
	if c.Path == "" {
		return nil
	}
	backups := DefaultMaxBackups
	if c.RotateDays > 0 {
		// Daily-rotation retention: one backup per kept day.
		backups = c.RotateDays
	}
	return &lj.Logger{
		Filename:   c.Path,
		MaxSize:    DefaultMaxSizeMB,
		MaxBackups: backups,
		MaxAge:     c.RotateDays,
	}
}

// New builds the slog logger for the given console writer.
func (c Config) New(console io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if c.NoColor {
		handler = slog.NewTextHandler(console, opts)
	} else {
		handler = NewColorTextHandler(console, opts)
	}
	return slog.New(handler)
}
