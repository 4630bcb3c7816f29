// Package logging builds the application logger. The terminal belongs to
// the desktop while it runs, so logs only ever go to a rotating file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// LogsDir is the log directory under the folio home
	LogsDir = "logs"
	// FileName is the active log file
	FileName = "folio.log"

	maxAgeDays = 28
)

// Options configures the log file
type Options struct {
	Level      string
	Dir        string
	MaxSizeMB  int
	MaxBackups int
}

// New creates a logger writing JSON lines to Dir/folio.log with rotation.
// Every entry carries the session id. When the file cannot be set up the
// returned logger discards everything and err says why.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	if err := os.MkdirAll(opts.Dir, 0o750); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to create log directory: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   filepath.Join(opts.Dir, FileName),
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}
	return NewWithWriter(lj, level), lj, nil
}

// NewWithWriter creates a logger on an arbitrary writer. Used by tests.
func NewWithWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
