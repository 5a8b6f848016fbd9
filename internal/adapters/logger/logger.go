// Package logger implements a logging adapter using charmbracelet/log.
package logger

import (
	"errors"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"go.trai.ch/fxr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using charmbracelet/log.
type Logger struct {
	mu      sync.RWMutex
	logger  *log.Logger
	out     io.Writer
	json    bool
	verbose bool
}

// New creates a Logger writing human-readable records to stderr at info level.
func New() *Logger {
	l := &Logger{out: os.Stderr}
	l.logger = l.build()
	return l
}

// build must be called with mu held for writing, or before l is shared.
func (l *Logger) build() *log.Logger {
	opts := log.Options{
		Level:     log.InfoLevel,
		Formatter: log.TextFormatter,
	}
	if l.verbose {
		opts.Level = log.DebugLevel
	}
	if l.json {
		opts.Formatter = log.JSONFormatter
		opts.ReportTimestamp = true
	}
	return log.NewWithOptions(l.out, opts)
}

// SetOutput updates the logger's output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
	l.logger = l.build()
}

// SetJSON switches between JSON and text records.
func (l *Logger) SetJSON(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.json = enabled
	l.logger = l.build()
}

// SetVerbose enables debug records.
func (l *Logger) SetVerbose(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = enabled
	l.logger = l.build()
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, keyvals ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg, keyvals...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, keyvals ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, keyvals ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg, keyvals...)
}

// Error logs err together with the metadata attached anywhere in its chain.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(err.Error(), metadata(err)...)
}

// metadata flattens zerr metadata into sorted key/value pairs. Outer layers
// win over inner ones for the same key.
func metadata(err error) []any {
	fields := make(map[string]any)
	for e := err; e != nil; e = errors.Unwrap(e) {
		z, ok := e.(*zerr.Error)
		if !ok {
			continue
		}
		for k, v := range z.Metadata() {
			if _, seen := fields[k]; !seen {
				fields[k] = v
			}
		}
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	keyvals := make([]any, 0, 2*len(keys))
	for _, k := range keys {
		keyvals = append(keyvals, k, fields[k])
	}
	return keyvals
}
