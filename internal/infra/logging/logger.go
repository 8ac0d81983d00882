// Package logging provides the file-based operation logger.
// It records one line per store write, backup and validation event under
// <data>/logs/timetrack.log.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/runoshun/timetrack/internal/domain"
)

// Ensure Logger implements the store's logging sink.
var _ domain.OpLogger = (*Logger)(nil)

// LogFileName is the operation log file under the logs directory.
const LogFileName = "timetrack.log"

// Logger appends operation tuples to a log file. If dir is empty, logging
// is disabled. Fields are ordered to minimize memory padding.
type Logger struct {
	file  *os.File
	dir   string
	mu    sync.Mutex
	level slog.Level
}

// New creates a Logger writing under dir. An empty dir disables logging.
func New(dir string, level slog.Level) *Logger {
	return &Logger{dir: dir, level: level}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ensureFile opens or returns the log file.
func (l *Logger) ensureFile() (*os.File, error) {
	if l.file != nil {
		return l.file, nil
	}
	if err := os.MkdirAll(l.dir, 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}
	path := filepath.Join(l.dir, LogFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	return f, nil
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// formatLog formats one operation tuple.
// Format: [2025-12-30 09:32:51] [OK] [write] [tasks.csv] 3 rows
func formatLog(t time.Time, op, target string, success bool, detail string) string {
	status := "OK"
	if !success {
		status = "FAIL"
	}
	line := fmt.Sprintf("[%s] [%s] [%s] [%s]",
		t.Format("2006-01-02 15:04:05"), status, op, target)
	if detail != "" {
		line += " " + detail
	}
	return line + "\n"
}

// LogOp records one operation tuple. Failures log at warn level, successes
// at info; entries below the configured level are skipped.
func (l *Logger) LogOp(operation, target string, success bool, detail string) {
	if l.dir == "" {
		return // logging disabled
	}
	level := slog.LevelInfo
	if !success {
		level = slog.LevelWarn
	}
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	f, err := l.ensureFile()
	if err != nil {
		return // the sink must never fail the caller
	}
	_, _ = io.WriteString(f, formatLog(time.Now(), operation, target, success, detail))
}
