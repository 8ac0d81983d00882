// Package backup snapshots record files to timestamped copies.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/runoshun/timetrack/internal/domain"
)

const stampLayout = "20060102_150405"

// Manager copies record files into a backups directory and sweeps old
// copies by modification time. Snapshots read the source file in one shot;
// they are safe against concurrent appends but not guaranteed atomic with
// an in-flight full-table replace.
type Manager struct {
	dir    string
	clock  domain.Clock
	logger domain.OpLogger
}

// New creates a Manager writing under dir (typically <data>/backups).
func New(dir string, clock domain.Clock, logger domain.OpLogger) *Manager {
	return &Manager{dir: dir, clock: clock, logger: logger}
}

func (m *Manager) logOp(op, target string, ok bool, detail string) {
	if m.logger != nil {
		m.logger.LogOp(op, target, ok, detail)
	}
}

// Create snapshots each existing source file to
// <dir>/<base>_backup_<timestamp>.<ext>. Returns the backup name and the
// paths written. Missing sources are skipped, not errors.
func (m *Manager) Create(sources []string) (string, []string, error) {
	stamp := m.clock.Now().Format(stampLayout)
	name := "backup_" + stamp

	if err := os.MkdirAll(m.dir, 0o750); err != nil {
		return "", nil, fmt.Errorf("create backup directory: %w", err)
	}

	var written []string
	for _, src := range sources {
		data, err := os.ReadFile(src)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			m.logOp("backup", filepath.Base(src), false, err.Error())
			return "", written, fmt.Errorf("read %s: %w", filepath.Base(src), err)
		}

		base := filepath.Base(src)
		ext := filepath.Ext(base)
		dst := filepath.Join(m.dir, strings.TrimSuffix(base, ext)+"_backup_"+stamp+ext)
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			m.logOp("backup", filepath.Base(src), false, err.Error())
			return "", written, fmt.Errorf("write %s: %w", dst, err)
		}
		written = append(written, dst)
	}

	m.logOp("backup", name, true, fmt.Sprintf("%d files", len(written)))
	return name, written, nil
}

// Cleanup deletes backup files older than retentionDays, judged by
// modification time. Returns the number deleted.
func (m *Manager) Cleanup(retentionDays int) (int, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read backup directory: %w", err)
	}

	cutoff := m.clock.Now().AddDate(0, 0, -retentionDays)
	deleted := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.Contains(entry.Name(), "_backup_") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(m.dir, entry.Name())); err != nil {
				m.logOp("cleanup", entry.Name(), false, err.Error())
				continue
			}
			deleted++
		}
	}

	if deleted > 0 {
		m.logOp("cleanup", "old_backups", true, fmt.Sprintf("%d files deleted", deleted))
	}
	return deleted, nil
}
