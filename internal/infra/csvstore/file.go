package csvstore

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	"github.com/runoshun/timetrack/internal/domain"
)

// recordFile is one table file plus its read-through cache.
//
// The mutex serializes every read and write to the file within this process,
// closing the gap the append-time flock alone would leave between a
// full-table replace and a concurrent append. The flock remains as
// best-effort defense against a second process touching the same file.
// Fields are ordered to minimize memory padding.
type recordFile struct {
	logger domain.OpLogger
	cache  [][]string
	path   string
	table  *Table
	mu     sync.Mutex
	cached bool
}

func newRecordFile(path string, table *Table, logger domain.OpLogger) *recordFile {
	return &recordFile{path: path, table: table, logger: logger}
}

func (f *recordFile) logOp(op string, ok bool, detail string) {
	if f.logger != nil {
		f.logger.LogOp(op, f.table.FileName, ok, detail)
	}
}

// rows returns the data rows (header excluded), serving the cached copy
// unless force is set. Callers must treat the result as read-only.
func (f *recordFile) rows(force bool) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cached && !force {
		return f.cache, nil
	}

	rows, err := f.readAll()
	if err != nil {
		return nil, err
	}
	f.cache = rows
	f.cached = true
	return rows, nil
}

// invalidate clears the cached copy. Called after every successful write,
// with the mutex held.
func (f *recordFile) invalidate() {
	f.cache = nil
	f.cached = false
}

// readAll reads every data row in file order. A missing file yields an
// empty row set; the file is not created as a side effect.
func (f *recordFile) readAll() ([][]string, error) {
	var rows [][]string
	err := withRetry(func() error {
		data, err := os.ReadFile(f.path)
		if err != nil {
			if os.IsNotExist(err) {
				rows = nil
				return nil
			}
			return err
		}

		r := csv.NewReader(bytes.NewReader(data))
		r.FieldsPerRecord = -1
		records, err := r.ReadAll()
		if err != nil {
			return fmt.Errorf("parse %s: %w", f.table.FileName, err)
		}
		if len(records) > 0 {
			records = records[1:] // header
		}
		rows = records
		return nil
	})
	if err != nil {
		f.logOp("read", false, err.Error())
		return nil, fmt.Errorf("read %s: %w", f.table.FileName, err)
	}
	return rows, nil
}

// writeAll replaces the file's full contents with the canonical header plus
// the given rows. The new content is serialized to a temp file in the same
// directory and renamed over the destination, so readers never observe a
// half-written file.
func (f *recordFile) writeAll(rows [][]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writeAllLocked(rows)
}

func (f *recordFile) writeAllLocked(rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(f.table.Header); err != nil {
		return fmt.Errorf("serialize %s: %w", f.table.FileName, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("serialize %s: %w", f.table.FileName, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("serialize %s: %w", f.table.FileName, err)
	}

	tmpPath := f.path + ".tmp"
	err := withRetry(func() error {
		if err := os.WriteFile(tmpPath, buf.Bytes(), 0o644); err != nil {
			return err
		}
		if err := os.Rename(tmpPath, f.path); err != nil {
			_ = os.Remove(tmpPath)
			return err
		}
		return nil
	})
	if err != nil {
		f.logOp("write", false, err.Error())
		return fmt.Errorf("write %s: %w", f.table.FileName, err)
	}

	f.invalidate()
	f.logOp("write", true, fmt.Sprintf("%d rows", len(rows)))
	return nil
}

// appendRow writes one serialized row in append mode under an advisory
// exclusive lock (best-effort; skipped where the platform has no flock).
func (f *recordFile) appendRow(row []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := withRetry(func() error {
		file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		defer file.Close()

		if err := flock(file); err == nil {
			defer func() { _ = funlock(file) }()
		}

		w := csv.NewWriter(file)
		if err := w.Write(row); err != nil {
			return err
		}
		w.Flush()
		return w.Error()
	})
	if err != nil {
		f.logOp("append", false, err.Error())
		return fmt.Errorf("append %s: %w", f.table.FileName, err)
	}

	f.invalidate()
	f.logOp("append", true, "1 row")
	return nil
}

// ensureExists creates the file with its canonical header when missing.
func (f *recordFile) ensureExists() error {
	if _, err := os.Stat(f.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", f.table.FileName, err)
	}
	return f.writeAll(nil)
}
