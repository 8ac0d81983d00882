package csvstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/timetrack/internal/domain"
)

// Store owns the three record files in one data directory.
//
// Known limitation: writes are serialized per table within this process
// only. A second process replacing a table concurrently can still lose an
// append; the advisory flock narrows but does not close that window.
type Store struct {
	logs     *recordFile
	tasks    *recordFile
	schedule *recordFile
	dir      string
}

// New creates a Store rooted at dir. Call Init before trusting any read.
func New(dir string, logger domain.OpLogger) *Store {
	return &Store{
		dir:      dir,
		logs:     newRecordFile(filepath.Join(dir, timeLogTable.FileName), &timeLogTable, logger),
		tasks:    newRecordFile(filepath.Join(dir, taskTable.FileName), &taskTable, logger),
		schedule: newRecordFile(filepath.Join(dir, scheduleTable.FileName), &scheduleTable, logger),
	}
}

// Init creates missing table files and runs the corruption repair pass over
// each, before any other component reads them.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	for _, f := range []*recordFile{s.logs, s.tasks, s.schedule} {
		if err := f.ensureExists(); err != nil {
			return err
		}
		if _, err := f.repair(); err != nil {
			return err
		}
	}
	return nil
}

// Logs returns the time-log repository.
func (s *Store) Logs() domain.LogRepository { return &logStore{f: s.logs} }

// Tasks returns the task repository.
func (s *Store) Tasks() domain.TaskRepository { return &taskStore{f: s.tasks} }

// Schedule returns the schedule-block repository.
func (s *Store) Schedule() domain.ScheduleRepository { return &scheduleStore{f: s.schedule} }

// RecordFiles lists the absolute paths of the table files that exist on
// disk, for the backup collaborator.
func (s *Store) RecordFiles() []string {
	var paths []string
	for _, f := range []*recordFile{s.logs, s.tasks, s.schedule} {
		if _, err := os.Stat(f.path); err == nil {
			paths = append(paths, f.path)
		}
	}
	return paths
}

// logStore adapts the time-log record file to domain.LogRepository.
type logStore struct{ f *recordFile }

func (s *logStore) All() ([]domain.TimeLogEntry, error)    { return s.load(false) }
func (s *logStore) Reload() ([]domain.TimeLogEntry, error) { return s.load(true) }

func (s *logStore) load(force bool) ([]domain.TimeLogEntry, error) {
	rows, err := s.f.rows(force)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.TimeLogEntry, 0, len(rows))
	for _, row := range rows {
		e, err := decodeTimeLog(row)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", timeLogTable.FileName, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (s *logStore) Append(entry domain.TimeLogEntry) error {
	row := encodeTimeLog(entry)
	// Defense in depth: the same check the repair pass applies, so an
	// invalid row never reaches disk through this path.
	if !timeLogTable.validRow(row) {
		return fmt.Errorf("time log entry for %q failed row validation: %w", entry.Task, domain.ErrValidation)
	}
	return s.f.appendRow(row)
}

func (s *logStore) ReplaceAll(entries []domain.TimeLogEntry) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, encodeTimeLog(e))
	}
	return s.f.writeAll(rows)
}

// taskStore adapts the task record file to domain.TaskRepository.
type taskStore struct{ f *recordFile }

func (s *taskStore) All() ([]domain.Task, error)    { return s.load(false) }
func (s *taskStore) Reload() ([]domain.Task, error) { return s.load(true) }

func (s *taskStore) load(force bool) ([]domain.Task, error) {
	rows, err := s.f.rows(force)
	if err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		t, err := decodeTask(row)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", taskTable.FileName, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (s *taskStore) Append(task domain.Task) error {
	return s.f.appendRow(encodeTask(task))
}

func (s *taskStore) ReplaceAll(tasks []domain.Task) error {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, encodeTask(t))
	}
	return s.f.writeAll(rows)
}

// scheduleStore adapts the schedule record file to domain.ScheduleRepository.
type scheduleStore struct{ f *recordFile }

func (s *scheduleStore) All() ([]domain.ScheduleBlock, error)    { return s.load(false) }
func (s *scheduleStore) Reload() ([]domain.ScheduleBlock, error) { return s.load(true) }

func (s *scheduleStore) load(force bool) ([]domain.ScheduleBlock, error) {
	rows, err := s.f.rows(force)
	if err != nil {
		return nil, err
	}
	blocks := make([]domain.ScheduleBlock, 0, len(rows))
	for _, row := range rows {
		b, err := decodeSchedule(row)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", scheduleTable.FileName, err)
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func (s *scheduleStore) Append(block domain.ScheduleBlock) error {
	return s.f.appendRow(encodeSchedule(block))
}

func (s *scheduleStore) ReplaceAll(blocks []domain.ScheduleBlock) error {
	rows := make([][]string, 0, len(blocks))
	for _, b := range blocks {
		rows = append(rows, encodeSchedule(b))
	}
	return s.f.writeAll(rows)
}

// Interface conformance.
var (
	_ domain.LogRepository      = (*logStore)(nil)
	_ domain.TaskRepository     = (*taskStore)(nil)
	_ domain.ScheduleRepository = (*scheduleStore)(nil)
)
