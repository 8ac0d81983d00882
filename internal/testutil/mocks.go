// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"time"

	"github.com/runoshun/timetrack/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the configured time forward.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// OpRecord is one logged operation tuple.
type OpRecord struct {
	Operation string
	Target    string
	Detail    string
	Success   bool
}

// MockOpLogger is a test double for domain.OpLogger that records every call.
type MockOpLogger struct {
	Ops []OpRecord
}

// LogOp records the operation tuple.
func (m *MockOpLogger) LogOp(operation, target string, success bool, detail string) {
	m.Ops = append(m.Ops, OpRecord{
		Operation: operation,
		Target:    target,
		Detail:    detail,
		Success:   success,
	})
}

// MockLogRepository is an in-memory test double for domain.LogRepository.
type MockLogRepository struct {
	Entries    []domain.TimeLogEntry
	AllErr     error
	AppendErr  error
	ReplaceErr error
	Replaced   int // ReplaceAll call count
}

// All returns the stored entries.
func (m *MockLogRepository) All() ([]domain.TimeLogEntry, error) {
	if m.AllErr != nil {
		return nil, m.AllErr
	}
	return m.Entries, nil
}

// Reload returns the stored entries.
func (m *MockLogRepository) Reload() ([]domain.TimeLogEntry, error) {
	return m.All()
}

// Append stores one entry.
func (m *MockLogRepository) Append(entry domain.TimeLogEntry) error {
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.Entries = append(m.Entries, entry)
	return nil
}

// ReplaceAll replaces the stored entries.
func (m *MockLogRepository) ReplaceAll(entries []domain.TimeLogEntry) error {
	if m.ReplaceErr != nil {
		return m.ReplaceErr
	}
	m.Entries = entries
	m.Replaced++
	return nil
}

// MockTaskRepository is an in-memory test double for domain.TaskRepository.
type MockTaskRepository struct {
	Tasks      []domain.Task
	AllErr     error
	AppendErr  error
	ReplaceErr error
	Replaced   int // ReplaceAll call count
}

// All returns the stored tasks.
func (m *MockTaskRepository) All() ([]domain.Task, error) {
	if m.AllErr != nil {
		return nil, m.AllErr
	}
	return m.Tasks, nil
}

// Reload returns the stored tasks.
func (m *MockTaskRepository) Reload() ([]domain.Task, error) {
	return m.All()
}

// Append stores one task.
func (m *MockTaskRepository) Append(task domain.Task) error {
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.Tasks = append(m.Tasks, task)
	return nil
}

// ReplaceAll replaces the stored tasks.
func (m *MockTaskRepository) ReplaceAll(tasks []domain.Task) error {
	if m.ReplaceErr != nil {
		return m.ReplaceErr
	}
	m.Tasks = tasks
	m.Replaced++
	return nil
}

// MockScheduleRepository is an in-memory test double for domain.ScheduleRepository.
type MockScheduleRepository struct {
	Blocks     []domain.ScheduleBlock
	AllErr     error
	AppendErr  error
	ReplaceErr error
	Replaced   int // ReplaceAll call count
}

// All returns the stored blocks.
func (m *MockScheduleRepository) All() ([]domain.ScheduleBlock, error) {
	if m.AllErr != nil {
		return nil, m.AllErr
	}
	return m.Blocks, nil
}

// Reload returns the stored blocks.
func (m *MockScheduleRepository) Reload() ([]domain.ScheduleBlock, error) {
	return m.All()
}

// Append stores one block.
func (m *MockScheduleRepository) Append(block domain.ScheduleBlock) error {
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.Blocks = append(m.Blocks, block)
	return nil
}

// ReplaceAll replaces the stored blocks.
func (m *MockScheduleRepository) ReplaceAll(blocks []domain.ScheduleBlock) error {
	if m.ReplaceErr != nil {
		return m.ReplaceErr
	}
	m.Blocks = blocks
	m.Replaced++
	return nil
}

// Interface conformance.
var (
	_ domain.Clock              = (*MockClock)(nil)
	_ domain.OpLogger           = (*MockOpLogger)(nil)
	_ domain.LogRepository      = (*MockLogRepository)(nil)
	_ domain.TaskRepository     = (*MockTaskRepository)(nil)
	_ domain.ScheduleRepository = (*MockScheduleRepository)(nil)
)
