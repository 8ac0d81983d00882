package domain

import "time"

// Clock provides the current time. Abstracted for testability.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time { return time.Now() }

// OpLogger is the logging sink the store reports to. It receives one tuple
// per write, backup and validation event and must never fail the caller.
type OpLogger interface {
	LogOp(operation, target string, success bool, detail string)
}

// LogRepository manages persistence of time-log entries.
type LogRepository interface {
	// All returns every entry in file order, serving from cache when warm.
	All() ([]TimeLogEntry, error)

	// Reload bypasses the cache and re-reads from disk.
	Reload() ([]TimeLogEntry, error)

	// Append persists a single entry.
	Append(entry TimeLogEntry) error

	// ReplaceAll atomically replaces the full table.
	ReplaceAll(entries []TimeLogEntry) error
}

// TaskRepository manages persistence of tasks.
type TaskRepository interface {
	All() ([]Task, error)
	Reload() ([]Task, error)
	Append(task Task) error
	ReplaceAll(tasks []Task) error
}

// ScheduleRepository manages persistence of schedule blocks.
type ScheduleRepository interface {
	All() ([]ScheduleBlock, error)
	Reload() ([]ScheduleBlock, error)
	Append(block ScheduleBlock) error
	ReplaceAll(blocks []ScheduleBlock) error
}
