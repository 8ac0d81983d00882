package domain

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

// Task statuses.
const (
	StatusActive   TaskStatus = "active"
	StatusArchived TaskStatus = "archived"
)

// Task is a trackable unit of work. Name is the primary key.
//
// TotalMinutes is derived: it must equal the sum of DurationMinutes over all
// time-log entries for this task. The aggregation engine is the only writer
// of this field after creation.
//
// Tasks appended by a full recompute carry only Name and TotalMinutes;
// Status and Created stay zero until set explicitly.
type Task struct {
	Created      time.Time  // Creation time (zero for recompute-appended rows)
	Name         string     // Unique task name, at most MaxTaskNameLen chars
	Status       TaskStatus // active or archived
	TotalMinutes float64    // Derived total of associated log durations
}

// IsActive reports whether the task is in the active status.
func (t *Task) IsActive() bool {
	return t.Status == StatusActive
}
