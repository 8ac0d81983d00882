// Package shared contains helpers used by multiple use cases.
package shared

import (
	"fmt"

	"github.com/runoshun/timetrack/internal/domain"
)

// Totals maintains the derived per-task duration totals in the task table.
// It is the only writer of Task.TotalMinutes after task creation.
type Totals struct {
	logs   domain.LogRepository
	tasks  domain.TaskRepository
	logger domain.OpLogger
}

// NewTotals creates the aggregation helper.
func NewTotals(logs domain.LogRepository, tasks domain.TaskRepository, logger domain.OpLogger) *Totals {
	return &Totals{logs: logs, tasks: tasks, logger: logger}
}

// ApplyIncrementalLog adds one entry's duration to its task total.
// An unknown task name is logged and skipped, not an error: log rows may
// legitimately reference tasks that were never registered.
func (t *Totals) ApplyIncrementalLog(entry domain.TimeLogEntry) error {
	tasks, err := t.tasks.All()
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	for i := range tasks {
		if tasks[i].Name != entry.Task {
			continue
		}
		// Stored totals may be unreadable after manual edits; the decoder
		// already coerced those to 0, so the addition is always well-defined.
		tasks[i].TotalMinutes = domain.RoundMinutes(tasks[i].TotalMinutes + entry.DurationMinutes)
		if err := t.tasks.ReplaceAll(tasks); err != nil {
			return fmt.Errorf("update task totals: %w", err)
		}
		return nil
	}

	if t.logger != nil {
		t.logger.LogOp("aggregate", entry.Task, false, "task not registered, total not updated")
	}
	return nil
}

// RecomputeAllTotals rebuilds every task total from the time-log table.
// Tasks present in logs but missing from the task table are appended with
// only the name and total populated. With no log entries at all the task
// table is left untouched.
func (t *Totals) RecomputeAllTotals() error {
	entries, err := t.logs.All()
	if err != nil {
		return fmt.Errorf("load time logs: %w", err)
	}
	if len(entries) == 0 {
		return nil
	}

	// Group by task, preserving first-seen order for appended rows.
	sums := make(map[string]float64, len(entries))
	var order []string
	for _, e := range entries {
		if _, seen := sums[e.Task]; !seen {
			order = append(order, e.Task)
		}
		sums[e.Task] += e.DurationMinutes
	}

	tasks, err := t.tasks.All()
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	// Tasks with no log entries keep their stored total.
	known := make(map[string]bool, len(tasks))
	for i := range tasks {
		known[tasks[i].Name] = true
		if total, ok := sums[tasks[i].Name]; ok {
			tasks[i].TotalMinutes = domain.RoundMinutes(total)
		}
	}
	for _, name := range order {
		if !known[name] {
			tasks = append(tasks, domain.Task{Name: name, TotalMinutes: domain.RoundMinutes(sums[name])})
		}
	}

	if err := t.tasks.ReplaceAll(tasks); err != nil {
		return fmt.Errorf("rewrite task totals: %w", err)
	}
	if t.logger != nil {
		t.logger.LogOp("aggregate", "tasks.csv", true, fmt.Sprintf("recomputed %d task totals", len(tasks)))
	}
	return nil
}
