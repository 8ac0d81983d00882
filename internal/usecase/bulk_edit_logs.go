package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/runoshun/timetrack/internal/domain"
	"github.com/runoshun/timetrack/internal/usecase/shared"
)

// LogEdit is one row of an edited time-log table.
// Fields are ordered to minimize memory padding.
type LogEdit struct {
	Start       time.Time          // Edited session start
	End         time.Time          // Edited session end
	Task        string             // Edited task name
	SessionType domain.SessionType // Defaults to work when empty
	Delete      bool               // Drop this row from the table
}

// BulkEditTimeLogsInput contains the full edited table. The edit replaces
// the whole time-log table, not a subset of rows.
type BulkEditTimeLogsInput struct {
	Edits []LogEdit
}

// BulkEditTimeLogsOutput contains the result of a bulk edit.
type BulkEditTimeLogsOutput struct {
	Kept    int // Rows written back
	Dropped int // Rows removed (deleted or blank)
}

// BulkEditTimeLogs is the use case for replacing the time-log table with an
// edited version. The batch is all-or-nothing: one invalid row rejects the
// whole edit and the table is untouched.
type BulkEditTimeLogs struct {
	logs   domain.LogRepository
	totals *shared.Totals
}

// NewBulkEditTimeLogs creates a new BulkEditTimeLogs use case.
func NewBulkEditTimeLogs(logs domain.LogRepository, totals *shared.Totals) *BulkEditTimeLogs {
	return &BulkEditTimeLogs{
		logs:   logs,
		totals: totals,
	}
}

// Execute validates every row, rewrites the table and recomputes all task
// totals. Durations are rederived from the edited start/end pairs; any
// duration the caller supplied is ignored.
func (uc *BulkEditTimeLogs) Execute(_ context.Context, in BulkEditTimeLogsInput) (*BulkEditTimeLogsOutput, error) {
	entries := make([]domain.TimeLogEntry, 0, len(in.Edits))
	dropped := 0

	for i, edit := range in.Edits {
		if edit.Delete {
			dropped++
			continue
		}

		task := strings.TrimSpace(edit.Task)
		if task == "" {
			// A fully blank row is dropped; a row with times but no task
			// is a real mistake.
			if edit.Start.IsZero() && edit.End.IsZero() {
				dropped++
				continue
			}
			return nil, fmt.Errorf("row %d: empty task name: %w", i, domain.ErrValidation)
		}
		if len(task) > domain.MaxTaskNameLen {
			return nil, fmt.Errorf("row %d: task name exceeds %d characters: %w", i, domain.MaxTaskNameLen, domain.ErrValidation)
		}
		if !edit.End.After(edit.Start) {
			return nil, fmt.Errorf("row %d: start time must be before end time: %w", i, domain.ErrValidation)
		}

		sessionType := edit.SessionType
		if sessionType == "" {
			sessionType = domain.SessionWork
		}
		if !sessionType.Valid() {
			return nil, fmt.Errorf("row %d: unknown session type %q: %w", i, sessionType, domain.ErrValidation)
		}

		entries = append(entries, domain.NewTimeLogEntry(task, edit.Start, edit.End, sessionType))
	}

	if err := uc.logs.ReplaceAll(entries); err != nil {
		return nil, fmt.Errorf("rewrite time logs: %w", err)
	}
	if err := uc.totals.RecomputeAllTotals(); err != nil {
		return nil, fmt.Errorf("recompute task totals: %w", err)
	}

	return &BulkEditTimeLogsOutput{Kept: len(entries), Dropped: dropped}, nil
}
