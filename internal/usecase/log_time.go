// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/runoshun/timetrack/internal/domain"
	"github.com/runoshun/timetrack/internal/usecase/shared"
)

// LogTimeInput contains the parameters for recording a tracking session.
// Fields are ordered to minimize memory padding.
type LogTimeInput struct {
	Start       time.Time          // Session start (required)
	End         time.Time          // Session end, must be after Start
	Task        string             // Task name (required)
	SessionType domain.SessionType // Defaults to work when empty
}

// LogTimeOutput contains the result of recording a session.
type LogTimeOutput struct {
	Entry domain.TimeLogEntry // The persisted entry with derived fields
}

// LogTime is the use case for appending one time-log entry.
type LogTime struct {
	logs   domain.LogRepository
	totals *shared.Totals
}

// NewLogTime creates a new LogTime use case.
func NewLogTime(logs domain.LogRepository, totals *shared.Totals) *LogTime {
	return &LogTime{
		logs:   logs,
		totals: totals,
	}
}

// Execute validates the session, appends it to the log table and adds its
// duration to the task's running total.
func (uc *LogTime) Execute(_ context.Context, in LogTimeInput) (*LogTimeOutput, error) {
	task := strings.TrimSpace(in.Task)
	if task == "" {
		return nil, fmt.Errorf("task name cannot be empty: %w", domain.ErrValidation)
	}
	if len(task) > domain.MaxTaskNameLen {
		return nil, fmt.Errorf("task name exceeds %d characters: %w", domain.MaxTaskNameLen, domain.ErrValidation)
	}
	if !in.End.After(in.Start) {
		return nil, fmt.Errorf("start time must be before end time: %w", domain.ErrValidation)
	}

	sessionType := in.SessionType
	if sessionType == "" {
		sessionType = domain.SessionWork
	}
	if !sessionType.Valid() {
		return nil, fmt.Errorf("unknown session type %q: %w", sessionType, domain.ErrValidation)
	}

	entry := domain.NewTimeLogEntry(task, in.Start, in.End, sessionType)
	if err := uc.logs.Append(entry); err != nil {
		return nil, fmt.Errorf("append time log: %w", err)
	}
	if err := uc.totals.ApplyIncrementalLog(entry); err != nil {
		return nil, fmt.Errorf("update task total: %w", err)
	}

	return &LogTimeOutput{Entry: entry}, nil
}
