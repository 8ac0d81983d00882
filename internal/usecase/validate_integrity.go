package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/runoshun/timetrack/internal/domain"
)

// ValidateIntegrityInput contains the parameters for the integrity scan.
type ValidateIntegrityInput struct{}

// ValidateIntegrityOutput lists the issues found per table. Empty lists
// mean the data is consistent. The scan never mutates anything.
type ValidateIntegrityOutput struct {
	TimeLogIssues []string `yaml:"time_logs"`
	TaskIssues    []string `yaml:"tasks"`
}

// Clean reports whether the scan found no issues.
func (o *ValidateIntegrityOutput) Clean() bool {
	return len(o.TimeLogIssues) == 0 && len(o.TaskIssues) == 0
}

// durationTolerance absorbs the 2-decimal rounding of stored durations.
const durationTolerance = 0.1

// ValidateIntegrity is the use case for a read-only consistency scan over
// the time-log and task tables.
type ValidateIntegrity struct {
	logs  domain.LogRepository
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewValidateIntegrity creates a new ValidateIntegrity use case.
func NewValidateIntegrity(logs domain.LogRepository, tasks domain.TaskRepository, clock domain.Clock) *ValidateIntegrity {
	return &ValidateIntegrity{
		logs:  logs,
		tasks: tasks,
		clock: clock,
	}
}

// Execute scans for stored durations that disagree with their start/end
// pair, log entries dated in the future, and task totals that disagree
// with the recomputed sums.
func (uc *ValidateIntegrity) Execute(_ context.Context, _ ValidateIntegrityInput) (*ValidateIntegrityOutput, error) {
	entries, err := uc.logs.All()
	if err != nil {
		return nil, fmt.Errorf("load time logs: %w", err)
	}
	tasks, err := uc.tasks.All()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	out := &ValidateIntegrityOutput{}
	today := uc.clock.Now().Format(domain.DateLayout)

	mismatched := 0
	future := 0
	sums := make(map[string]float64, len(entries))
	for _, e := range entries {
		if math.Abs(e.DurationMinutes-domain.DurationMinutes(e.Start, e.End)) > durationTolerance {
			mismatched++
		}
		if e.Date > today {
			future++
		}
		sums[e.Task] += e.DurationMinutes
	}
	if mismatched > 0 {
		out.TimeLogIssues = append(out.TimeLogIssues,
			fmt.Sprintf("stored duration disagrees with start/end in %d rows", mismatched))
	}
	if future > 0 {
		out.TimeLogIssues = append(out.TimeLogIssues,
			fmt.Sprintf("future dates in %d rows", future))
	}

	staleTotals := 0
	for i := range tasks {
		if math.Abs(tasks[i].TotalMinutes-sums[tasks[i].Name]) > durationTolerance {
			staleTotals++
		}
	}
	if staleTotals > 0 {
		out.TaskIssues = append(out.TaskIssues,
			fmt.Sprintf("stored totals disagree with time logs for %d tasks, run a recompute", staleTotals))
	}

	return out, nil
}
