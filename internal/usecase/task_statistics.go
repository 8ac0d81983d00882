package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/timetrack/internal/domain"
)

// TaskStatisticsInput contains the parameters for the statistics report.
type TaskStatisticsInput struct{}

// TaskStats is the per-task breakdown of the statistics report.
type TaskStats struct {
	TotalMinutes      float64 `yaml:"total_minutes"`
	Sessions          int     `yaml:"sessions"`
	AvgSessionMinutes float64 `yaml:"avg_session_minutes"`
	DaysWorked        int     `yaml:"days_worked"`
}

// TaskStatisticsOutput is the full statistics report.
// Fields are ordered to minimize memory padding.
type TaskStatisticsOutput struct {
	Breakdown     map[string]TaskStats `yaml:"task_breakdown"`
	TotalMinutes  float64              `yaml:"total_minutes"`
	TodayMinutes  float64              `yaml:"today_minutes"`
	WeekMinutes   float64              `yaml:"week_minutes"`
	TotalSessions int                  `yaml:"total_sessions"`
	TodaySessions int                  `yaml:"today_sessions"`
	WeekSessions  int                  `yaml:"week_sessions"`
	UniqueTasks   int                  `yaml:"unique_tasks"`
}

// TaskStatistics is the use case for summarizing the time-log table:
// overall totals, today, the trailing seven days and a per-task breakdown.
type TaskStatistics struct {
	logs  domain.LogRepository
	clock domain.Clock
}

// NewTaskStatistics creates a new TaskStatistics use case.
func NewTaskStatistics(logs domain.LogRepository, clock domain.Clock) *TaskStatistics {
	return &TaskStatistics{
		logs:  logs,
		clock: clock,
	}
}

// Execute computes the report. An empty log table yields a zero report.
func (uc *TaskStatistics) Execute(_ context.Context, _ TaskStatisticsInput) (*TaskStatisticsOutput, error) {
	entries, err := uc.logs.All()
	if err != nil {
		return nil, fmt.Errorf("load time logs: %w", err)
	}

	out := &TaskStatisticsOutput{Breakdown: map[string]TaskStats{}}
	if len(entries) == 0 {
		return out, nil
	}

	now := uc.clock.Now()
	today := now.Format(domain.DateLayout)
	// Dates are stored in DateLayout, which orders lexicographically.
	weekAgo := now.AddDate(0, 0, -7).Format(domain.DateLayout)

	type agg struct {
		total float64
		count int
		days  map[string]bool
	}
	perTask := map[string]*agg{}

	for _, e := range entries {
		out.TotalMinutes += e.DurationMinutes
		out.TotalSessions++
		if e.Date == today {
			out.TodayMinutes += e.DurationMinutes
			out.TodaySessions++
		}
		if e.Date >= weekAgo {
			out.WeekMinutes += e.DurationMinutes
			out.WeekSessions++
		}

		a := perTask[e.Task]
		if a == nil {
			a = &agg{days: map[string]bool{}}
			perTask[e.Task] = a
		}
		a.total += e.DurationMinutes
		a.count++
		a.days[e.Date] = true
	}

	out.UniqueTasks = len(perTask)
	out.TotalMinutes = domain.RoundMinutes(out.TotalMinutes)
	out.TodayMinutes = domain.RoundMinutes(out.TodayMinutes)
	out.WeekMinutes = domain.RoundMinutes(out.WeekMinutes)

	for task, a := range perTask {
		out.Breakdown[task] = TaskStats{
			TotalMinutes:      domain.RoundMinutes(a.total),
			Sessions:          a.count,
			AvgSessionMinutes: domain.RoundMinutes(a.total / float64(a.count)),
			DaysWorked:        len(a.days),
		}
	}

	return out, nil
}
