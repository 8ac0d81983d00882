package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/runoshun/timetrack/internal/domain"
)

// DataSummaryInput contains the parameters for the data summary.
type DataSummaryInput struct{}

// DateRange is the span of dates covered by the time-log table.
type DateRange struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// DataSummaryOutput describes the state of the data directory.
// Fields are ordered to minimize memory padding.
type DataSummaryOutput struct {
	DateRange     *DateRange `yaml:"date_range"`
	TotalMinutes  float64    `yaml:"total_minutes"`
	LogCount      int        `yaml:"log_count"`
	TaskCount     int        `yaml:"task_count"`
	ActiveTasks   int        `yaml:"active_tasks"`
	TimeLogsExist bool       `yaml:"time_logs_exist"`
	TasksExist    bool       `yaml:"tasks_exist"`
	SettingsExist bool       `yaml:"settings_exist"`
}

// DataSummary is the use case for a quick overview of the stored data:
// row counts, total minutes, date range and file presence.
type DataSummary struct {
	logs         domain.LogRepository
	tasks        domain.TaskRepository
	timeLogsPath string
	tasksPath    string
	settingsPath string
}

// NewDataSummary creates a new DataSummary use case. The paths point at the
// record files and the settings file, for the existence checks.
func NewDataSummary(logs domain.LogRepository, tasks domain.TaskRepository, timeLogsPath, tasksPath, settingsPath string) *DataSummary {
	return &DataSummary{
		logs:         logs,
		tasks:        tasks,
		timeLogsPath: timeLogsPath,
		tasksPath:    tasksPath,
		settingsPath: settingsPath,
	}
}

// Execute builds the summary.
func (uc *DataSummary) Execute(_ context.Context, _ DataSummaryInput) (*DataSummaryOutput, error) {
	entries, err := uc.logs.All()
	if err != nil {
		return nil, fmt.Errorf("load time logs: %w", err)
	}
	tasks, err := uc.tasks.All()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	out := &DataSummaryOutput{
		LogCount:      len(entries),
		TaskCount:     len(tasks),
		TimeLogsExist: fileExists(uc.timeLogsPath),
		TasksExist:    fileExists(uc.tasksPath),
		SettingsExist: fileExists(uc.settingsPath),
	}

	for _, e := range entries {
		out.TotalMinutes += e.DurationMinutes
		if out.DateRange == nil {
			out.DateRange = &DateRange{Start: e.Date, End: e.Date}
			continue
		}
		if e.Date < out.DateRange.Start {
			out.DateRange.Start = e.Date
		}
		if e.Date > out.DateRange.End {
			out.DateRange.End = e.Date
		}
	}
	out.TotalMinutes = domain.RoundMinutes(out.TotalMinutes)

	for i := range tasks {
		if tasks[i].IsActive() {
			out.ActiveTasks++
		}
	}

	return out, nil
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
