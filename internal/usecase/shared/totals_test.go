package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/timetrack/internal/domain"
	"github.com/runoshun/timetrack/internal/testutil"
)

func entry(task string, minutes float64, date string) domain.TimeLogEntry {
	start, _ := time.Parse(domain.DateLayout, date)
	return domain.TimeLogEntry{
		Task:            task,
		Start:           start,
		End:             start.Add(time.Duration(minutes) * time.Minute),
		DurationMinutes: minutes,
		Date:            date,
		SessionType:     domain.SessionWork,
	}
}

func TestApplyIncrementalLog_AddsToExistingTotal(t *testing.T) {
	tasks := &testutil.MockTaskRepository{Tasks: []domain.Task{
		{Name: "writing", Status: domain.StatusActive, TotalMinutes: 10},
		{Name: "review", Status: domain.StatusActive, TotalMinutes: 5},
	}}
	totals := NewTotals(&testutil.MockLogRepository{}, tasks, nil)

	require.NoError(t, totals.ApplyIncrementalLog(entry("writing", 25.5, "2026-03-10")))

	assert.InDelta(t, 35.5, tasks.Tasks[0].TotalMinutes, 1e-9)
	assert.InDelta(t, 5.0, tasks.Tasks[1].TotalMinutes, 1e-9, "other tasks untouched")
	assert.Equal(t, 1, tasks.Replaced)
}

func TestApplyIncrementalLog_UnknownTaskIsLoggedNotFailed(t *testing.T) {
	tasks := &testutil.MockTaskRepository{}
	logger := &testutil.MockOpLogger{}
	totals := NewTotals(&testutil.MockLogRepository{}, tasks, logger)

	require.NoError(t, totals.ApplyIncrementalLog(entry("ghost", 10, "2026-03-10")))

	assert.Zero(t, tasks.Replaced, "no write for an unknown task")
	require.Len(t, logger.Ops, 1)
	assert.Equal(t, "aggregate", logger.Ops[0].Operation)
	assert.False(t, logger.Ops[0].Success)
}

func TestRecomputeAllTotals_OverwritesAndAppends(t *testing.T) {
	logs := &testutil.MockLogRepository{Entries: []domain.TimeLogEntry{
		entry("writing", 30, "2026-03-09"),
		entry("writing", 20, "2026-03-10"),
		entry("untracked", 15, "2026-03-10"),
	}}
	created := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	tasks := &testutil.MockTaskRepository{Tasks: []domain.Task{
		{Name: "writing", Status: domain.StatusActive, Created: created, TotalMinutes: 999},
		{Name: "idle", Status: domain.StatusActive, TotalMinutes: 7},
	}}
	totals := NewTotals(logs, tasks, nil)

	require.NoError(t, totals.RecomputeAllTotals())

	require.Len(t, tasks.Tasks, 3)
	assert.InDelta(t, 50.0, tasks.Tasks[0].TotalMinutes, 1e-9, "stale total overwritten")
	assert.Equal(t, domain.StatusActive, tasks.Tasks[0].Status)
	assert.True(t, tasks.Tasks[0].Created.Equal(created), "metadata survives the recompute")

	assert.InDelta(t, 7.0, tasks.Tasks[1].TotalMinutes, 1e-9, "tasks absent from logs keep their total")

	appended := tasks.Tasks[2]
	assert.Equal(t, "untracked", appended.Name)
	assert.InDelta(t, 15.0, appended.TotalMinutes, 1e-9)
	assert.Empty(t, appended.Status, "appended rows carry only name and total")
	assert.True(t, appended.Created.IsZero())
}

func TestRecomputeAllTotals_EmptyLogsLeaveTasksAlone(t *testing.T) {
	tasks := &testutil.MockTaskRepository{Tasks: []domain.Task{
		{Name: "writing", TotalMinutes: 42},
	}}
	totals := NewTotals(&testutil.MockLogRepository{}, tasks, nil)

	require.NoError(t, totals.RecomputeAllTotals())
	assert.Zero(t, tasks.Replaced)
	assert.InDelta(t, 42.0, tasks.Tasks[0].TotalMinutes, 1e-9)
}
