package csvstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/timetrack/internal/testutil"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRepair_DropsCorruptRowsAndRestoresHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, TimeLogsFileName)
	logger := &testutil.MockOpLogger{}

	// A file with a mangled header, a valid row, a truncated row, a row
	// with stray extra columns and a garbage row.
	writeFile(t, path, strings.Join([]string{
		"task,start_time,end", // mangled header
		"writing,2026-03-10 09:00:00,2026-03-10 09:50:00,50.00,2026-03-10,work",
		"review,2026-03-10 10:00:00",
		"calls,2026-03-10 11:00:00,2026-03-10 11:30:00,30.00,2026-03-10,work,stray,columns",
		"%%%garbage%%%",
		"",
	}, "\n"))

	f := newRecordFile(path, &timeLogTable, logger)
	dropped, err := f.repair()
	require.NoError(t, err)
	assert.Equal(t, 2, dropped)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "task,start_time,end_time,duration_minutes,date,session_type", lines[0],
		"header must be rewritten to the canonical form")
	assert.True(t, strings.HasPrefix(lines[1], "writing,"))
	assert.Equal(t, "calls,2026-03-10 11:00:00,2026-03-10 11:30:00,30.00,2026-03-10,work", lines[2],
		"extra columns must be truncated, not dropped")
}

func TestRepair_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, TimeLogsFileName)

	writeFile(t, path, strings.Join([]string{
		"task,start_time,end_time,duration_minutes,date,session_type",
		"writing,2026-03-10 09:00:00,2026-03-10 09:50:00,50.00,2026-03-10,work",
		"broken row",
	}, "\n"))

	f := newRecordFile(path, &timeLogTable, nil)

	dropped, err := f.repair()
	require.NoError(t, err)
	assert.Equal(t, 1, dropped)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	dropped, err = f.repair()
	require.NoError(t, err)
	assert.Equal(t, 0, dropped, "second pass must drop nothing")
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestRepair_MissingFileIsNoop(t *testing.T) {
	dir := t.TempDir()
	f := newRecordFile(filepath.Join(dir, TimeLogsFileName), &timeLogTable, nil)

	dropped, err := f.repair()
	require.NoError(t, err)
	assert.Equal(t, 0, dropped)

	_, statErr := os.Stat(f.path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRepair_KeepsTaskRowWithNonNumericTotal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, TasksFileName)

	writeFile(t, path, strings.Join([]string{
		"task_name,status,created_date,total_time_minutes",
		"writing,active,2026-03-01 08:00:00,not-a-number",
		"orphan,,,12.50",
	}, "\n"))

	f := newRecordFile(path, &taskTable, nil)
	dropped, err := f.repair()
	require.NoError(t, err)
	assert.Equal(t, 0, dropped, "unreadable totals are coerced later, not dropped")

	rows, err := f.rows(true)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	task, err := decodeTask(rows[0])
	require.NoError(t, err)
	assert.InDelta(t, 0.0, task.TotalMinutes, 1e-9, "non-numeric total decodes as 0")
}

func TestRepair_FlagsQuotedFieldDrops(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ScheduleFileName)
	logger := &testutil.MockOpLogger{}

	// Notes with an embedded comma are written quoted; the naive split
	// mangles the row and it is dropped, with a detail string that tells
	// data loss apart from ordinary self-healing.
	writeFile(t, path, strings.Join([]string{
		"date,start_time,end_time,task_name,block_type,notes,completed",
		`2026-03-10,09:00,10:00,calls,meeting,"prep, then sync",false`,
	}, "\n"))

	f := newRecordFile(path, &scheduleTable, logger)
	dropped, err := f.repair()
	require.NoError(t, err)
	assert.Equal(t, 1, dropped)

	var detail string
	for _, op := range logger.Ops {
		if op.Operation == "repair" && strings.Contains(op.Detail, "quoted") {
			detail = op.Detail
		}
	}
	require.NotEmpty(t, detail, "quoted-row drops must be logged distinctly")
	assert.Contains(t, detail, "prep")
}

func TestRepair_DropsScheduleRowsWithBadFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ScheduleFileName)

	writeFile(t, path, strings.Join([]string{
		"date,start_time,end_time,task_name,block_type,notes,completed",
		"2026-03-10,09:00,10:00,deep work,focus,,false",
		"2026-03-10,25:99,10:00,bad clock,focus,,false",
		"2026-03-10,09:00,10:00,,focus,,false",
		"2026-03-10,11:00,12:00,calls,meeting,,maybe",
	}, "\n"))

	f := newRecordFile(path, &scheduleTable, nil)
	dropped, err := f.repair()
	require.NoError(t, err)
	assert.Equal(t, 3, dropped)

	rows, err := f.rows(true)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "deep work", rows[0][3])
}
