package csvstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/timetrack/internal/domain"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s := New(dir, nil)
	require.NoError(t, s.Init())
	return s, dir
}

func testEntry(task string, start time.Time, minutes int) domain.TimeLogEntry {
	return domain.NewTimeLogEntry(task, start, start.Add(time.Duration(minutes)*time.Minute), domain.SessionWork)
}

func TestStoreInit_CreatesFilesWithHeaders(t *testing.T) {
	_, dir := newTestStore(t)

	for file, header := range map[string]string{
		TimeLogsFileName: "task,start_time,end_time,duration_minutes,date,session_type",
		TasksFileName:    "task_name,status,created_date,total_time_minutes",
		ScheduleFileName: "date,start_time,end_time,task_name,block_type,notes,completed",
	} {
		data, err := os.ReadFile(filepath.Join(dir, file))
		require.NoError(t, err, file)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		assert.Equal(t, header, lines[0], file)
		assert.Len(t, lines, 1, "%s should hold only the header", file)
	}
}

func TestStoreInit_Idempotent(t *testing.T) {
	s, _ := newTestStore(t)

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, s.Logs().Append(testEntry("writing", start, 30)))

	require.NoError(t, s.Init())

	entries, err := s.Logs().Reload()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "writing", entries[0].Task)
}

func TestLogStore_AppendAndRead(t *testing.T) {
	s, _ := newTestStore(t)
	logs := s.Logs()

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, logs.Append(testEntry("writing", start, 50)))
	require.NoError(t, logs.Append(testEntry("review", start.Add(time.Hour), 25)))

	entries, err := logs.All()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "writing", entries[0].Task)
	assert.InDelta(t, 50.0, entries[0].DurationMinutes, 1e-9)
	assert.Equal(t, "2026-03-10", entries[0].Date)
	assert.Equal(t, domain.SessionWork, entries[0].SessionType)
	assert.Equal(t, "review", entries[1].Task)
}

func TestLogStore_AppendRejectsInvalidEntry(t *testing.T) {
	s, dir := newTestStore(t)

	err := s.Logs().Append(domain.TimeLogEntry{Task: ""})
	require.ErrorIs(t, err, domain.ErrValidation)

	// Nothing reached disk.
	data, readErr := os.ReadFile(filepath.Join(dir, TimeLogsFileName))
	require.NoError(t, readErr)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 1)
}

func TestTaskStore_ReplaceAllRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	tasks := s.Tasks()

	created := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, tasks.ReplaceAll([]domain.Task{
		{Name: "writing", Status: domain.StatusActive, Created: created, TotalMinutes: 75.5},
		{Name: "orphan", TotalMinutes: 10}, // recompute-appended shape
	}))

	got, err := tasks.Reload()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "writing", got[0].Name)
	assert.Equal(t, domain.StatusActive, got[0].Status)
	assert.True(t, got[0].Created.Equal(created))
	assert.InDelta(t, 75.5, got[0].TotalMinutes, 1e-9)
	assert.Equal(t, "orphan", got[1].Name)
	assert.True(t, got[1].Created.IsZero())
}

func TestScheduleStore_RoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	schedule := s.Schedule()

	date, _ := time.Parse(domain.DateLayout, "2026-03-10")
	start, _ := time.Parse(domain.ClockLayout, "09:00")
	end, _ := time.Parse(domain.ClockLayout, "10:30")
	require.NoError(t, schedule.Append(domain.ScheduleBlock{
		Date:      date,
		Start:     start,
		End:       end,
		TaskName:  "deep work",
		Type:      domain.BlockFocus,
		Notes:     "no meetings",
		Completed: false,
	}))

	got, err := schedule.All()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Date.Equal(date))
	assert.True(t, got[0].Start.Equal(start))
	assert.Equal(t, "deep work", got[0].TaskName)
	assert.Equal(t, domain.BlockFocus, got[0].Type)
	assert.False(t, got[0].Completed)
}

func TestCache_ServesStaleUntilInvalidated(t *testing.T) {
	s, dir := newTestStore(t)
	logs := s.Logs()

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, logs.Append(testEntry("writing", start, 30)))

	// Warm the cache.
	entries, err := logs.All()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// A write from outside the store is invisible to All...
	path := filepath.Join(dir, TimeLogsFileName)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	extra := "review,2026-03-10 11:00:00,2026-03-10 11:25:00,25.00,2026-03-10,work\n"
	require.NoError(t, os.WriteFile(path, append(data, []byte(extra)...), 0o644))

	entries, err = logs.All()
	require.NoError(t, err)
	assert.Len(t, entries, 1, "cached read should not see the external write")

	// ...but Reload bypasses the cache.
	entries, err = logs.Reload()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestCache_InvalidatedByWrites(t *testing.T) {
	s, _ := newTestStore(t)
	logs := s.Logs()

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, logs.Append(testEntry("a", start, 10)))
	_, err := logs.All()
	require.NoError(t, err)

	require.NoError(t, logs.Append(testEntry("b", start.Add(time.Hour), 10)))
	entries, err := logs.All()
	require.NoError(t, err)
	assert.Len(t, entries, 2, "append must invalidate the cache")

	require.NoError(t, logs.ReplaceAll(entries[:1]))
	entries, err = logs.All()
	require.NoError(t, err)
	assert.Len(t, entries, 1, "replace must invalidate the cache")
}

func TestWriteAll_LeavesNoTempFile(t *testing.T) {
	s, dir := newTestStore(t)

	// A stale temp file from a crashed run must not break the next write.
	tmpPath := filepath.Join(dir, TimeLogsFileName+".tmp")
	require.NoError(t, os.WriteFile(tmpPath, []byte("garbage"), 0o644))

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, s.Logs().ReplaceAll([]domain.TimeLogEntry{testEntry("writing", start, 30)}))

	_, err := os.Stat(tmpPath)
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")

	entries, err := s.Logs().Reload()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestInit_KeepsDestinationAfterCrashBeforeRename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, TimeLogsFileName)

	// A populated table, plus a half-written temp file from a run that
	// crashed between the temp write and the rename.
	content := strings.Join([]string{
		"task,start_time,end_time,duration_minutes,date,session_type",
		"writing,2026-03-10 09:00:00,2026-03-10 09:50:00,50.00,2026-03-10,work",
		"review,2026-03-10 10:00:00,2026-03-10 10:25:00,25.00,2026-03-10,work",
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, os.WriteFile(path+".tmp", []byte("task,start_time,end\nwriting,2026-03-10"), 0o644))

	s := New(dir, nil)
	require.NoError(t, s.Init())

	entries, err := s.Logs().All()
	require.NoError(t, err)
	require.Len(t, entries, 2, "destination must keep its rows; the temp file never replaces it")
	assert.Equal(t, "writing", entries[0].Task)
	assert.Equal(t, "review", entries[1].Task)
}

func TestRecordFiles_ListsExistingFiles(t *testing.T) {
	s, dir := newTestStore(t)

	paths := s.RecordFiles()
	require.Len(t, paths, 3)

	require.NoError(t, os.Remove(filepath.Join(dir, ScheduleFileName)))
	assert.Len(t, s.RecordFiles(), 2)
}

func TestReadAll_MissingFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, nil)
	// No Init: the files do not exist yet.
	entries, err := s.Logs().All()
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, statErr := os.Stat(filepath.Join(dir, TimeLogsFileName))
	assert.True(t, os.IsNotExist(statErr), "read must not create the file")
}
