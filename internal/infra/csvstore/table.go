// Package csvstore implements the record store over flat CSV tables.
//
// Each logical table (time logs, tasks, schedule blocks) is one file with a
// fixed, ordered column schema. Writes go through an atomic
// write-to-temp-then-rename protocol; single-row appends take a best-effort
// advisory lock. A lenient repair pass runs at store initialization and
// rewrites each file with only its valid rows.
package csvstore

// Record file names within the data directory.
const (
	TimeLogsFileName = "time_logs.csv"
	TasksFileName    = "tasks.csv"
	ScheduleFileName = "schedule_blocks.csv"
)

// Table describes one logical table: its file name and canonical header.
type Table struct {
	Name     string
	FileName string
	Header   []string
	// validRow reports whether a repaired, truncated row may be persisted.
	validRow func(fields []string) bool
}

// Columns returns the expected column count.
func (t *Table) Columns() int { return len(t.Header) }

// The three record tables. Column order is part of the on-disk contract.
var (
	timeLogTable = Table{
		Name:     "time_logs",
		FileName: TimeLogsFileName,
		Header:   []string{"task", "start_time", "end_time", "duration_minutes", "date", "session_type"},
		validRow: validTimeLogRow,
	}

	taskTable = Table{
		Name:     "tasks",
		FileName: TasksFileName,
		Header:   []string{"task_name", "status", "created_date", "total_time_minutes"},
		validRow: validTaskRow,
	}

	scheduleTable = Table{
		Name:     "schedule_blocks",
		FileName: ScheduleFileName,
		Header:   []string{"date", "start_time", "end_time", "task_name", "block_type", "notes", "completed"},
		validRow: validScheduleRow,
	}
)
