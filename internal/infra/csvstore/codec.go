package csvstore

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/runoshun/timetrack/internal/domain"
)

// Row codecs: one deterministic parse/format pair per persisted field.
// Encoding is strict; decoding tolerates exactly the drift the repair pass
// lets through (notably a non-numeric task total, coerced to 0 so the
// aggregation engine can overwrite it).

func formatMinutes(m float64) string {
	return strconv.FormatFloat(m, 'f', 2, 64)
}

func encodeTimeLog(e domain.TimeLogEntry) []string {
	return []string{
		e.Task,
		e.Start.Format(domain.TimestampLayout),
		e.End.Format(domain.TimestampLayout),
		formatMinutes(e.DurationMinutes),
		e.Date,
		string(e.SessionType),
	}
}

func decodeTimeLog(row []string) (domain.TimeLogEntry, error) {
	if len(row) != timeLogTable.Columns() {
		return domain.TimeLogEntry{}, fmt.Errorf("time log row has %d fields, want %d", len(row), timeLogTable.Columns())
	}
	start, err := time.Parse(domain.TimestampLayout, strings.TrimSpace(row[1]))
	if err != nil {
		return domain.TimeLogEntry{}, fmt.Errorf("start_time: %w", err)
	}
	end, err := time.Parse(domain.TimestampLayout, strings.TrimSpace(row[2]))
	if err != nil {
		return domain.TimeLogEntry{}, fmt.Errorf("end_time: %w", err)
	}
	duration, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
	if err != nil {
		return domain.TimeLogEntry{}, fmt.Errorf("duration_minutes: %w", err)
	}
	return domain.TimeLogEntry{
		Task:            strings.TrimSpace(row[0]),
		Start:           start,
		End:             end,
		DurationMinutes: duration,
		Date:            strings.TrimSpace(row[4]),
		SessionType:     domain.SessionType(strings.TrimSpace(row[5])),
	}, nil
}

func encodeTask(t domain.Task) []string {
	created := ""
	if !t.Created.IsZero() {
		created = t.Created.Format(domain.TimestampLayout)
	}
	return []string{
		t.Name,
		string(t.Status),
		created,
		formatMinutes(t.TotalMinutes),
	}
}

func decodeTask(row []string) (domain.Task, error) {
	if len(row) != taskTable.Columns() {
		return domain.Task{}, fmt.Errorf("task row has %d fields, want %d", len(row), taskTable.Columns())
	}
	var created time.Time
	if raw := strings.TrimSpace(row[2]); raw != "" {
		var err error
		created, err = time.Parse(domain.TimestampLayout, raw)
		if err != nil {
			return domain.Task{}, fmt.Errorf("created_date: %w", err)
		}
	}
	total, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
	if err != nil || math.IsNaN(total) || math.IsInf(total, 0) {
		total = 0
	}
	return domain.Task{
		Name:         strings.TrimSpace(row[0]),
		Status:       domain.TaskStatus(strings.TrimSpace(row[1])),
		Created:      created,
		TotalMinutes: total,
	}, nil
}

func encodeSchedule(b domain.ScheduleBlock) []string {
	return []string{
		b.Date.Format(domain.DateLayout),
		b.Start.Format(domain.ClockLayout),
		b.End.Format(domain.ClockLayout),
		b.TaskName,
		string(b.Type),
		b.Notes,
		strconv.FormatBool(b.Completed),
	}
}

func decodeSchedule(row []string) (domain.ScheduleBlock, error) {
	if len(row) != scheduleTable.Columns() {
		return domain.ScheduleBlock{}, fmt.Errorf("schedule row has %d fields, want %d", len(row), scheduleTable.Columns())
	}
	date, err := time.Parse(domain.DateLayout, strings.TrimSpace(row[0]))
	if err != nil {
		return domain.ScheduleBlock{}, fmt.Errorf("date: %w", err)
	}
	start, err := time.Parse(domain.ClockLayout, strings.TrimSpace(row[1]))
	if err != nil {
		return domain.ScheduleBlock{}, fmt.Errorf("start_time: %w", err)
	}
	end, err := time.Parse(domain.ClockLayout, strings.TrimSpace(row[2]))
	if err != nil {
		return domain.ScheduleBlock{}, fmt.Errorf("end_time: %w", err)
	}
	completed, err := strconv.ParseBool(strings.TrimSpace(row[6]))
	if err != nil {
		return domain.ScheduleBlock{}, fmt.Errorf("completed: %w", err)
	}
	return domain.ScheduleBlock{
		Date:      date,
		Start:     start,
		End:       end,
		TaskName:  strings.TrimSpace(row[3]),
		Type:      domain.BlockType(strings.TrimSpace(row[4])),
		Notes:     row[5],
		Completed: completed,
	}, nil
}

// Row validators used by the repair pass and, for appends, as a final check
// before a row reaches disk.

func validTimeLogRow(fields []string) bool {
	// session_type is the only optional field.
	for _, f := range fields[:5] {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	if _, err := time.Parse(domain.TimestampLayout, strings.TrimSpace(fields[1])); err != nil {
		return false
	}
	if _, err := time.Parse(domain.TimestampLayout, strings.TrimSpace(fields[2])); err != nil {
		return false
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err != nil || math.IsNaN(d) || math.IsInf(d, 0) {
		return false
	}
	if _, err := time.Parse(domain.DateLayout, strings.TrimSpace(fields[4])); err != nil {
		return false
	}
	return true
}

func validTaskRow(fields []string) bool {
	if strings.TrimSpace(fields[0]) == "" {
		return false
	}
	// Recompute-appended tasks have empty status and created_date. A
	// non-numeric total is kept too: the aggregation engine coerces it to 0
	// rather than losing the task row.
	if raw := strings.TrimSpace(fields[2]); raw != "" {
		if _, err := time.Parse(domain.TimestampLayout, raw); err != nil {
			return false
		}
	}
	return true
}

func validScheduleRow(fields []string) bool {
	if strings.TrimSpace(fields[3]) == "" {
		return false
	}
	if _, err := time.Parse(domain.DateLayout, strings.TrimSpace(fields[0])); err != nil {
		return false
	}
	if _, err := time.Parse(domain.ClockLayout, strings.TrimSpace(fields[1])); err != nil {
		return false
	}
	if _, err := time.Parse(domain.ClockLayout, strings.TrimSpace(fields[2])); err != nil {
		return false
	}
	if _, err := strconv.ParseBool(strings.TrimSpace(fields[6])); err != nil {
		return false
	}
	return true
}
