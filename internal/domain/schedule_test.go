package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func block(date string, start, end string) ScheduleBlock {
	d, _ := time.Parse(DateLayout, date)
	s, _ := time.Parse(ClockLayout, start)
	e, _ := time.Parse(ClockLayout, end)
	return ScheduleBlock{Date: d, Start: s, End: e, TaskName: "x", Type: BlockWork}
}

func TestScheduleBlockOverlaps(t *testing.T) {
	a := block("2026-03-10", "09:00", "10:00")

	overlapping := block("2026-03-10", "09:30", "10:30")
	assert.True(t, a.Overlaps(&overlapping))

	contained := block("2026-03-10", "09:15", "09:45")
	assert.True(t, a.Overlaps(&contained))

	// Half-open intervals: one block ending exactly when the next starts
	// is not a conflict.
	adjacent := block("2026-03-10", "10:00", "11:00")
	assert.False(t, a.Overlaps(&adjacent))

	before := block("2026-03-10", "08:00", "09:00")
	assert.False(t, a.Overlaps(&before))

	otherDate := block("2026-03-11", "09:30", "10:30")
	assert.False(t, a.Overlaps(&otherDate))
}

func TestScheduleBlockMatchesKey(t *testing.T) {
	b := block("2026-03-10", "09:00", "10:00")
	b.TaskName = "standup"

	date, _ := time.Parse(DateLayout, "2026-03-10")
	start, _ := time.Parse(ClockLayout, "09:00")

	assert.True(t, b.MatchesKey(date, start, "standup"))
	assert.False(t, b.MatchesKey(date, start, "other"))

	otherStart, _ := time.Parse(ClockLayout, "09:01")
	assert.False(t, b.MatchesKey(date, otherStart, "standup"))
}
