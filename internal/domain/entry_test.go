package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationMinutes(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	assert.InDelta(t, 50.0, DurationMinutes(start, start.Add(50*time.Minute)), 1e-9)
	assert.InDelta(t, 0.5, DurationMinutes(start, start.Add(30*time.Second)), 1e-9)
	// 100 seconds is 1.666... minutes, stored as 1.67
	assert.InDelta(t, 1.67, DurationMinutes(start, start.Add(100*time.Second)), 1e-9)
}

func TestNewTimeLogEntry_DerivedFields(t *testing.T) {
	start := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
	end := start.Add(45 * time.Minute)

	e := NewTimeLogEntry("writing", start, end, SessionWork)

	assert.Equal(t, "writing", e.Task)
	assert.Equal(t, "2026-03-10", e.Date, "date comes from the start, even when the session crosses midnight")
	assert.InDelta(t, 45.0, e.DurationMinutes, 1e-9)
	assert.Equal(t, SessionWork, e.SessionType)
}

func TestSessionTypeValid(t *testing.T) {
	assert.True(t, SessionWork.Valid())
	assert.True(t, SessionBreak.Valid())
	assert.True(t, SessionLongBreak.Valid())
	assert.False(t, SessionType("").Valid())
	assert.False(t, SessionType("nap").Valid())
}
