// Package domain contains core business entities and interfaces.
package domain

import (
	"math"
	"time"
)

// Persisted time layouts. Every field written to disk has exactly one
// parse/format pair; these are the only layouts the store accepts back.
const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
	ClockLayout     = "15:04"
)

// MaxTaskNameLen bounds task names in both the task and time-log tables.
const MaxTaskNameLen = 100

// SessionType classifies a completed tracking session.
type SessionType string

// Session types.
const (
	SessionWork      SessionType = "work"
	SessionBreak     SessionType = "break"
	SessionLongBreak SessionType = "long_break"
)

// Valid reports whether s is one of the known session types.
func (s SessionType) Valid() bool {
	switch s {
	case SessionWork, SessionBreak, SessionLongBreak:
		return true
	}
	return false
}

// TimeLogEntry is one completed tracking session.
// Fields are ordered to minimize memory padding.
type TimeLogEntry struct {
	Start           time.Time   // Session start, second precision
	End             time.Time   // Session end, strictly after Start
	Task            string      // Task name the session was tracked against
	Date            string      // Calendar date, derived from Start
	SessionType     SessionType // work, break or long_break
	DurationMinutes float64     // Derived: (End-Start)/60, rounded to 2 decimals
}

// NewTimeLogEntry builds an entry with the derived fields populated.
// It does not validate; callers go through the LogTime use case for that.
func NewTimeLogEntry(task string, start, end time.Time, sessionType SessionType) TimeLogEntry {
	return TimeLogEntry{
		Task:            task,
		Start:           start,
		End:             end,
		DurationMinutes: DurationMinutes(start, end),
		Date:            start.Format(DateLayout),
		SessionType:     sessionType,
	}
}

// DurationMinutes derives the persisted duration from a start/end pair.
func DurationMinutes(start, end time.Time) float64 {
	return RoundMinutes(end.Sub(start).Seconds() / 60)
}

// RoundMinutes rounds a minute value to 2 decimal places, the precision
// the time-log table stores.
func RoundMinutes(m float64) float64 {
	return math.Round(m*100) / 100
}
