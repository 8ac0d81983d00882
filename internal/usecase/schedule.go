package usecase

import "time"

// dateOnly normalizes a timestamp to its calendar date in UTC, the form
// schedule dates take after a round trip through the store.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
