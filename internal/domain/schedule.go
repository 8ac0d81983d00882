package domain

import "time"

// BlockType classifies a planned schedule block.
type BlockType string

// Block types.
const (
	BlockWork    BlockType = "work"
	BlockBreak   BlockType = "break"
	BlockMeeting BlockType = "meeting"
	BlockFocus   BlockType = "focus"
)

// Valid reports whether b is one of the known block types.
func (b BlockType) Valid() bool {
	switch b {
	case BlockWork, BlockBreak, BlockMeeting, BlockFocus:
		return true
	}
	return false
}

// ScheduleBlock is a planned time interval on a given date.
// (Date, Start, TaskName) is the composite key for update and delete.
// Fields are ordered to minimize memory padding.
type ScheduleBlock struct {
	Date      time.Time // Calendar date (time component zero)
	Start     time.Time // Clock time within the date, ClockLayout precision
	End       time.Time // Clock time, strictly after Start
	TaskName  string    // Task or label the block is planned for
	Notes     string    // Free text
	Type      BlockType // work, break, meeting or focus
	Completed bool      // Marked done by the user
}

// Overlaps reports whether two blocks on the same date intersect,
// using half-open [Start, End) interval semantics.
func (b *ScheduleBlock) Overlaps(other *ScheduleBlock) bool {
	if !b.Date.Equal(other.Date) {
		return false
	}
	return b.Start.Before(other.End) && b.End.After(other.Start)
}

// MatchesKey reports whether the block has the given composite key.
func (b *ScheduleBlock) MatchesKey(date, start time.Time, taskName string) bool {
	return b.Date.Equal(date) && b.Start.Equal(start) && b.TaskName == taskName
}
