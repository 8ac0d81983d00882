package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/timetrack/internal/domain"
)

// UpdateScheduleBlockInput identifies a block by its composite key and
// carries the mutable fields. Nil pointers leave a field unchanged.
type UpdateScheduleBlockInput struct {
	Date      time.Time // Key: calendar date
	Start     time.Time // Key: block start clock time
	TaskName  string    // Key: task or label
	Completed *bool     // New completed flag, nil to keep
	Notes     *string   // New notes, nil to keep
}

// UpdateScheduleBlockOutput contains the result of updating a block.
type UpdateScheduleBlockOutput struct {
	Updated bool // False when no block matches the key
}

// UpdateScheduleBlock is the use case for mutating a planned block's
// completed flag or notes.
type UpdateScheduleBlock struct {
	schedule domain.ScheduleRepository
}

// NewUpdateScheduleBlock creates a new UpdateScheduleBlock use case.
func NewUpdateScheduleBlock(schedule domain.ScheduleRepository) *UpdateScheduleBlock {
	return &UpdateScheduleBlock{schedule: schedule}
}

// Execute updates every block matching (date, start, task name). A missing
// key is reported through the output, not as an error.
func (uc *UpdateScheduleBlock) Execute(_ context.Context, in UpdateScheduleBlockInput) (*UpdateScheduleBlockOutput, error) {
	blocks, err := uc.schedule.All()
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}

	date := dateOnly(in.Date)
	updated := false
	for i := range blocks {
		if !blocks[i].MatchesKey(date, in.Start, in.TaskName) {
			continue
		}
		if in.Completed != nil {
			blocks[i].Completed = *in.Completed
		}
		if in.Notes != nil {
			blocks[i].Notes = *in.Notes
		}
		updated = true
	}
	if !updated {
		return &UpdateScheduleBlockOutput{Updated: false}, nil
	}

	if err := uc.schedule.ReplaceAll(blocks); err != nil {
		return nil, fmt.Errorf("rewrite schedule: %w", err)
	}
	return &UpdateScheduleBlockOutput{Updated: true}, nil
}
