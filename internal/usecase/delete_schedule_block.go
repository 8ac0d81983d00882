package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/timetrack/internal/domain"
)

// DeleteScheduleBlockInput identifies a block by its composite key.
type DeleteScheduleBlockInput struct {
	Date     time.Time // Key: calendar date
	Start    time.Time // Key: block start clock time
	TaskName string    // Key: task or label
}

// DeleteScheduleBlockOutput contains the result of deleting a block.
type DeleteScheduleBlockOutput struct {
	Deleted bool // False when no block matches the key
}

// DeleteScheduleBlock is the use case for removing a planned block.
type DeleteScheduleBlock struct {
	schedule domain.ScheduleRepository
}

// NewDeleteScheduleBlock creates a new DeleteScheduleBlock use case.
func NewDeleteScheduleBlock(schedule domain.ScheduleRepository) *DeleteScheduleBlock {
	return &DeleteScheduleBlock{schedule: schedule}
}

// Execute removes every block matching (date, start, task name). A missing
// key is reported through the output, not as an error.
func (uc *DeleteScheduleBlock) Execute(_ context.Context, in DeleteScheduleBlockInput) (*DeleteScheduleBlockOutput, error) {
	blocks, err := uc.schedule.All()
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}

	date := dateOnly(in.Date)
	kept := make([]domain.ScheduleBlock, 0, len(blocks))
	for _, b := range blocks {
		if !b.MatchesKey(date, in.Start, in.TaskName) {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(blocks) {
		return &DeleteScheduleBlockOutput{Deleted: false}, nil
	}

	if err := uc.schedule.ReplaceAll(kept); err != nil {
		return nil, fmt.Errorf("rewrite schedule: %w", err)
	}
	return &DeleteScheduleBlockOutput{Deleted: true}, nil
}
