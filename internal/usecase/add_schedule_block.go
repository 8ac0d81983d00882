package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/runoshun/timetrack/internal/domain"
)

// AddScheduleBlockInput contains the parameters for planning a block.
// Fields are ordered to minimize memory padding.
type AddScheduleBlockInput struct {
	Date     time.Time        // Calendar date (time component ignored)
	Start    time.Time        // Clock time within the date
	End      time.Time        // Clock time, must be after Start
	TaskName string           // Task or label (required)
	Notes    string           // Free text
	Type     domain.BlockType // Defaults to work when empty
}

// AddScheduleBlockOutput contains the result of planning a block.
type AddScheduleBlockOutput struct {
	Block domain.ScheduleBlock // The persisted block
}

// AddScheduleBlock is the use case for adding a planned block to the
// schedule table.
type AddScheduleBlock struct {
	schedule domain.ScheduleRepository
}

// NewAddScheduleBlock creates a new AddScheduleBlock use case.
func NewAddScheduleBlock(schedule domain.ScheduleRepository) *AddScheduleBlock {
	return &AddScheduleBlock{schedule: schedule}
}

// Execute validates the block, rejects it when it overlaps an existing
// block on the same date, and appends it.
func (uc *AddScheduleBlock) Execute(_ context.Context, in AddScheduleBlockInput) (*AddScheduleBlockOutput, error) {
	taskName := strings.TrimSpace(in.TaskName)
	if taskName == "" {
		return nil, fmt.Errorf("task name cannot be empty: %w", domain.ErrValidation)
	}
	if !in.End.After(in.Start) {
		return nil, fmt.Errorf("start time must be before end time: %w", domain.ErrValidation)
	}

	blockType := in.Type
	if blockType == "" {
		blockType = domain.BlockWork
	}
	if !blockType.Valid() {
		return nil, fmt.Errorf("unknown block type %q: %w", blockType, domain.ErrValidation)
	}

	block := domain.ScheduleBlock{
		Date:     dateOnly(in.Date),
		Start:    in.Start,
		End:      in.End,
		TaskName: taskName,
		Type:     blockType,
		Notes:    strings.TrimSpace(in.Notes),
	}

	existing, err := uc.schedule.All()
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}
	for i := range existing {
		if block.Overlaps(&existing[i]) {
			return nil, fmt.Errorf("%s %s-%s overlaps %q: %w",
				block.Date.Format(domain.DateLayout),
				block.Start.Format(domain.ClockLayout),
				block.End.Format(domain.ClockLayout),
				existing[i].TaskName,
				domain.ErrScheduleConflict)
		}
	}

	if err := uc.schedule.Append(block); err != nil {
		return nil, fmt.Errorf("append schedule block: %w", err)
	}
	return &AddScheduleBlockOutput{Block: block}, nil
}
