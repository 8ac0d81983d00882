package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/runoshun/timetrack/internal/domain"
)

// ListScheduleBlocksInput contains the parameters for listing blocks.
type ListScheduleBlocksInput struct {
	Date time.Time // Limit to one date; zero value lists all dates
}

// ListScheduleBlocksOutput contains the listed blocks, sorted by date then
// start time.
type ListScheduleBlocksOutput struct {
	Blocks []domain.ScheduleBlock
}

// ListScheduleBlocks is the use case for reading the schedule table.
type ListScheduleBlocks struct {
	schedule domain.ScheduleRepository
}

// NewListScheduleBlocks creates a new ListScheduleBlocks use case.
func NewListScheduleBlocks(schedule domain.ScheduleRepository) *ListScheduleBlocks {
	return &ListScheduleBlocks{schedule: schedule}
}

// Execute returns blocks, optionally filtered to one date.
func (uc *ListScheduleBlocks) Execute(_ context.Context, in ListScheduleBlocksInput) (*ListScheduleBlocksOutput, error) {
	blocks, err := uc.schedule.All()
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}

	if !in.Date.IsZero() {
		date := dateOnly(in.Date)
		filtered := make([]domain.ScheduleBlock, 0, len(blocks))
		for _, b := range blocks {
			if b.Date.Equal(date) {
				filtered = append(filtered, b)
			}
		}
		blocks = filtered
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		if !blocks[i].Date.Equal(blocks[j].Date) {
			return blocks[i].Date.Before(blocks[j].Date)
		}
		return blocks[i].Start.Before(blocks[j].Start)
	})

	return &ListScheduleBlocksOutput{Blocks: blocks}, nil
}
