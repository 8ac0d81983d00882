package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/timetrack/internal/domain"
	"github.com/runoshun/timetrack/internal/testutil"
)

func mustClock(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(domain.ClockLayout, s)
	require.NoError(t, err)
	return v
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(domain.DateLayout, s)
	require.NoError(t, err)
	return v
}

func TestAddScheduleBlock_Execute_Success(t *testing.T) {
	schedule := &testutil.MockScheduleRepository{}
	uc := NewAddScheduleBlock(schedule)

	out, err := uc.Execute(context.Background(), AddScheduleBlockInput{
		Date:     mustDate(t, "2026-03-10"),
		Start:    mustClock(t, "09:00"),
		End:      mustClock(t, "10:30"),
		TaskName: " deep work ",
		Notes:    "no meetings",
	})

	require.NoError(t, err)
	assert.Equal(t, "deep work", out.Block.TaskName)
	assert.Equal(t, domain.BlockWork, out.Block.Type, "block type defaults to work")
	assert.False(t, out.Block.Completed)
	require.Len(t, schedule.Blocks, 1)
}

func TestAddScheduleBlock_Execute_Conflict(t *testing.T) {
	schedule := &testutil.MockScheduleRepository{Blocks: []domain.ScheduleBlock{{
		Date:     mustDate(t, "2026-03-10"),
		Start:    mustClock(t, "09:00"),
		End:      mustClock(t, "10:00"),
		TaskName: "standup",
		Type:     domain.BlockMeeting,
	}}}
	uc := NewAddScheduleBlock(schedule)

	_, err := uc.Execute(context.Background(), AddScheduleBlockInput{
		Date:     mustDate(t, "2026-03-10"),
		Start:    mustClock(t, "09:30"),
		End:      mustClock(t, "10:30"),
		TaskName: "deep work",
	})

	assert.ErrorIs(t, err, domain.ErrScheduleConflict)
	assert.Len(t, schedule.Blocks, 1)
}

func TestAddScheduleBlock_Execute_AdjacentBlocksAllowed(t *testing.T) {
	schedule := &testutil.MockScheduleRepository{Blocks: []domain.ScheduleBlock{{
		Date:     mustDate(t, "2026-03-10"),
		Start:    mustClock(t, "09:00"),
		End:      mustClock(t, "10:00"),
		TaskName: "standup",
		Type:     domain.BlockMeeting,
	}}}
	uc := NewAddScheduleBlock(schedule)

	_, err := uc.Execute(context.Background(), AddScheduleBlockInput{
		Date:     mustDate(t, "2026-03-10"),
		Start:    mustClock(t, "10:00"),
		End:      mustClock(t, "11:00"),
		TaskName: "deep work",
	})

	require.NoError(t, err)
	assert.Len(t, schedule.Blocks, 2)
}

func TestAddScheduleBlock_Execute_SameTimeOtherDateAllowed(t *testing.T) {
	schedule := &testutil.MockScheduleRepository{Blocks: []domain.ScheduleBlock{{
		Date:     mustDate(t, "2026-03-10"),
		Start:    mustClock(t, "09:00"),
		End:      mustClock(t, "10:00"),
		TaskName: "standup",
		Type:     domain.BlockMeeting,
	}}}
	uc := NewAddScheduleBlock(schedule)

	_, err := uc.Execute(context.Background(), AddScheduleBlockInput{
		Date:     mustDate(t, "2026-03-11"),
		Start:    mustClock(t, "09:00"),
		End:      mustClock(t, "10:00"),
		TaskName: "standup",
	})

	require.NoError(t, err)
}

func TestAddScheduleBlock_Execute_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   AddScheduleBlockInput
	}{
		{"empty task", AddScheduleBlockInput{
			Date: mustDate(t, "2026-03-10"), Start: mustClock(t, "09:00"), End: mustClock(t, "10:00"),
		}},
		{"end before start", AddScheduleBlockInput{
			Date: mustDate(t, "2026-03-10"), Start: mustClock(t, "10:00"), End: mustClock(t, "09:00"), TaskName: "x",
		}},
		{"unknown type", AddScheduleBlockInput{
			Date: mustDate(t, "2026-03-10"), Start: mustClock(t, "09:00"), End: mustClock(t, "10:00"), TaskName: "x", Type: "party",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := &testutil.MockScheduleRepository{}
			uc := NewAddScheduleBlock(schedule)
			_, err := uc.Execute(context.Background(), tt.in)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Empty(t, schedule.Blocks)
		})
	}
}
