package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/timetrack/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	Name string // Task name to delete
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Deleted bool // False when no task with that name exists
}

// DeleteTask is the use case for removing a task from the task table.
// Time-log entries referencing the task are left in place; a later
// recompute will re-append the task with its total.
type DeleteTask struct {
	tasks domain.TaskRepository
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository) *DeleteTask {
	return &DeleteTask{tasks: tasks}
}

// Execute removes the named task. A missing task is reported through the
// output, not as an error.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("task name cannot be empty: %w", domain.ErrValidation)
	}

	tasks, err := uc.tasks.All()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	kept := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Name != name {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tasks) {
		return &DeleteTaskOutput{Deleted: false}, nil
	}

	if err := uc.tasks.ReplaceAll(kept); err != nil {
		return nil, fmt.Errorf("rewrite tasks: %w", err)
	}
	return &DeleteTaskOutput{Deleted: true}, nil
}
