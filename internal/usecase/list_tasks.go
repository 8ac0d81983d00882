package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/timetrack/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	ActiveOnly bool // Limit the result to active tasks
}

// ListTasksOutput contains the listed tasks in file order.
type ListTasksOutput struct {
	Tasks []domain.Task
}

// ListTasks is the use case for reading the task table.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{tasks: tasks}
}

// Execute returns tasks, optionally filtered to active ones.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	tasks, err := uc.tasks.All()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	if !in.ActiveOnly {
		return &ListTasksOutput{Tasks: tasks}, nil
	}

	active := make([]domain.Task, 0, len(tasks))
	for i := range tasks {
		if tasks[i].IsActive() {
			active = append(active, tasks[i])
		}
	}
	return &ListTasksOutput{Tasks: active}, nil
}
