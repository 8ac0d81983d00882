package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/timetrack/internal/domain"
)

// AddTaskInput contains the parameters for registering a task.
type AddTaskInput struct {
	Name string // Task name (required, unique)
}

// AddTaskOutput contains the result of registering a task.
type AddTaskOutput struct {
	Task domain.Task // The created task
}

// AddTask is the use case for registering a new task.
type AddTask struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, clock domain.Clock) *AddTask {
	return &AddTask{
		tasks: tasks,
		clock: clock,
	}
}

// Execute registers a task with zero total time.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("task name cannot be empty: %w", domain.ErrValidation)
	}
	if len(name) > domain.MaxTaskNameLen {
		return nil, fmt.Errorf("task name exceeds %d characters: %w", domain.MaxTaskNameLen, domain.ErrValidation)
	}

	existing, err := uc.tasks.All()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	for i := range existing {
		if existing[i].Name == name {
			return nil, fmt.Errorf("task %q: %w", name, domain.ErrDuplicateTask)
		}
	}

	task := domain.Task{
		Name:    name,
		Status:  domain.StatusActive,
		Created: uc.clock.Now(),
	}
	if err := uc.tasks.Append(task); err != nil {
		return nil, fmt.Errorf("append task: %w", err)
	}

	return &AddTaskOutput{Task: task}, nil
}
