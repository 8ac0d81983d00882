package domain

import "errors"

// Domain errors. Specific failures wrap one of these so callers can match
// the category with errors.Is while still seeing which field was at fault.
var (
	ErrValidation       = errors.New("invalid input")
	ErrDuplicateTask    = errors.New("task already exists")
	ErrScheduleConflict = errors.New("schedule block conflicts with an existing block")
	ErrTaskNotFound     = errors.New("task not found")
	ErrBlockNotFound    = errors.New("schedule block not found")
)
