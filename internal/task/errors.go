package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput      = errors.New("task text is empty")
	ErrInvalidPriority = errors.New("priority must be one of low, medium, high")
	ErrTaskNotFound    = errors.New("task not found")
)
