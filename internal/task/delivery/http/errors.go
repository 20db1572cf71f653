package http

import (
	"errors"

	"ai-task-manager/internal/task"
	"ai-task-manager/internal/task/store"
	pkgErrors "ai-task-manager/pkg/errors"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return pkgErrors.NewHTTPError(400, "task text must not be empty")
	case errors.Is(err, task.ErrInvalidPriority):
		return pkgErrors.NewHTTPError(400, "priority must be one of low, medium, high")
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(404, "task not found")
	case errors.Is(err, store.ErrPersist):
		// The mutation is applied in memory; only the backend write failed.
		return pkgErrors.NewHTTPError(500, "task accepted but not persisted; retry later")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
