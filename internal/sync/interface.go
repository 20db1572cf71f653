package sync

import "ai-task-manager/internal/model"

// Pusher mirrors created task records to an external calendar.
type Pusher interface {
	// Push schedules a best-effort, at-most-once mirror of the record.
	// It returns immediately; the outcome is reported asynchronously.
	Push(t model.Task)

	// Connected reports whether the calendar connection is active.
	Connected() bool
}
