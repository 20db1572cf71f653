package sync

import (
	"context"

	"ai-task-manager/pkg/gcalendar"
)

// Calendar is the slice of the calendar client the adapter needs.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Outcome reports the result of a single push. Failures are non-fatal
// notices for the user-facing layer; nothing is retried.
type Outcome struct {
	ID        string // notice id
	TaskID    string
	OK        bool
	Reason    string // failure reason, empty on success
	EventLink string // calendar deep link, empty on failure
}
