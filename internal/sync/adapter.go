package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ai-task-manager/internal/model"
	"ai-task-manager/pkg/gcalendar"
)

// Push mirrors the record to the calendar in a background goroutine.
// It is called at most once per created record and only while connected.
// Failure never rolls back or retries task creation.
func (a *Adapter) Push(t model.Task) {
	if !a.Connected() || a.calendar == nil {
		return
	}

	go func(t model.Task) {
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()

		start, end, err := a.eventWindow(t)
		if err != nil {
			a.report(ctx, Outcome{TaskID: t.ID, Reason: err.Error()})
			return
		}

		event, err := a.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  a.calendarID,
			Summary:     t.Title,
			Description: t.Description,
			StartTime:   start,
			EndTime:     end,
			Timezone:    a.timezone,
		})
		if err != nil {
			a.report(ctx, Outcome{TaskID: t.ID, Reason: err.Error()})
			return
		}

		a.report(ctx, Outcome{TaskID: t.ID, OK: true, EventLink: event.HtmlLink})
	}(t)
}

// eventWindow derives the event window from the record's date and time:
// a fixed one-hour duration. A start in the last hour of the day rolls
// the end into the next day.
func (a *Adapter) eventWindow(t model.Task) (time.Time, time.Time, error) {
	loc, err := time.LoadLocation(a.timezone)
	if err != nil {
		loc = time.Local
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", t.Date+" "+t.Time, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date/time %q %q: %w", t.Date, t.Time, err)
	}

	return start, start.Add(time.Hour), nil
}

// report publishes the outcome without ever blocking a push. When the
// buffer is full the oldest notice is dropped.
func (a *Adapter) report(ctx context.Context, o Outcome) {
	o.ID = uuid.NewString()

	a.l.Debugf(ctx, "sync: task %s outcome ok=%t", o.TaskID, o.OK)

	for {
		select {
		case a.outcomes <- o:
			return
		default:
			select {
			case <-a.outcomes:
			default:
			}
		}
	}
}
