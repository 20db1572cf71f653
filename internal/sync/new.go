package sync

import (
	"sync/atomic"
	"time"

	pkgLog "ai-task-manager/pkg/log"
)

const (
	// pushTimeout bounds the background calendar call.
	pushTimeout = 2 * time.Minute

	// outcomeBuffer is the outcome channel capacity. When no consumer
	// drains the channel, older notices are dropped rather than blocking
	// a push.
	outcomeBuffer = 32
)

// Adapter pushes task records to Google Calendar in the background.
type Adapter struct {
	calendar   Calendar
	calendarID string
	timezone   string
	l          pkgLog.Logger

	connected atomic.Bool
	outcomes  chan Outcome
}

// New creates a calendar sync adapter. The connection starts disabled;
// the auth layer flips it via SetConnected once a token is in place.
func New(calendar Calendar, calendarID, timezone string, l pkgLog.Logger) *Adapter {
	return &Adapter{
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
		l:          l,
		outcomes:   make(chan Outcome, outcomeBuffer),
	}
}

// Outcomes exposes the push results. The channel is never closed; the
// caller may ignore it entirely.
func (a *Adapter) Outcomes() <-chan Outcome {
	return a.outcomes
}

// Connected reports whether pushes are currently attempted.
func (a *Adapter) Connected() bool {
	return a.connected.Load()
}

// SetConnected flips the connection flag maintained by the auth layer.
func (a *Adapter) SetConnected(v bool) {
	a.connected.Store(v)
}
