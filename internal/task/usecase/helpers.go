package usecase

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"ai-task-manager/internal/model"
	"ai-task-manager/internal/task"
	"ai-task-manager/internal/task/classify"
)

// buildRecord assembles the immutable task record. The id and creation
// timestamp are generated here; blank date and time fall back to the
// defaults derived from the text and the current clock.
func (uc *implUseCase) buildRecord(input task.CreateInput, priority model.Priority, analysis classify.Result) model.Task {
	now := time.Now()

	date := input.Date
	if date == "" {
		base := now
		if rel := classify.RelativeDate(input.Text); rel != "" {
			base = uc.dateMath.Parse(rel, now)
		}
		date = uc.dateMath.DateString(base)
	}

	timeOfDay := input.Time
	if timeOfDay == "" {
		timeOfDay = uc.dateMath.TimeString(now)
	}

	return model.Task{
		ID:          newTaskID(),
		Title:       classify.DeriveTitle(input.Text, analysis.Category),
		Description: input.Text,
		Date:        date,
		Time:        timeOfDay,
		Priority:    priority,
		CreatedAt:   now,
		Completed:   false,
		Category:    analysis.Category,
	}
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// newTaskID returns a time-derived, lexicographically sortable id.
// ULIDs from the same process are monotonic within a millisecond.
func newTaskID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
