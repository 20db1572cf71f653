package usecase

import (
	"context"
	"time"

	"ai-task-manager/internal/model"
	"ai-task-manager/internal/task"
)

// ComputeStats derives the summary counts from a collection snapshot.
// dueToday compares the record date against referenceDate by exact
// string equality, date-only, no timezone normalization.
func ComputeStats(records []model.Task, referenceDate string) task.StatsOutput {
	out := task.StatsOutput{Total: len(records)}

	for _, r := range records {
		if r.Date == referenceDate {
			out.DueToday++
		}
		if r.Priority == model.PriorityHigh {
			out.HighPriorityCount++
		}
	}

	return out
}

// Stats computes the summary over the current collection. An empty
// reference date means today in the configured timezone.
func (uc *implUseCase) Stats(ctx context.Context, referenceDate string) (task.StatsOutput, error) {
	if referenceDate == "" {
		referenceDate = uc.dateMath.DateString(time.Now())
	}
	return ComputeStats(uc.store.List(), referenceDate), nil
}
