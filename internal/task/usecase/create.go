package usecase

import (
	"context"
	"strings"

	"ai-task-manager/internal/model"
	"ai-task-manager/internal/task"
	"ai-task-manager/internal/task/classify"
)

// Create runs the intake pipeline: classify the text, derive the title,
// assemble the record and add it to the store. When the calendar is
// connected the record is pushed in the background; the push outcome
// never affects the returned result.
//
// On a persistence failure the returned output still carries the record:
// the in-memory collection reflects the mutation and only the backend
// write needs retrying.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.CreateOutput{}, task.ErrEmptyInput
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.Valid() {
		return task.CreateOutput{}, task.ErrInvalidPriority
	}

	analysis := classify.Classify(input.Text)
	record := uc.buildRecord(input, priority, analysis)

	out := task.CreateOutput{Task: record, Analysis: analysis}

	if err := uc.store.Add(ctx, record); err != nil {
		uc.l.Errorf(ctx, "Create: persist failed for task %s: %v", record.ID, err)
		return out, err
	}

	uc.l.Infof(ctx, "Create: task %s category=%s urgency=%s", record.ID, record.Category, analysis.Urgency)

	if uc.pusher != nil && uc.pusher.Connected() {
		uc.pusher.Push(record)
	}

	return out, nil
}
