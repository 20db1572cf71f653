package usecase

import (
	"context"
	"strings"

	"ai-task-manager/internal/model"
	"ai-task-manager/internal/task"
)

// List returns the collection snapshot, most recent first, optionally
// narrowed by priority and a case-insensitive search term.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	records := uc.store.List()
	total := len(records)

	if input.Priority == "" && input.Search == "" {
		return task.ListOutput{Tasks: records, Total: total}, nil
	}

	term := strings.ToLower(input.Search)
	filtered := make([]model.Task, 0, len(records))
	for _, r := range records {
		if input.Priority != "" && string(r.Priority) != input.Priority {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(r.Title), term) &&
			!strings.Contains(strings.ToLower(r.Description), term) {
			continue
		}
		filtered = append(filtered, r)
	}

	return task.ListOutput{Tasks: filtered, Total: total}, nil
}
