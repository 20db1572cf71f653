package usecase

import (
	"context"
	"strings"

	"ai-task-manager/internal/task"
)

// Update is destructive-recreate: the old record is removed and the new
// intent goes through the full intake pipeline again. Editors must not
// rely on id stability; the returned record has a fresh id.
//
// The replacement intent is validated before the old record is removed,
// so a rejected edit never loses the original.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (task.UpdateOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.UpdateOutput{}, task.ErrEmptyInput
	}
	if input.Priority != "" && !input.Priority.Valid() {
		return task.UpdateOutput{}, task.ErrInvalidPriority
	}

	if _, ok := uc.store.Get(input.ID); !ok {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}

	if err := uc.store.Remove(ctx, input.ID); err != nil {
		uc.l.Errorf(ctx, "Update: remove %s failed: %v", input.ID, err)
		return task.UpdateOutput{}, err
	}

	out, err := uc.Create(ctx, task.CreateInput{
		Text:     input.Text,
		Date:     input.Date,
		Time:     input.Time,
		Priority: input.Priority,
	})
	if err != nil {
		return task.UpdateOutput{Task: out.Task, Analysis: out.Analysis}, err
	}

	uc.l.Infof(ctx, "Update: task %s recreated as %s", input.ID, out.Task.ID)
	return task.UpdateOutput{Task: out.Task, Analysis: out.Analysis}, nil
}

// Delete removes the record with the given id; missing ids are a no-op.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.store.Remove(ctx, id); err != nil {
		uc.l.Errorf(ctx, "Delete: remove %s failed: %v", id, err)
		return err
	}
	return nil
}
