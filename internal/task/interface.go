package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create classifies the raw text, derives the display title and adds
	// the assembled record to the store. Calendar sync, when connected,
	// runs in the background and never affects the outcome.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// Update replaces a task: the old record is removed and a new one is
	// created from the supplied intent. The new record has a new ID.
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)

	// Delete removes the task with the given id. Missing ids are a no-op.
	Delete(ctx context.Context, id string) error

	// List returns the ordered collection snapshot, optionally filtered.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// Stats computes summary counts against the given reference date
	// ("2006-01-02"); empty means today.
	Stats(ctx context.Context, referenceDate string) (StatsOutput, error)
}
