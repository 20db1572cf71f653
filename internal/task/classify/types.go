package classify

import "ai-task-manager/internal/model"

// Result is the transient outcome of classifying raw task text.
// It is consumed during task creation and never persisted.
type Result struct {
	Category       model.Category
	Urgency        model.Urgency
	ExtractedFacts []string // human-readable, in detection order
	Suggestions    []string // fixed per-category preparation hints
}

// categoryRule binds a category to its trigger keywords and the
// suggestions reported when the rule fires.
type categoryRule struct {
	category    model.Category
	keywords    []string
	suggestions []string
}

// dateRule binds relative-date keywords to the reported fact.
type dateRule struct {
	keywords []string
	fact     string
}
