package model

import "time"

// Category is the task category produced by the keyword classifier.
type Category string

const (
	CategoryMeeting       Category = "meeting"
	CategoryCommunication Category = "communication"
	CategoryDocument      Category = "document"
	CategoryPresentation  Category = "presentation"
	CategoryGeneral       Category = "general"
)

// Priority is the user-selected task priority.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the closed priority set.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Urgency is derived from urgency keywords in the task text.
type Urgency string

const (
	UrgencyNormal Urgency = "normal"
	UrgencyHigh   Urgency = "high"
)

// Task is the canonical task record. It is immutable once created;
// an edit is modeled as delete + recreate and yields a new ID.
// The JSON tags define the persisted collection layout.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`       // glyph-prefixed, truncated display title
	Description string    `json:"description"` // verbatim original input text
	Date        string    `json:"date"`        // ISO 8601 date-only, e.g. "2026-08-31"
	Time        string    `json:"time"`        // 24h "HH:MM" local time-of-day
	Priority    Priority  `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
	Completed   bool      `json:"completed"`
	Category    Category  `json:"category"`
}
