package task

import (
	"ai-task-manager/internal/model"
	"ai-task-manager/internal/task/classify"
)

// CreateInput is the input for the task intake pipeline.
type CreateInput struct {
	Text     string         // free task text (typed or transcribed speech)
	Date     string         // ISO date; empty defaults to today, or tomorrow when the text says so
	Time     string         // "HH:MM"; empty defaults to the current time
	Priority model.Priority // empty defaults to medium
}

// CreateOutput is the result of creating a task.
type CreateOutput struct {
	Task     model.Task
	Analysis classify.Result // shown to the user alongside the created task
}

// UpdateInput identifies the task to replace and carries the new intent.
// The edit is destructive-recreate: the returned record has a new ID.
type UpdateInput struct {
	ID       string
	Text     string
	Date     string
	Time     string
	Priority model.Priority
}

// UpdateOutput carries the recreated record.
type UpdateOutput struct {
	Task     model.Task
	Analysis classify.Result
}

// ListInput filters the collection snapshot.
type ListInput struct {
	Priority string // low|medium|high; empty means all
	Search   string // case-insensitive match on title and description
}

// ListOutput is the filtered, ordered snapshot.
type ListOutput struct {
	Tasks []model.Task
	Total int // collection size before filtering
}

// StatsOutput is the summary over the current collection.
type StatsOutput struct {
	Total             int `json:"total"`
	DueToday          int `json:"dueToday"`
	HighPriorityCount int `json:"highPriorityCount"`
}
