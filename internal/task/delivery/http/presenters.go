package http

import (
	"ai-task-manager/internal/model"
	"ai-task-manager/internal/task"
	"ai-task-manager/internal/task/classify"
	"ai-task-manager/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Text     string `json:"text"     binding:"required"`
	Date     string `json:"date"     binding:"omitempty,datetime=2006-01-02"`
	Time     string `json:"time"     binding:"omitempty,datetime=15:04"`
	Priority string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Text:     r.Text,
		Date:     r.Date,
		Time:     r.Time,
		Priority: model.Priority(r.Priority),
	}
}

// ---

type updateReq struct {
	ID       string `json:"-"` // populated from URI param
	Text     string `json:"text"     binding:"required"`
	Date     string `json:"date"     binding:"omitempty,datetime=2006-01-02"`
	Time     string `json:"time"     binding:"omitempty,datetime=15:04"`
	Priority string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:       r.ID,
		Text:     r.Text,
		Date:     r.Date,
		Time:     r.Time,
		Priority: model.Priority(r.Priority),
	}
}

// ---

type listReq struct {
	Priority string `form:"priority" binding:"omitempty,oneof=low medium high"`
	Search   string `form:"search"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Priority: r.Priority,
		Search:   r.Search,
	}
}

// ---

type statsReq struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// --- Response DTOs ---

type taskResp struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Priority    string            `json:"priority"`
	CreatedAt   response.DateTime `json:"created_at"`
	Completed   bool              `json:"completed"`
	Category    string            `json:"category"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Date:        t.Date,
		Time:        t.Time,
		Priority:    string(t.Priority),
		CreatedAt:   response.DateTime(t.CreatedAt),
		Completed:   t.Completed,
		Category:    string(t.Category),
	}
}

type analysisResp struct {
	Category       string   `json:"category"`
	Urgency        string   `json:"urgency"`
	ExtractedFacts []string `json:"extracted_facts"`
	Suggestions    []string `json:"suggestions"`
}

func newAnalysisResp(r classify.Result) analysisResp {
	return analysisResp{
		Category:       string(r.Category),
		Urgency:        string(r.Urgency),
		ExtractedFacts: r.ExtractedFacts,
		Suggestions:    r.Suggestions,
	}
}

type createResp struct {
	Task     taskResp     `json:"task"`
	Analysis analysisResp `json:"analysis"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{
		Task:     newTaskResp(out.Task),
		Analysis: newAnalysisResp(out.Analysis),
	}
}

type updateResp struct {
	Task     taskResp     `json:"task"` // carries the new id
	Analysis analysisResp `json:"analysis"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{
		Task:     newTaskResp(out.Task),
		Analysis: newAnalysisResp(out.Analysis),
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"` // after filtering
	Total int        `json:"total"` // collection size
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks: tasks,
		Count: len(tasks),
		Total: out.Total,
	}
}

type syncStatusResp struct {
	Connected bool `json:"connected"`
}
