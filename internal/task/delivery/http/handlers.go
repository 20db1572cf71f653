package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-manager/pkg/response"
)

// Create godoc
// @Summary     Create a task from free text
// @Description Classifies the text, derives a display title and stores the task. When a calendar is connected the task is mirrored in the background.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task intent"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns the collection, most recently added first, optionally filtered by priority and a search term.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       priority query string false "Filter by priority (low/medium/high)"
// @Param       search   query string false "Case-insensitive match on title and description"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Stats godoc
// @Summary     Collection statistics
// @Description Returns total, due-today and high-priority counts. The reference date defaults to today.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       date query string false "Reference date (YYYY-MM-DD)"
// @Success     200 {object} task.StatsOutput
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStatsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Stats(ctx, req.Date)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, output)
}

// Update godoc
// @Summary     Replace a task
// @Description Edits are destructive-recreate: the old record is removed and the new intent goes through the intake pipeline again, yielding a new id.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "New task intent"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task by id. Unknown ids are a no-op.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// SyncStatus godoc
// @Summary     Calendar sync status
// @Description Reports whether the Google Calendar connection is active.
// @Tags        Sync
// @Accept      json
// @Produce     json
// @Success     200 {object} syncStatusResp
// @Router      /api/v1/sync/status [GET]
func (h *handler) SyncStatus(c *gin.Context) {
	connected := h.pusher != nil && h.pusher.Connected()
	response.OK(c, syncStatusResp{Connected: connected})
}
