package http

import (
	"github.com/gin-gonic/gin"

	calsync "ai-task-manager/internal/sync"
	"ai-task-manager/internal/task"
	pkgLog "ai-task-manager/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Stats(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	SyncStatus(c *gin.Context)
}

type handler struct {
	l      pkgLog.Logger
	uc     task.UseCase
	pusher calsync.Pusher // nil when calendar sync is not configured
}

// New creates a new HTTP handler for the task domain.
func New(l pkgLog.Logger, uc task.UseCase, pusher calsync.Pusher) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		pusher: pusher,
	}
}
