package usecase

import (
	calsync "ai-task-manager/internal/sync"
	"ai-task-manager/internal/task/store"
	"ai-task-manager/pkg/datemath"
	pkgLog "ai-task-manager/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	store    *store.Store
	pusher   calsync.Pusher // nil when calendar sync is not configured
	dateMath *datemath.Parser
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	taskStore *store.Store,
	pusher calsync.Pusher,
	dateMath *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:        l,
		store:    taskStore,
		pusher:   pusher,
		dateMath: dateMath,
	}
}
