package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ai-task-manager/config"
	_ "ai-task-manager/docs" // Swagger docs
	"ai-task-manager/internal/httpserver"
	"ai-task-manager/internal/middleware"
	"ai-task-manager/internal/model"
	calsync "ai-task-manager/internal/sync"
	taskHTTP "ai-task-manager/internal/task/delivery/http"
	"ai-task-manager/internal/task/repository"
	"ai-task-manager/internal/task/repository/filekv"
	"ai-task-manager/internal/task/repository/sqlitekv"
	"ai-task-manager/internal/task/store"
	"ai-task-manager/internal/task/usecase"
	"ai-task-manager/pkg/datemath"
	"ai-task-manager/pkg/gcalendar"
	"ai-task-manager/pkg/log"
)

// @title       AI Task Manager API
// @description Task intake with keyword classification, persistent storage and Google Calendar sync.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Task Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage: %s (%s)", cfg.Storage.Driver, cfg.Storage.Path)

	// 3. Storage backend + task store
	var backend repository.Backend
	switch cfg.Storage.Driver {
	case "sqlite":
		sqliteBackend, openErr := sqlitekv.Open(cfg.Storage.Path)
		if openErr != nil {
			logger.Errorf(ctx, "Failed to open sqlite storage: %v", openErr)
			return
		}
		defer sqliteBackend.Close()
		backend = sqliteBackend
	default:
		backend = filekv.New(cfg.Storage.Path)
	}

	taskStore := store.New(backend, logger)
	if err := taskStore.Load(ctx); err != nil {
		logger.Errorf(ctx, "Failed to load task collection: %v", err)
		return
	}
	logger.Infof(ctx, "Loaded %d tasks", len(taskStore.List()))

	// 4. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Intake.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Intake.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 5. Google Calendar sync (optional)
	var syncAdapter *calsync.Adapter
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(
			ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate a token")
		} else {
			syncAdapter = calsync.New(calendarClient, cfg.GoogleCalendar.CalendarID, cfg.Intake.Timezone, logger)
			syncAdapter.SetConnected(true)
			go drainOutcomes(ctx, logger, syncAdapter)
			logger.Info(ctx, "Google Calendar sync enabled")
		}
	}

	// 6. Task domain
	var pusher calsync.Pusher
	if syncAdapter != nil {
		pusher = syncAdapter
	}
	taskUC := usecase.New(logger, taskStore, pusher, dateMathParser)
	taskHandler := taskHTTP.New(logger, taskUC, pusher)

	// 7. HTTP server
	mw := middleware.New(logger, cfg.API.RateLimitPerMin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: model.Environment(cfg.Environment.Name),
		Middleware:  mw,
		TaskHandler: taskHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// drainOutcomes surfaces sync notices. A UI would subscribe here; the
// API logs them since sync failures are non-fatal by contract.
func drainOutcomes(ctx context.Context, logger log.Logger, adapter *calsync.Adapter) {
	for {
		select {
		case <-ctx.Done():
			return
		case o := <-adapter.Outcomes():
			if o.OK {
				logger.Infof(ctx, "Calendar sync ok: task=%s event=%s", o.TaskID, o.EventLink)
			} else {
				logger.Warnf(ctx, "Calendar sync failed: task=%s reason=%s", o.TaskID, o.Reason)
			}
		}
	}
}
