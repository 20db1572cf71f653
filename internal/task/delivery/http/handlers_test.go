package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-task-manager/internal/middleware"
	"ai-task-manager/internal/model"
	taskHTTP "ai-task-manager/internal/task/delivery/http"
	"ai-task-manager/internal/task/store"
	"ai-task-manager/internal/task/usecase"
	"ai-task-manager/pkg/datemath"
	pkgLog "ai-task-manager/pkg/log"
	"ai-task-manager/pkg/response"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Info(ctx context.Context, args ...any)                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Error(ctx context.Context, args ...any)                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

var _ pkgLog.Logger = mockLogger{}

type memBackend struct{ payload []byte }

func (m *memBackend) Load(ctx context.Context) ([]byte, error) { return m.payload, nil }
func (m *memBackend) Save(ctx context.Context, payload []byte) error {
	m.payload = append([]byte(nil), payload...)
	return nil
}

type mockPusher struct{ connected bool }

func (m *mockPusher) Push(t model.Task) {}
func (m *mockPusher) Connected() bool   { return m.connected }

// newRouter wires the full delivery stack over an in-memory backend.
func newRouter(t *testing.T, pusher *mockPusher) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := mockLogger{}
	s := store.New(&memBackend{}, l)
	require.NoError(t, s.Load(context.Background()))

	dm, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	var h taskHTTP.Handler
	if pusher == nil {
		h = taskHTTP.New(l, usecase.New(l, s, nil, dm), nil)
	} else {
		h = taskHTTP.New(l, usecase.New(l, s, pusher, dm), pusher)
	}

	engine := gin.New()
	taskHTTP.RegisterRoutes(engine.Group("/api/v1"), h, middleware.New(l, 0))
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body struct {
		ErrorCode int            `json:"error_code"`
		Message   string         `json:"message"`
		Data      map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Data
}

func TestCreateTaskEndpoint(t *testing.T) {
	engine := newRouter(t, nil)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/tasks", gin.H{
		"text":     "Meeting dengan tim jam 14:00 besok",
		"priority": "high",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decodeData(t, w)
	taskBody, ok := data["task"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, taskBody["id"])
	assert.Equal(t, "📅 Meeting dengan tim jam 14:00 besok", taskBody["title"])
	assert.Equal(t, "high", taskBody["priority"])
	assert.Equal(t, "meeting", taskBody["category"])

	analysis, ok := data["analysis"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "meeting", analysis["category"])
	assert.Equal(t, "normal", analysis["urgency"])

	// created_at is presented in the envelope's datetime layout.
	createdAt, ok := taskBody["created_at"].(string)
	require.True(t, ok)
	_, err := time.Parse(response.DateTimeFormat, createdAt)
	assert.NoError(t, err)
}

func TestCreateTaskValidation(t *testing.T) {
	engine := newRouter(t, nil)

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing text", gin.H{"priority": "high"}},
		{"bad date", gin.H{"text": "tugas", "date": "31-08-2026"}},
		{"bad time", gin.H{"text": "tugas", "time": "25:99"}},
		{"bad priority", gin.H{"text": "tugas", "priority": "critical"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, engine, http.MethodPost, "/api/v1/tasks", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestListTasksEndpoint(t *testing.T) {
	engine := newRouter(t, nil)

	for _, text := range []string{"Tulis laporan", "Rapat tim"} {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/tasks", gin.H{"text": text})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, engine, http.MethodGet, "/api/v1/tasks", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	tasks, ok := data["tasks"].([]any)
	require.True(t, ok)
	require.Len(t, tasks, 2)
	assert.EqualValues(t, 2, data["total"])

	// Most recent first.
	first := tasks[0].(map[string]any)
	assert.Equal(t, "Rapat tim", first["description"])

	w = doJSON(t, engine, http.MethodGet, "/api/v1/tasks?search=laporan", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeData(t, w)
	assert.Len(t, data["tasks"].([]any), 1)
	assert.EqualValues(t, 2, data["total"])
}

func TestStatsEndpoint(t *testing.T) {
	engine := newRouter(t, nil)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/tasks", gin.H{
		"text":     "Tugas penting",
		"date":     "2026-08-31",
		"priority": "high",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/tasks/stats?date=2026-08-31", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.EqualValues(t, 1, data["total"])
	assert.EqualValues(t, 1, data["dueToday"])
	assert.EqualValues(t, 1, data["highPriorityCount"])
}

func TestUpdateEndpoint(t *testing.T) {
	engine := newRouter(t, nil)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/tasks", gin.H{"text": "Tulis laporan"})
	require.Equal(t, http.StatusOK, w.Code)
	created := decodeData(t, w)["task"].(map[string]any)

	path := fmt.Sprintf("/api/v1/tasks/%s", created["id"])
	w = doJSON(t, engine, http.MethodPut, path, gin.H{"text": "Rapat pengganti"})
	require.Equal(t, http.StatusOK, w.Code)

	updated := decodeData(t, w)["task"].(map[string]any)
	assert.NotEqual(t, created["id"], updated["id"])
	assert.Equal(t, "meeting", updated["category"])
}

func TestUpdateWhitespaceTextKeepsTask(t *testing.T) {
	engine := newRouter(t, nil)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/tasks", gin.H{"text": "Tulis laporan"})
	require.Equal(t, http.StatusOK, w.Code)
	id := decodeData(t, w)["task"].(map[string]any)["id"].(string)

	// Whitespace passes the binding's required check but is rejected
	// by the pipeline; the original record must survive.
	w = doJSON(t, engine, http.MethodPut, "/api/v1/tasks/"+id, gin.H{"text": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/tasks", nil)
	tasks := decodeData(t, w)["tasks"].([]any)
	require.Len(t, tasks, 1)
	assert.Equal(t, id, tasks[0].(map[string]any)["id"])
}

func TestUpdateMissingTaskEndpoint(t *testing.T) {
	engine := newRouter(t, nil)

	w := doJSON(t, engine, http.MethodPut, "/api/v1/tasks/unknown", gin.H{"text": "apa saja"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteEndpoint(t *testing.T) {
	engine := newRouter(t, nil)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/tasks", gin.H{"text": "Tugas sementara"})
	require.Equal(t, http.StatusOK, w.Code)
	id := decodeData(t, w)["task"].(map[string]any)["id"].(string)

	w = doJSON(t, engine, http.MethodDelete, "/api/v1/tasks/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/tasks", nil)
	data := decodeData(t, w)
	assert.Empty(t, data["tasks"])

	// Deleting an unknown id is still OK.
	w = doJSON(t, engine, http.MethodDelete, "/api/v1/tasks/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSyncStatusEndpoint(t *testing.T) {
	t.Run("no calendar configured", func(t *testing.T) {
		engine := newRouter(t, nil)

		w := doJSON(t, engine, http.MethodGet, "/api/v1/sync/status", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, decodeData(t, w)["connected"])
	})

	t.Run("connected", func(t *testing.T) {
		engine := newRouter(t, &mockPusher{connected: true})

		w := doJSON(t, engine, http.MethodGet, "/api/v1/sync/status", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decodeData(t, w)["connected"])
	})
}
