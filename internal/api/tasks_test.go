package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/prepcoach/prepcoach/internal/domain"
	"github.com/prepcoach/prepcoach/internal/task"
)

func newTaskRouter(t *testing.T) (chi.Router, *task.Registry) {
	t.Helper()
	registry := task.NewRegistry(nil)
	base := NewHandler(nil, registry)
	events := NewEventsHandler(registry, "", true)

	r := chi.NewRouter()
	NewTaskHandler(base, events).RegisterRoutes(r)
	return r, registry
}

func TestGetTask(t *testing.T) {
	r, registry := newTaskRouter(t)
	ctx := context.Background()

	id, err := registry.Create(ctx, "s1", nil)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/"+id, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var got taskView
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.TaskID != id {
		t.Errorf("Expected task ID %q, got %q", id, got.TaskID)
	}
	if got.Status != domain.TaskPending {
		t.Errorf("Expected pending, got %q", got.Status)
	}
}

func TestGetTaskNotFound(t *testing.T) {
	r, _ := newTaskRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/ghost", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestCancelTask(t *testing.T) {
	r, registry := newTaskRouter(t)
	ctx := context.Background()

	id, err := registry.Create(ctx, "s1", nil)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/"+id+"/cancel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var got taskView
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Status != domain.TaskCancelled {
		t.Errorf("Expected cancelled, got %q", got.Status)
	}

	// Cancelling a settled task conflicts.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/tasks/"+id+"/cancel", nil))
	if w.Code != http.StatusConflict {
		t.Errorf("Expected 409 for repeated cancel, got %d", w.Code)
	}
}

func TestCancelTaskNotFound(t *testing.T) {
	r, _ := newTaskRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/ghost/cancel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestEventsUnknownTask(t *testing.T) {
	r, _ := newTaskRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/ghost/events", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}
