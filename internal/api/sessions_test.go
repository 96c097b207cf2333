package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/prepcoach/prepcoach/internal/conversation"
	"github.com/prepcoach/prepcoach/internal/domain"
	"github.com/prepcoach/prepcoach/internal/task"
)

// stubPlanner satisfies conversation.PlanStarter for handler tests.
type stubPlanner struct {
	nextID string
	active map[string]string
}

func newStubPlanner() *stubPlanner {
	return &stubPlanner{nextID: "task-1", active: make(map[string]string)}
}

func (s *stubPlanner) Start(_ context.Context, sess *domain.Session, _ *domain.Callback) (string, error) {
	if id, ok := s.active[sess.ID]; ok {
		return id, fmt.Errorf("session %s: %w", sess.ID, task.ErrDuplicateActiveTask)
	}
	s.active[sess.ID] = s.nextID
	return s.nextID, nil
}

func (s *stubPlanner) Await(_ context.Context, id string) (*domain.Task, error) {
	return &domain.Task{ID: id, Status: domain.TaskCompleted, Result: "# Plan"}, nil
}

func (s *stubPlanner) Active(sessionID string) (string, bool) {
	id, ok := s.active[sessionID]
	return id, ok
}

func (s *stubPlanner) CancelForSession(_ context.Context, sessionID string) {
	delete(s.active, sessionID)
}

func newTestRouter() chi.Router {
	manager := conversation.NewManager(conversation.NewExtractor(nil), newStubPlanner(), nil, true)
	registry := task.NewRegistry(nil)

	base := NewHandler(manager, registry)
	r := chi.NewRouter()
	NewSessionHandler(base).RegisterRoutes(r)
	return r
}

func postTurn(t *testing.T, r http.Handler, sessionID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+sessionID+"/turns", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPostTurnAdvancesPhase(t *testing.T) {
	r := newTestRouter()

	w := postTurn(t, r, "s1", `{"text": "I want to prepare for algorithms interviews"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var res conversation.TurnResult
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if res.Phase != domain.PhaseSkillLevel {
		t.Errorf("Expected phase skill_level, got %q", res.Phase)
	}
	if res.Prompt == "" {
		t.Error("Expected a prompt in the response")
	}
}

func TestPostTurnThroughGeneration(t *testing.T) {
	r := newTestRouter()

	turns := []string{
		`{"text": "interview prep for system design"}`,
		`{"text": "advanced"}`,
		`{"text": "balanced"}`,
	}
	for _, body := range turns {
		if w := postTurn(t, r, "s1", body); w.Code != http.StatusOK {
			t.Fatalf("Turn failed with %d: %s", w.Code, w.Body.String())
		}
	}

	w := postTurn(t, r, "s1", `{"text": "yes", "callback_url": "https://example.com/hook"}`)
	if w.Code != http.StatusAccepted {
		t.Fatalf("Expected 202 when generation starts, got %d", w.Code)
	}
	var res conversation.TurnResult
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.Phase != domain.PhaseGenerating {
		t.Errorf("Expected generating, got %q", res.Phase)
	}
	if res.TaskID != "task-1" {
		t.Errorf("Expected task ID in response, got %q", res.TaskID)
	}
}

func TestPostTurnValidation(t *testing.T) {
	r := newTestRouter()

	w := postTurn(t, r, "s1", `{"text": ""}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for empty text, got %d", w.Code)
	}

	w = postTurn(t, r, "s1", `not json`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed body, got %d", w.Code)
	}

	// A bare reset with no text is valid.
	w = postTurn(t, r, "s1", `{"reset": true}`)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for bare reset, got %d", w.Code)
	}
}

func TestGetSession(t *testing.T) {
	r := newTestRouter()

	postTurn(t, r, "s1", `{"text": "interview prep for databases"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/sessions/s1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var got map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got["session_id"] != "s1" {
		t.Errorf("Expected session_id s1, got %v", got["session_id"])
	}
	if got["phase"] != string(domain.PhaseSkillLevel) {
		t.Errorf("Expected phase skill_level, got %v", got["phase"])
	}
}

func TestGetSessionNotFound(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/sessions/ghost", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}
