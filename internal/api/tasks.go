package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/prepcoach/prepcoach/internal/domain"
	"github.com/prepcoach/prepcoach/internal/task"
)

// TaskHandler handles plan-generation task endpoints.
type TaskHandler struct {
	*Handler
	events *EventsHandler
}

// NewTaskHandler creates a task handler.
func NewTaskHandler(base *Handler, events *EventsHandler) *TaskHandler {
	return &TaskHandler{Handler: base, events: events}
}

// RegisterRoutes registers task routes.
func (h *TaskHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/tasks", func(r chi.Router) {
		r.Get("/{taskID}", h.GetTask)
		r.Post("/{taskID}/cancel", h.CancelTask)
		r.Get("/{taskID}/events", h.events.ServeHTTP)
	})
}

// taskView is the wire representation of a task.
type taskView struct {
	TaskID         string                `json:"task_id"`
	SessionID      string                `json:"session_id"`
	Status         domain.TaskStatus     `json:"status"`
	DeliveryStatus domain.DeliveryStatus `json:"delivery_status"`
	Result         string                `json:"result,omitempty"`
	FailureReason  string                `json:"failure_reason,omitempty"`
	Attempts       int                   `json:"delivery_attempts"`
	CreatedAt      string                `json:"created_at"`
	UpdatedAt      string                `json:"updated_at"`
}

func viewOf(t *domain.Task) taskView {
	return taskView{
		TaskID:         t.ID,
		SessionID:      t.SessionID,
		Status:         t.Status,
		DeliveryStatus: t.DeliveryStatus,
		Result:         t.Result,
		FailureReason:  t.FailureReason,
		Attempts:       t.Attempts,
		CreatedAt:      t.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      t.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// GetTask returns the current snapshot of a task.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	t, err := h.registry.Get(taskID)
	if errors.Is(err, task.ErrNotFound) {
		Error(w, http.StatusNotFound, "task not found")
		return
	}
	if err != nil {
		slog.Error("failed to load task", "task_id", taskID, "error", err)
		Error(w, http.StatusInternalServerError, "failed to load task")
		return
	}

	JSON(w, http.StatusOK, viewOf(t))
}

// CancelTask cancels a non-terminal task. Cancelling a task that already
// reached a terminal status is a conflict, not an error the caller can fix.
func (h *TaskHandler) CancelTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	err := h.registry.Cancel(r.Context(), taskID)
	switch {
	case errors.Is(err, task.ErrNotFound):
		Error(w, http.StatusNotFound, "task not found")
		return
	case errors.Is(err, task.ErrInvalidTransition):
		Error(w, http.StatusConflict, "task already finished")
		return
	case err != nil:
		slog.Error("failed to cancel task", "task_id", taskID, "error", err)
		Error(w, http.StatusInternalServerError, "failed to cancel task")
		return
	}

	t, err := h.registry.Get(taskID)
	if err != nil {
		Error(w, http.StatusInternalServerError, "failed to load task")
		return
	}
	slog.Info("task cancelled", "task_id", taskID)
	JSON(w, http.StatusOK, viewOf(t))
}
