package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"

	"github.com/prepcoach/prepcoach/internal/task"
)

// EventsHandler streams task state changes over a WebSocket. Clients get the
// current snapshot on connect and a message for every later change until the
// task settles or they disconnect.
type EventsHandler struct {
	registry      *task.Registry
	allowedOrigin string
	isDev         bool
}

// NewEventsHandler creates a new WebSocket events handler.
func NewEventsHandler(registry *task.Registry, allowedOrigin string, isDev bool) *EventsHandler {
	return &EventsHandler{
		registry:      registry,
		allowedOrigin: allowedOrigin,
		isDev:         isDev,
	}
}

// ServeHTTP implements http.Handler for WebSocket upgrade.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	if !h.checkOrigin(r) {
		http.Error(w, "origin not allowed", http.StatusForbidden)
		return
	}

	ch, stop, err := h.registry.Watch(taskID)
	if errors.Is(err, task.ErrNotFound) {
		Error(w, http.StatusNotFound, "task not found")
		return
	}
	if err != nil {
		slog.Error("failed to watch task", "task_id", taskID, "error", err)
		Error(w, http.StatusInternalServerError, "failed to watch task")
		return
	}
	defer stop()

	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("failed to accept WebSocket", "error", err, "task_id", taskID)
		return
	}
	defer func() {
		if closeErr := ws.Close(websocket.StatusNormalClosure, "stream ended"); closeErr != nil {
			slog.Debug("failed to close websocket", "error", closeErr, "task_id", taskID)
		}
	}()

	// CloseRead gives us a context that is cancelled when the client goes
	// away; the stream is write-only from our side.
	ctx := ws.CloseRead(r.Context())

	// Initial snapshot, so a client that connects after the last change
	// still sees the current state.
	t, err := h.registry.Get(taskID)
	if err != nil {
		return
	}
	if err := h.writeJSON(ws, viewOf(t)); err != nil {
		return
	}
	if t.Status.Terminal() && t.DeliveryStatus.Settled() {
		return
	}

	for {
		select {
		case snap, ok := <-ch:
			if !ok {
				return
			}
			if err := h.writeJSON(ws, viewOf(snap)); err != nil {
				slog.Debug("WebSocket write error", "error", err, "task_id", taskID)
				return
			}
			if snap.Status.Terminal() && snap.DeliveryStatus.Settled() {
				return
			}
		case <-ctx.Done():
			slog.Debug("WebSocket closed by client", "task_id", taskID)
			return
		}
	}
}

func (h *EventsHandler) checkOrigin(r *http.Request) bool {
	if h.isDev {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" || h.allowedOrigin == "*" || h.allowedOrigin == "" {
		return true
	}
	if origin == h.allowedOrigin {
		return true
	}
	slog.Warn("WebSocket origin rejected", "origin", origin, "allowed", h.allowedOrigin)
	return false
}

func (h *EventsHandler) writeJSON(ws *websocket.Conn, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return ws.Write(context.Background(), websocket.MessageText, data)
}
