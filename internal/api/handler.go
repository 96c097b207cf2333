// Package api provides HTTP handlers for the coach API.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/prepcoach/prepcoach/internal/conversation"
	"github.com/prepcoach/prepcoach/internal/task"
)

// Handler provides common handler utilities.
type Handler struct {
	manager  *conversation.Manager
	registry *task.Registry
}

// NewHandler creates a new Handler with common dependencies.
func NewHandler(manager *conversation.Manager, registry *task.Registry) *Handler {
	return &Handler{
		manager:  manager,
		registry: registry,
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
