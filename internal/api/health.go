package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/prepcoach/prepcoach/internal/store"
)

// ModelChecker reports whether the external model service is reachable.
type ModelChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	repo  store.Repository
	model ModelChecker
}

// NewHealthHandler creates a new health handler. model may be nil when no
// model service is configured.
func NewHealthHandler(repo store.Repository, model ModelChecker) *HealthHandler {
	return &HealthHandler{repo: repo, model: model}
}

// Health returns the health status of the API and its dependencies.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := map[string]interface{}{
		"status": "healthy",
		"checks": map[string]string{"api": "ok"},
	}
	statusCode := http.StatusOK
	checks := status["checks"].(map[string]string)

	if err := h.repo.Ping(ctx); err != nil {
		slog.Error("health check failed", "error", err)
		status["status"] = "degraded"
		checks["database"] = "unreachable"
		statusCode = http.StatusServiceUnavailable
	} else {
		checks["database"] = "ok"
	}

	if h.model != nil {
		if err := h.model.Health(ctx); err != nil {
			// A dead model service degrades plan quality but the template
			// fallback keeps the service usable.
			checks["model"] = "unreachable"
		} else {
			checks["model"] = "ok"
		}
	}

	JSON(w, statusCode, status)
}

// RegisterHealth registers the health check route.
func (h *HealthHandler) RegisterHealth(r chi.Router) {
	r.Get("/health", h.Health)
}
