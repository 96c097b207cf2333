package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/prepcoach/prepcoach/internal/conversation"
	"github.com/prepcoach/prepcoach/internal/domain"
)

// SessionHandler handles the conversation endpoints.
type SessionHandler struct {
	*Handler
}

// NewSessionHandler creates a session handler.
func NewSessionHandler(base *Handler) *SessionHandler {
	return &SessionHandler{Handler: base}
}

// RegisterRoutes registers session routes.
func (h *SessionHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/sessions", func(r chi.Router) {
		r.Post("/{sessionID}/turns", h.PostTurn)
		r.Get("/{sessionID}", h.GetSession)
	})
}

// turnRequest is the body of a turn submission.
type turnRequest struct {
	Text          string   `json:"text"`
	Reset         bool     `json:"reset,omitempty"`
	CallbackURL   string   `json:"callback_url,omitempty"`
	CallbackToken string   `json:"callback_token,omitempty"`
	TargetRole    string   `json:"target_role,omitempty"`
	Companies     []string `json:"companies,omitempty"`
}

// PostTurn feeds one turn of user text into the session's conversation.
func (h *SessionHandler) PostTurn(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		Error(w, http.StatusBadRequest, "session id required")
		return
	}

	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" && !req.Reset {
		Error(w, http.StatusBadRequest, "text required")
		return
	}

	opts := conversation.TurnOptions{
		Reset:      req.Reset,
		TargetRole: req.TargetRole,
		Companies:  req.Companies,
	}
	if req.CallbackURL != "" {
		opts.Callback = &domain.Callback{URL: req.CallbackURL, Token: req.CallbackToken}
	}

	result, err := h.manager.HandleTurn(r.Context(), sessionID, req.Text, opts)
	if err != nil {
		slog.Error("turn failed", "session_id", sessionID, "error", err)
		Error(w, http.StatusInternalServerError, "failed to process turn")
		return
	}

	// A turn that kicked off asynchronous generation is accepted, not done.
	status := http.StatusOK
	if result.TaskID != "" && result.Phase == domain.PhaseGenerating {
		status = http.StatusAccepted
	}
	JSON(w, status, result)
}

// GetSession returns a snapshot of the session's conversation state.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	sess, err := h.manager.Get(r.Context(), sessionID)
	if errors.Is(err, conversation.ErrSessionNotFound) {
		Error(w, http.StatusNotFound, "session not found")
		return
	}
	if err != nil {
		slog.Error("failed to load session", "session_id", sessionID, "error", err)
		Error(w, http.StatusInternalServerError, "failed to load session")
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"session_id": sess.ID,
		"phase":      sess.Phase,
		"selections": sess.Selections,
		"turns":      len(sess.History),
		"created_at": sess.CreatedAt,
		"updated_at": sess.UpdatedAt,
	})
}
