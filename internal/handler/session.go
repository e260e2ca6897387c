package handler

import (
	"log/slog"
	"net/http"

	"changelog/internal/domain/services"
	"changelog/internal/httputil"
)

// SessionHandler handles signin HTTP requests
type SessionHandler struct {
	service services.SessionService
	logger  *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(service services.SessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		logger:  logger,
	}
}

// Signin verifies credentials and returns the user with a session token
// POST /session/signin
func (h *SessionHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req services.SigninRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.service.Signin(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err, "Internal server error")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, sessionResponse{User: user, Token: token})
}
