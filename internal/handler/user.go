package handler

import (
	"log/slog"
	"net/http"

	"changelog/internal/domain/services"
	"changelog/internal/httputil"
)

// UserHandler handles user HTTP requests
type UserHandler struct {
	service services.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(service services.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// Signup creates a new user and returns it with a session token
// POST /users
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req services.SignupRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err, "Error creating user")
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, sessionResponse{User: user, Token: token})
}

// ListUsers retrieves all users
// GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		handleError(w, h.logger, err, "Error fetching users")
		return
	}

	httputil.RespondData(w, http.StatusOK, users)
}

// GetUser retrieves a user by ID
// GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleError(w, h.logger, err, "Error fetching user")
		return
	}

	user, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err, "Error fetching user")
		return
	}

	httputil.RespondData(w, http.StatusOK, user)
}

// UpdateUser updates the caller's own user record
// PUT /users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		handleError(w, h.logger, err, "Error updating user")
		return
	}

	id, err := parseID(r)
	if err != nil {
		handleError(w, h.logger, err, "Error updating user")
		return
	}

	var req services.UpdateUserRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.Update(r.Context(), id, identity, &req)
	if err != nil {
		handleError(w, h.logger, err, "Error updating user")
		return
	}

	httputil.RespondData(w, http.StatusOK, user)
}

// DeleteUser removes the caller's own user record
// DELETE /users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		handleError(w, h.logger, err, "Error deleting user")
		return
	}

	id, err := parseID(r)
	if err != nil {
		handleError(w, h.logger, err, "Error deleting user")
		return
	}

	if err := h.service.Delete(r.Context(), id, identity); err != nil {
		handleError(w, h.logger, err, "Error deleting user")
		return
	}

	httputil.RespondData(w, http.StatusOK, deleteResponse{ID: id, Message: "User deleted successfully"})
}
