package handler

import (
	"log/slog"
	"net/http"

	"changelog/internal/domain/services"
	"changelog/internal/httputil"
)

// UpdateHandler handles update HTTP requests
type UpdateHandler struct {
	service services.UpdateService
	logger  *slog.Logger
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(service services.UpdateService, logger *slog.Logger) *UpdateHandler {
	return &UpdateHandler{
		service: service,
		logger:  logger,
	}
}

// ListUpdates retrieves all updates in the caller's ownership chain
// GET /updates
func (h *UpdateHandler) ListUpdates(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		handleError(w, h.logger, err, "Error fetching updates")
		return
	}

	updates, err := h.service.List(r.Context(), identity)
	if err != nil {
		handleError(w, h.logger, err, "Error fetching updates")
		return
	}

	httputil.RespondData(w, http.StatusOK, updates)
}

// GetUpdate retrieves a single update
// GET /updates/{id}
func (h *UpdateHandler) GetUpdate(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		handleError(w, h.logger, err, "Error fetching update")
		return
	}

	id, err := parseID(r)
	if err != nil {
		handleError(w, h.logger, err, "Error fetching update")
		return
	}

	update, err := h.service.Get(r.Context(), id, identity)
	if err != nil {
		handleError(w, h.logger, err, "Error fetching update")
		return
	}

	httputil.RespondData(w, http.StatusOK, update)
}

// CreateUpdate creates an update under a caller-owned product
// POST /updates
func (h *UpdateHandler) CreateUpdate(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		handleError(w, h.logger, err, "Error creating update")
		return
	}

	var req services.CreateUpdateRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update, err := h.service.Create(r.Context(), identity, &req)
	if err != nil {
		handleError(w, h.logger, err, "Error creating update")
		return
	}

	httputil.RespondData(w, http.StatusCreated, update)
}

// UpdateUpdate applies mutable fields to an update
// PUT /updates/{id}
func (h *UpdateHandler) UpdateUpdate(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		handleError(w, h.logger, err, "Error updating record")
		return
	}

	id, err := parseID(r)
	if err != nil {
		handleError(w, h.logger, err, "Error updating record")
		return
	}

	var req services.UpdateUpdateRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update, err := h.service.Update(r.Context(), id, identity, &req)
	if err != nil {
		handleError(w, h.logger, err, "Error updating record")
		return
	}

	httputil.RespondData(w, http.StatusOK, update)
}

// DeleteUpdate removes an update
// DELETE /updates/{id}
func (h *UpdateHandler) DeleteUpdate(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		handleError(w, h.logger, err, "Error deleting update")
		return
	}

	id, err := parseID(r)
	if err != nil {
		handleError(w, h.logger, err, "Error deleting update")
		return
	}

	if err := h.service.Delete(r.Context(), id, identity); err != nil {
		handleError(w, h.logger, err, "Error deleting update")
		return
	}

	httputil.RespondData(w, http.StatusOK, deleteResponse{ID: id, Message: "Update deleted successfully"})
}
