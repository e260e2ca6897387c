package handler

import (
	"log/slog"
	"net/http"

	"changelog/internal/domain/services"
	"changelog/internal/httputil"
)

// UpdatePointHandler handles update point HTTP requests
type UpdatePointHandler struct {
	service services.UpdatePointService
	logger  *slog.Logger
}

// NewUpdatePointHandler creates a new update point handler
func NewUpdatePointHandler(service services.UpdatePointService, logger *slog.Logger) *UpdatePointHandler {
	return &UpdatePointHandler{
		service: service,
		logger:  logger,
	}
}

// ListUpdatePoints retrieves all update points in the caller's ownership chain
// GET /updatePoints
func (h *UpdatePointHandler) ListUpdatePoints(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		handleError(w, h.logger, err, "Error fetching update points")
		return
	}

	points, err := h.service.List(r.Context(), identity)
	if err != nil {
		handleError(w, h.logger, err, "Error fetching update points")
		return
	}

	httputil.RespondData(w, http.StatusOK, points)
}

// GetUpdatePoint retrieves a single update point
// GET /updatePoints/{id}
func (h *UpdatePointHandler) GetUpdatePoint(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		handleError(w, h.logger, err, "Error fetching update point")
		return
	}

	id, err := parseID(r)
	if err != nil {
		handleError(w, h.logger, err, "Error fetching update point")
		return
	}

	point, err := h.service.Get(r.Context(), id, identity)
	if err != nil {
		handleError(w, h.logger, err, "Error fetching update point")
		return
	}

	httputil.RespondData(w, http.StatusOK, point)
}

// CreateUpdatePoint creates an update point under a caller-owned update
// POST /updatePoints
func (h *UpdatePointHandler) CreateUpdatePoint(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		handleError(w, h.logger, err, "Error creating update point")
		return
	}

	var req services.CreateUpdatePointRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	point, err := h.service.Create(r.Context(), identity, &req)
	if err != nil {
		handleError(w, h.logger, err, "Error creating update point")
		return
	}

	httputil.RespondData(w, http.StatusCreated, point)
}

// UpdateUpdatePoint applies mutable fields to an update point
// PUT /updatePoints/{id}
func (h *UpdatePointHandler) UpdateUpdatePoint(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		handleError(w, h.logger, err, "Error updating update point")
		return
	}

	id, err := parseID(r)
	if err != nil {
		handleError(w, h.logger, err, "Error updating update point")
		return
	}

	var req services.UpdateUpdatePointRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	point, err := h.service.Update(r.Context(), id, identity, &req)
	if err != nil {
		handleError(w, h.logger, err, "Error updating update point")
		return
	}

	httputil.RespondData(w, http.StatusOK, point)
}

// DeleteUpdatePoint removes an update point
// DELETE /updatePoints/{id}
func (h *UpdatePointHandler) DeleteUpdatePoint(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		handleError(w, h.logger, err, "Error deleting update point")
		return
	}

	id, err := parseID(r)
	if err != nil {
		handleError(w, h.logger, err, "Error deleting update point")
		return
	}

	if err := h.service.Delete(r.Context(), id, identity); err != nil {
		handleError(w, h.logger, err, "Error deleting update point")
		return
	}

	httputil.RespondData(w, http.StatusOK, deleteResponse{ID: id, Message: "Update point deleted successfully"})
}
