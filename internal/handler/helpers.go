package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"changelog/internal/domain"
	"changelog/internal/domain/models"
	"changelog/internal/httputil"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// handleError is the single place status codes are decided. Every error is
// logged before normalization; the response body never carries store
// internals or stack traces.
func handleError(w http.ResponseWriter, logger *slog.Logger, err error, defaultMessage string) {
	logger.Error("request failed", "error", err)

	var fieldErrs validation.Errors
	var httpErr domain.HTTPError

	switch {
	case errors.As(err, &fieldErrs):
		// ozzo field errors marshal as {"field": "message"}
		httputil.RespondError(w, http.StatusBadRequest, fieldErrs)
	case errors.As(err, &httpErr):
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, "Record not found")
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		if defaultMessage == "" {
			defaultMessage = "Internal server error"
		}
		httputil.RespondError(w, http.StatusInternalServerError, defaultMessage)
	}
}

// identityFrom extracts the authenticated identity attached by the auth
// middleware.
func identityFrom(r *http.Request) (models.Identity, error) {
	identity, ok := httputil.GetIdentity(r)
	if !ok {
		return models.Identity{}, domain.ErrUnauthorized
	}
	return identity, nil
}

// parseID extracts and validates the {id} path parameter.
func parseID(r *http.Request) (string, error) {
	id := r.PathValue("id")
	if id == "" {
		return "", &domain.ValidationError{Message: "ID is required"}
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", &domain.ValidationError{Message: "Invalid ID format"}
	}
	return id, nil
}

// deleteResponse is the uniform body for successful deletes.
type deleteResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// sessionResponse is the body for signup/signin: the user plus a freshly
// minted bearer token.
type sessionResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}
