package services

import (
	"context"

	"changelog/internal/domain/models"
)

// CreateUpdateRequest is the input for creating an update. ProductID names
// the parent, which must exist and be owned by the caller.
type CreateUpdateRequest struct {
	Title     string              `json:"title"`
	Body      string              `json:"body"`
	Status    models.UpdateStatus `json:"status"`
	Version   string              `json:"version"`
	Asset     *string             `json:"asset"`
	ProductID string              `json:"productId"`
}

// UpdateUpdateRequest is the input for updating an update. Only the
// allow-listed mutable fields appear here; the parent product cannot be
// reassigned.
type UpdateUpdateRequest struct {
	Title   *string              `json:"title"`
	Body    *string              `json:"body"`
	Status  *models.UpdateStatus `json:"status"`
	Version *string              `json:"version"`
	Asset   *string              `json:"asset"`
}

// UpdateService defines update business logic
type UpdateService interface {
	// Create creates an update under a caller-owned product
	Create(ctx context.Context, identity models.Identity, req *CreateUpdateRequest) (*models.Update, error)

	// List retrieves all updates in the caller's ownership chain
	List(ctx context.Context, identity models.Identity) ([]models.Update, error)

	// Get retrieves an update after authorizing the ownership chain
	Get(ctx context.Context, id string, identity models.Identity) (*models.Update, error)

	// Update applies mutable fields after authorizing the ownership chain
	Update(ctx context.Context, id string, identity models.Identity, req *UpdateUpdateRequest) (*models.Update, error)

	// Delete removes an update after authorizing the ownership chain
	Delete(ctx context.Context, id string, identity models.Identity) error
}
