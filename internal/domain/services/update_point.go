package services

import (
	"context"

	"changelog/internal/domain/models"
)

// CreateUpdatePointRequest is the input for creating an update point.
// UpdateID names the parent update, whose chain must be caller-owned.
type CreateUpdatePointRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	UpdateID    string `json:"updateId"`
}

// UpdateUpdatePointRequest is the input for updating an update point
type UpdateUpdatePointRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// UpdatePointService defines update point business logic
type UpdatePointService interface {
	// Create creates an update point under a caller-owned update
	Create(ctx context.Context, identity models.Identity, req *CreateUpdatePointRequest) (*models.UpdatePoint, error)

	// List retrieves all update points in the caller's ownership chain
	List(ctx context.Context, identity models.Identity) ([]models.UpdatePoint, error)

	// Get retrieves an update point after authorizing the ownership chain
	Get(ctx context.Context, id string, identity models.Identity) (*models.UpdatePoint, error)

	// Update applies mutable fields after authorizing the ownership chain
	Update(ctx context.Context, id string, identity models.Identity, req *UpdateUpdatePointRequest) (*models.UpdatePoint, error)

	// Delete removes an update point after authorizing the ownership chain
	Delete(ctx context.Context, id string, identity models.Identity) error
}
