package repositories

import (
	"context"

	"changelog/internal/domain/models"
)

// UpdatePointRepository defines the interface for update point data access.
// The ownership chain (point → update → product → user) is walked inside the
// queries themselves.
type UpdatePointRepository interface {
	// Create inserts a new update point under point.UpdateID
	Create(ctx context.Context, point *models.UpdatePoint) error

	// GetByID retrieves an update point together with the root product owner ID
	GetByID(ctx context.Context, id string) (*models.UpdatePoint, string, error)

	// List retrieves all update points whose chain is owned by the user
	List(ctx context.Context, userID string) ([]models.UpdatePoint, error)

	// Update applies mutable fields where the point's chain is owned by
	// userID, in a single conditional statement
	Update(ctx context.Context, point *models.UpdatePoint, userID string) error

	// Delete removes an update point where its chain is owned by userID
	Delete(ctx context.Context, id, userID string) error
}
