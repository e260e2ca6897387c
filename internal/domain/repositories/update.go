package repositories

import (
	"context"

	"changelog/internal/domain/models"
)

// UpdateRepository defines the interface for update data access.
// Reads join through to the owning product so callers get the root owner in
// one round trip; writes carry the ownership chain in the statement itself.
type UpdateRepository interface {
	// Create inserts a new update under update.ProductID
	Create(ctx context.Context, update *models.Update) error

	// GetByID retrieves an update together with the root product owner ID
	GetByID(ctx context.Context, id string) (*models.Update, string, error)

	// List retrieves all updates whose product is owned by the user
	List(ctx context.Context, userID string) ([]models.Update, error)

	// Update applies mutable fields where the update's product is owned by
	// userID, in a single conditional statement
	Update(ctx context.Context, update *models.Update, userID string) error

	// Delete removes an update where its product is owned by userID
	Delete(ctx context.Context, id, userID string) error
}
