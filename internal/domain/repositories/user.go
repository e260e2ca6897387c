package repositories

import (
	"context"

	"changelog/internal/domain/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user; the store assigns the ID and timestamps.
	// A duplicate username surfaces as a domain.ConflictError.
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByIDForUpdate retrieves a user by ID and row-locks it for the
	// duration of the surrounding transaction
	GetByIDForUpdate(ctx context.Context, id string) (*models.User, error)

	// GetByUsername retrieves a user by username (signin lookup)
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// List retrieves all users
	List(ctx context.Context) ([]models.User, error)

	// Update applies the user's mutable fields, keyed by user.ID
	Update(ctx context.Context, user *models.User) error

	// Delete removes a user by ID
	Delete(ctx context.Context, id string) error
}
