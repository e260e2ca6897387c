package repositories

import (
	"context"

	"changelog/internal/domain/models"
)

// ProductRepository defines the interface for product data access.
// Mutations are scoped by a compound id+owner filter in a single statement,
// so an ownership check can never race with the write it guards.
type ProductRepository interface {
	// Create inserts a new product owned by product.UserID
	Create(ctx context.Context, product *models.Product) error

	// GetByID retrieves a product scoped to its owner
	GetByID(ctx context.Context, id, userID string) (*models.Product, error)

	// GetByIDOnly retrieves a product by ID regardless of owner.
	// Used by the ownership resolver, which applies the configured policy.
	GetByIDOnly(ctx context.Context, id string) (*models.Product, error)

	// List retrieves all products owned by the user
	List(ctx context.Context, userID string) ([]models.Product, error)

	// Update applies mutable fields where id and owner both match
	Update(ctx context.Context, product *models.Product) error

	// Delete removes a product where id and owner both match
	Delete(ctx context.Context, id, userID string) error
}
