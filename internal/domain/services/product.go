package services

import (
	"context"

	"changelog/internal/domain/models"
)

// CreateProductRequest is the input for creating a product. The owner is
// always the authenticated identity, never a client-supplied field.
type CreateProductRequest struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// UpdateProductRequest is the input for updating a product
type UpdateProductRequest struct {
	Name  *string `json:"name"`
	Price *int    `json:"price"`
}

// ProductService defines product business logic
type ProductService interface {
	// Create creates a product owned by the caller
	Create(ctx context.Context, identity models.Identity, req *CreateProductRequest) (*models.Product, error)

	// List retrieves the caller's products
	List(ctx context.Context, identity models.Identity) ([]models.Product, error)

	// Get retrieves one of the caller's products
	Get(ctx context.Context, id string, identity models.Identity) (*models.Product, error)

	// Update applies mutable fields (name, price) to one of the caller's
	// products
	Update(ctx context.Context, id string, identity models.Identity, req *UpdateProductRequest) (*models.Product, error)

	// Delete removes one of the caller's products
	Delete(ctx context.Context, id string, identity models.Identity) error
}
