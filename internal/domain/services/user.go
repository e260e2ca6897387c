package services

import (
	"context"

	"changelog/internal/domain/models"
)

// SignupRequest is the input for creating a user
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserRequest is the input for updating a user. Password is required;
// username may optionally be changed.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password string  `json:"password"`
}

// UserService defines user business logic
type UserService interface {
	// Signup creates a user and mints a session token for it
	Signup(ctx context.Context, req *SignupRequest) (*models.User, string, error)

	// List retrieves all users
	List(ctx context.Context) ([]models.User, error)

	// Get retrieves a user by ID
	Get(ctx context.Context, id string) (*models.User, error)

	// Update applies mutable fields to the caller's own user record
	Update(ctx context.Context, id string, identity models.Identity, req *UpdateUserRequest) (*models.User, error)

	// Delete removes the caller's own user record
	Delete(ctx context.Context, id string, identity models.Identity) error
}
