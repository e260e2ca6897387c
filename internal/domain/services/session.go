package services

import (
	"context"

	"changelog/internal/domain/models"
)

// SigninRequest is the input for authenticating a user
type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionService defines session business logic
type SessionService interface {
	// Signin verifies credentials and mints a session token.
	// Invalid username and invalid password are indistinguishable to the
	// caller.
	Signin(ctx context.Context, req *SigninRequest) (*models.User, string, error)
}
