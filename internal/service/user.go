package service

import (
	"context"
	"log/slog"
	"regexp"

	"changelog/internal/auth"
	"changelog/internal/domain"
	"changelog/internal/domain/models"
	"changelog/internal/domain/repositories"
	"changelog/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	hasUppercase = regexp.MustCompile(`[A-Z]`)
	hasDigit     = regexp.MustCompile(`[0-9]`)
)

// userService implements the UserService interface
type userService struct {
	users  repositories.UserRepository
	tx     repositories.TransactionManager
	tokens auth.TokenIssuer
	policy domain.AuthorizationPolicy
	logger *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(
	users repositories.UserRepository,
	tx repositories.TransactionManager,
	tokens auth.TokenIssuer,
	policy domain.AuthorizationPolicy,
	logger *slog.Logger,
) services.UserService {
	return &userService{
		users:  users,
		tx:     tx,
		tokens: tokens,
		policy: policy,
		logger: logger,
	}
}

// Signup creates a user and mints a session token for it
func (s *userService) Signup(ctx context.Context, req *services.SignupRequest) (*models.User, string, error) {
	if err := s.validateSignupRequest(req); err != nil {
		return nil, "", err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Username: req.Username,
		Password: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user created", "id", user.ID, "username", user.Username)

	return user, token, nil
}

// List retrieves all users
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// Get retrieves a user by ID
func (s *userService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// Update applies mutable fields to the caller's own user record
func (s *userService) Update(ctx context.Context, id string, identity models.Identity, req *services.UpdateUserRequest) (*models.User, error) {
	if id != identity.ID {
		return nil, s.policy.Deny("User not found", "Not authorized to access this user")
	}

	if err := s.validateUpdateRequest(req); err != nil {
		return nil, err
	}

	// Read-modify-write under a transaction with the row locked, so a
	// concurrent change cannot interleave between the load and the store
	var user *models.User
	err := s.tx.ExecTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.users.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if req.Username != nil {
			user.Username = *req.Username
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return err
		}
		user.Password = hash

		return s.users.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user updated", "id", user.ID)

	return user, nil
}

// Delete removes the caller's own user record
func (s *userService) Delete(ctx context.Context, id string, identity models.Identity) error {
	if id != identity.ID {
		return s.policy.Deny("User not found", "Not authorized to access this user")
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("user deleted", "id", id)

	return nil
}

// validateSignupRequest validates a signup request
func (s *userService) validateSignupRequest(req *services.SignupRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Username,
			validation.Required.Error("Username is required"),
			validation.Length(2, 255).Error("Username must be between 2 and 255 characters"),
		),
		validation.Field(&req.Password, passwordRules()...),
	)
}

// validateUpdateRequest validates an update user request
func (s *userService) validateUpdateRequest(req *services.UpdateUserRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Username,
			validation.NilOrNotEmpty,
			validation.Length(2, 255).Error("Username must be between 2 and 255 characters"),
		),
		validation.Field(&req.Password, passwordRules()...),
	)
}

// passwordRules are shared between signup and user update
func passwordRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("Password is required"),
		validation.Length(6, 255).Error("Password must be between 6 and 255 characters"),
		validation.Match(hasUppercase).Error("Password must contain at least one uppercase letter"),
		validation.Match(hasDigit).Error("Password must contain at least one number"),
	}
}
