package service

import (
	"context"
	"errors"
	"log/slog"

	"changelog/internal/auth"
	"changelog/internal/domain"
	"changelog/internal/domain/models"
	"changelog/internal/domain/repositories"
	"changelog/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// sessionService implements the SessionService interface
type sessionService struct {
	users  repositories.UserRepository
	tokens auth.TokenIssuer
	logger *slog.Logger
}

// NewSessionService creates a new session service
func NewSessionService(
	users repositories.UserRepository,
	tokens auth.TokenIssuer,
	logger *slog.Logger,
) services.SessionService {
	return &sessionService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// invalidCredentials is returned for both unknown username and wrong
// password, so signin never reveals whether the username exists.
func invalidCredentials() error {
	return &domain.UnauthorizedError{Message: "Invalid credentials"}
}

// Signin verifies credentials and mints a session token
func (s *sessionService) Signin(ctx context.Context, req *services.SigninRequest) (*models.User, string, error) {
	if err := s.validateSigninRequest(req); err != nil {
		return nil, "", err
	}

	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Info("signin rejected", "reason", "unknown username")
			return nil, "", invalidCredentials()
		}
		return nil, "", err
	}

	if err := auth.ComparePassword(req.Password, user.Password); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			s.logger.Info("signin rejected", "reason", "password mismatch", "user_id", user.ID)
			return nil, "", invalidCredentials()
		}
		return nil, "", err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user signed in", "id", user.ID)

	return user, token, nil
}

// validateSigninRequest validates a signin request
func (s *sessionService) validateSigninRequest(req *services.SigninRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Username, validation.Required.Error("Username is required")),
		validation.Field(&req.Password, validation.Required.Error("Password is required")),
	)
}
