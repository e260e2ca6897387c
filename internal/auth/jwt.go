package auth

import (
	"errors"
	"log/slog"
	"time"

	"changelog/internal/domain"
	"changelog/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

// JWTService issues and verifies HS256 session tokens signed with a shared
// secret. Tokens are minted at signin/signup and verified statelessly on
// every protected request.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	logger *slog.Logger
}

// NewJWTService creates a token service. The secret must be non-empty; the
// TTL bounds token lifetime (exp claim).
func NewJWTService(secret string, ttl time.Duration, logger *slog.Logger) (*JWTService, error) {
	if secret == "" {
		return nil, errors.New("JWT secret cannot be empty")
	}

	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		logger: logger,
	}, nil
}

// Issue creates a signed HS256 token carrying {id, username}.
func (s *JWTService) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID:   user.ID,
		Username: user.Username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a token and extracts its claims.
// Returns domain.ErrUnauthorized on any failure; the reason is logged but
// never surfaced to the caller.
func (s *JWTService) Verify(tokenString string) (*models.Claims, error) {
	// WithValidMethods pins the algorithm to prevent confusion attacks
	token, err := jwt.ParseWithClaims(
		tokenString,
		&models.Claims{},
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil {
		s.logger.Debug("token parse failed", "error", err)
		return nil, domain.ErrUnauthorized
	}

	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*models.Claims)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if claims.UserID == "" {
		s.logger.Debug("token missing identity claim")
		return nil, domain.ErrUnauthorized
	}

	return claims, nil
}
