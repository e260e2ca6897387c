package auth

import "changelog/internal/domain/models"

// TokenIssuer mints signed session tokens for authenticated users.
type TokenIssuer interface {
	// Issue creates a signed token carrying the user's identity claim.
	Issue(user *models.User) (string, error)
}

// TokenVerifier validates bearer tokens. Verification is stateless: no store
// lookup happens here.
type TokenVerifier interface {
	// Verify validates a token string and returns the parsed claims.
	// Returns domain.ErrUnauthorized if the token is invalid, expired, or
	// has an invalid signature.
	Verify(tokenString string) (*models.Claims, error)
}
