package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload minted at signin/signup and carried in the
// bearer credential. It is never persisted server-side.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"id"`
	Username string `json:"username"`
}

// Identity is the decoded claim attached to the request context by the auth
// middleware and passed explicitly into services.
type Identity struct {
	ID       string
	Username string
}

// Identity converts verified claims into the context identity.
func (c *Claims) Identity() Identity {
	return Identity{ID: c.UserID, Username: c.Username}
}
