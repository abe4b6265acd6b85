package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the parsed contents of an access token.
type Claims struct {
	UserID string   `json:"sub"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Caller is the authenticated identity attached to a request once the
// access token has been verified and its subject resolved. Role comes
// from the user record, not the token, so a stale token cannot carry a
// revoked role forward.
type Caller struct {
	UserID string
	Role   UserRole
}

// IsAdmin reports whether the caller holds the admin role.
func (c Caller) IsAdmin() bool {
	return c.Role.IsAdmin()
}
