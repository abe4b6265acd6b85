package entity

import (
	"time"
)

// User represents a registered user in the system
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         UserRole  `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// IsValid reports whether the role is one of the recognized values.
// Roles are a closed set so that anything else is unrepresentable past
// the decode boundary.
func (r UserRole) IsValid() bool {
	return r == UserRoleAdmin || r == UserRoleUser
}

// IsAdmin reports whether the role grants moderation rights.
func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
