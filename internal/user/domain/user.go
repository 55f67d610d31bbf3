// Package domain defines the core user domain entities and types.
package domain

import (
	"github.com/allisson/moviecatalog/internal/errors"
)

// Role is the authorization role carried by a user and by its tokens.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a registered account. Password holds the stored hash, never plaintext.
type User struct {
	ID       int64
	Username string
	Password string
	Role     Role
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrNoUsers indicates the user listing is empty.
	ErrNoUsers = errors.Wrap(errors.ErrNotFound, "no users found")

	// ErrUserAlreadyExists indicates a user with the same username is already registered.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrInvalidInput, "user already exists")

	// ErrUsernameTaken indicates an update tried to take another user's username.
	ErrUsernameTaken = errors.Wrap(errors.ErrInvalidInput, "username is already used by another user")

	// ErrNothingToUpdate indicates an update request carried no fields.
	ErrNothingToUpdate = errors.Wrap(errors.ErrInvalidInput, "nothing to update")

	// ErrInvalidRole indicates the role is neither user nor admin.
	ErrInvalidRole = errors.Wrap(errors.ErrInvalidInput, "role must be either user or admin")
)
