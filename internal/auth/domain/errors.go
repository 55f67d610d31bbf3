package domain

import (
	"github.com/allisson/moviecatalog/internal/errors"
)

// Authentication and authorization errors.
var (
	// ErrCredentialsRequired indicates the login request lacks a username or password.
	ErrCredentialsRequired = errors.Wrap(errors.ErrInvalidInput, "username and password are required")

	// ErrRefreshTokenRequired indicates the refresh request lacks a token.
	ErrRefreshTokenRequired = errors.Wrap(errors.ErrInvalidInput, "refresh_token is required")

	// ErrTokenMissing indicates the Authorization header is absent or empty.
	ErrTokenMissing = errors.Wrap(errors.ErrUnauthorized, "authorization token is required")

	// ErrTokenInvalid indicates a malformed token or a signature mismatch.
	ErrTokenInvalid = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrTokenExpired indicates a well-formed token whose exp is in the past.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token has expired")

	// ErrUserNotRegistered indicates login with an unknown username.
	ErrUserNotRegistered = errors.Wrap(errors.ErrUnauthorized, "user is not registered")

	// ErrWrongPassword indicates login with a password that does not verify.
	ErrWrongPassword = errors.Wrap(errors.ErrUnauthorized, "wrong password")

	// ErrAdminRequired indicates a non-admin token on an admin-only route.
	ErrAdminRequired = errors.Wrap(errors.ErrForbidden, "admin role required")

	// ErrNotOwner indicates a non-admin token addressing another user's record.
	ErrNotOwner = errors.Wrap(errors.ErrForbidden, "access to another user is forbidden")

	// ErrRoleChangeForbidden indicates a non-admin token trying to set a role other than "user".
	ErrRoleChangeForbidden = errors.Wrap(errors.ErrForbidden, "only admins can assign roles")
)
