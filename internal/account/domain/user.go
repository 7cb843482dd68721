// Package domain defines the account entities: users and their password-reset codes.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/setlistify/setlistify/internal/errors"
)

// User represents a registered account.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Domain-specific errors for account operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrNoAccountLinkedToEmail is returned by forgot-password when no account
	// matches the supplied address. Carries a stable code for client-side
	// translation lookup.
	ErrNoAccountLinkedToEmail = errors.WithCode(
		"account:noAccountLinkedToEmail",
		errors.Wrap(errors.ErrInvalidInput, "no account linked to email"),
	)

	// ErrInvalidCredentials indicates the supplied password does not match.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")
)
