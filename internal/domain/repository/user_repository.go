// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"chirp/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
// Callers must receive this rather than a driver error so that "absent" stays
// distinguishable from "lookup failed".
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// MarkConfirmed flips the confirmed flag for the user with the given email.
	// The operation is idempotent; confirming an already confirmed user succeeds.
	MarkConfirmed(ctx context.Context, email string) error
}
