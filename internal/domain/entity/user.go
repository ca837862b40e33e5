// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. The email address doubles as the
// login identifier and as the subject embedded in issued tokens.
type User struct {
	ID           uuid.UUID // The unique identifier for the user record.
	Email        string    // Primary contact email, unique across all users.
	PasswordHash string    // The bcrypt hash of the user's password. The plaintext is never stored.
	Confirmed    bool      // True once the user has followed the emailed confirmation link.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
