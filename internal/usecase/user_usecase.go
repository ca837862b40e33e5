// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"chirp/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new unconfirmed account and emails a confirmation
	// link. The emailed token is the only confirmation mechanism; nothing
	// about it is stored server side.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// ConfirmEmail validates a confirmation token and marks the account
	// confirmed. Confirming twice is harmless.
	ConfirmEmail(ctx context.Context, token string) error

	// Login checks the credentials and issues an access token. An unknown
	// email and a wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// CurrentUser resolves an access token to the account it was issued for.
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
}
