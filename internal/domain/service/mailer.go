package service

import "context"

// Mailer defines the interface for outbound transactional email.
type Mailer interface {
	// SendConfirmationEmail delivers the registration confirmation link to
	// the given address. A delivery failure must not invalidate the token
	// that was already issued; callers log and continue.
	SendConfirmationEmail(ctx context.Context, to, confirmationLink string) error
}
