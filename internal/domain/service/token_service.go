package service

import "time"

// TokenPurpose restricts what action a token may authorize. A token minted
// for one purpose must never verify under another.
type TokenPurpose string

const (
	// TokenPurposeAccess marks tokens that authenticate API requests.
	TokenPurposeAccess TokenPurpose = "access"

	// TokenPurposeConfirmation marks tokens embedded in email confirmation links.
	TokenPurposeConfirmation TokenPurpose = "confirmation"
)

// TokenService defines the interface for issuing and verifying signed,
// expiring bearer tokens. Implementations are stateless: validity is a pure
// function of the signature, the clock and the purpose claim.
type TokenService interface {
	// Issue creates a signed token for the given subject. The TTL is selected
	// from configuration based on the purpose.
	Issue(subject string, purpose TokenPurpose) (string, error)

	// Verify decodes a token and returns its subject. It checks the
	// signature, then expiry, then the purpose claim, and reports each
	// failure as a distinct error kind.
	Verify(token string, expected TokenPurpose) (subject string, err error)

	// GetConfirmationTokenDuration returns the configured lifetime of
	// confirmation tokens.
	GetConfirmationTokenDuration() time.Duration
}
