// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"chirp/config"
	domainerrors "chirp/internal/domain/errors"
	"chirp/internal/domain/service"
)

// purposeClaims carries the registered claims plus the purpose claim that
// separates access tokens from confirmation tokens under the single
// process-wide signing key.
type purposeClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	signingSecret string           // Secret key for signing all tokens, fixed at process start.
	accessTTL     time.Duration    // Time-to-live for access tokens.
	confirmTTL    time.Duration    // Time-to-live for email confirmation tokens.
	now           func() time.Time // Clock, injectable for expiry tests.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Signing == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	accessTTL := 30 * time.Minute
	confirmTTL := 24 * time.Hour
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.ConfirmTokenTTL > 0 {
			confirmTTL = cfg.Auth.ConfirmTokenTTL
		}
	}

	return &jwtService{
		signingSecret: cfg.SecretKey.Signing,
		accessTTL:     accessTTL,
		confirmTTL:    confirmTTL,
		now:           time.Now,
	}, nil
}

// Issue creates a signed token embedding the subject, the purpose claim and
// a purpose-dependent expiry. Issuance is pure computation; nothing is stored.
func (s *jwtService) Issue(subject string, purpose service.TokenPurpose) (string, error) {
	if subject == "" {
		return "", errors.New("token subject must not be empty")
	}

	ttl, err := s.ttlFor(purpose)
	if err != nil {
		return "", err
	}

	now := s.now()
	claims := purposeClaims{
		Purpose: string(purpose),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.signingSecret))
}

// Verify decodes a token string and returns its subject. Checks are ordered:
// signature/structure first, then expiry, then the purpose claim. Each
// failure maps to a distinct domain error so the delivery layer can report
// "expired" differently from "invalid" or "wrong purpose".
func (s *jwtService) Verify(tokenString string, expected service.TokenPurpose) (string, error) {
	claims := &purposeClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.signingSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrTokenMalformed) || errors.Is(err, jwt.ErrTokenUnverifiable) {
			return "", domainerrors.ErrTokenInvalid.WrapMessage("token signature verification failed")
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domainerrors.ErrTokenExpired.WrapMessage("token has expired")
		}

		return "", domainerrors.ErrTokenInvalid.WrapMessage("failed to parse token")
	}
	if !token.Valid {
		return "", domainerrors.ErrTokenInvalid.WrapMessage("token failed validation")
	}

	// Compare the decoded purpose claim value against the caller-supplied
	// expectation. This single check is what keeps a confirmation link from
	// being replayed as an access credential, and vice versa.
	if claims.Purpose != string(expected) {
		return "", domainerrors.ErrTokenWrongPurpose.WrapMessage("token was issued for purpose " + claims.Purpose)
	}

	if claims.Subject == "" {
		return "", domainerrors.ErrTokenInvalid.WrapMessage("token is missing subject")
	}

	return claims.Subject, nil
}

// GetConfirmationTokenDuration returns the configured duration for confirmation tokens.
func (s *jwtService) GetConfirmationTokenDuration() time.Duration {
	return s.confirmTTL
}

func (s *jwtService) ttlFor(purpose service.TokenPurpose) (time.Duration, error) {
	switch purpose {
	case service.TokenPurposeAccess:
		return s.accessTTL, nil
	case service.TokenPurposeConfirmation:
		return s.confirmTTL, nil
	default:
		return 0, errors.New("unknown token purpose: " + string(purpose))
	}
}
