package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chirp/config"
	domainerrors "chirp/internal/domain/errors"
	"chirp/internal/domain/service"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	return &jwtService{
		signingSecret: "test-signing-secret",
		accessTTL:     30 * time.Minute,
		confirmTTL:    24 * time.Hour,
		now:           time.Now,
	}
}

func TestNewJWTService(t *testing.T) {
	t.Run("creates service from config", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.SecretKey.Signing = "secret"

		svc, err := NewJWTService(cfg)
		require.NoError(t, err)
		assert.NotNil(t, svc)
		assert.Equal(t, 24*time.Hour, svc.GetConfirmationTokenDuration())
	})

	t.Run("rejects empty signing secret", func(t *testing.T) {
		cfg := &config.Config{}

		svc, err := NewJWTService(cfg)
		assert.Error(t, err)
		assert.Nil(t, svc)
	})

	t.Run("honours configured durations", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.SecretKey.Signing = "secret"
		cfg.Auth = &config.AuthConfig{
			AccessTokenTTL:  time.Minute,
			ConfirmTokenTTL: time.Hour,
		}

		svc, err := NewJWTService(cfg)
		require.NoError(t, err)
		assert.Equal(t, time.Hour, svc.GetConfirmationTokenDuration())
	})
}

func TestJWTServiceIssueAndVerify(t *testing.T) {
	svc := newTestJWTService(t)

	purposes := []service.TokenPurpose{
		service.TokenPurposeAccess,
		service.TokenPurposeConfirmation,
	}

	for _, purpose := range purposes {
		t.Run(string(purpose), func(t *testing.T) {
			token, err := svc.Issue("a@example.com", purpose)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			subject, err := svc.Verify(token, purpose)
			require.NoError(t, err)
			assert.Equal(t, "a@example.com", subject)
		})
	}
}

func TestJWTServiceIssue(t *testing.T) {
	svc := newTestJWTService(t)

	t.Run("rejects empty subject", func(t *testing.T) {
		token, err := svc.Issue("", service.TokenPurposeAccess)
		assert.Error(t, err)
		assert.Empty(t, token)
	})

	t.Run("rejects unknown purpose", func(t *testing.T) {
		token, err := svc.Issue("a@example.com", service.TokenPurpose("refresh"))
		assert.Error(t, err)
		assert.Empty(t, token)
	})
}

func TestJWTServiceRejectsWrongPurpose(t *testing.T) {
	svc := newTestJWTService(t)

	t.Run("confirmation token used as access token", func(t *testing.T) {
		token, err := svc.Issue("a@example.com", service.TokenPurposeConfirmation)
		require.NoError(t, err)

		subject, err := svc.Verify(token, service.TokenPurposeAccess)
		assert.ErrorIs(t, err, domainerrors.ErrTokenWrongPurpose)
		assert.Empty(t, subject)
	})

	t.Run("access token used as confirmation token", func(t *testing.T) {
		token, err := svc.Issue("b@example.com", service.TokenPurposeAccess)
		require.NoError(t, err)

		subject, err := svc.Verify(token, service.TokenPurposeConfirmation)
		assert.ErrorIs(t, err, domainerrors.ErrTokenWrongPurpose)
		assert.Empty(t, subject)
	})
}

func TestJWTServiceRejectsExpiredToken(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	svc := newTestJWTService(t)
	svc.confirmTTL = time.Minute
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue("a@example.com", service.TokenPurposeConfirmation)
	require.NoError(t, err)

	// Still valid just before the deadline.
	svc.now = func() time.Time { return issuedAt.Add(30 * time.Second) }
	subject, err := svc.Verify(token, service.TokenPurposeConfirmation)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", subject)

	svc.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	subject, err = svc.Verify(token, service.TokenPurposeConfirmation)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	assert.Empty(t, subject)
}

func TestJWTServiceRejectsTamperedToken(t *testing.T) {
	svc := newTestJWTService(t)

	tokenA, err := svc.Issue("a@example.com", service.TokenPurposeAccess)
	require.NoError(t, err)

	tokenB, err := svc.Issue("b@example.com", service.TokenPurposeAccess)
	require.NoError(t, err)

	partsA := strings.Split(tokenA, ".")
	partsB := strings.Split(tokenB, ".")
	require.Len(t, partsA, 3)
	require.Len(t, partsB, 3)

	// Splice b's payload onto a's signature.
	forged := strings.Join([]string{partsA[0], partsB[1], partsA[2]}, ".")

	subject, err := svc.Verify(forged, service.TokenPurposeAccess)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.Empty(t, subject)
}

func TestJWTServiceRejectsForeignSecret(t *testing.T) {
	issuer := newTestJWTService(t)
	issuer.signingSecret = "someone-elses-secret"

	token, err := issuer.Issue("a@example.com", service.TokenPurposeAccess)
	require.NoError(t, err)

	svc := newTestJWTService(t)
	subject, err := svc.Verify(token, service.TokenPurposeAccess)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.Empty(t, subject)
}

func TestJWTServiceRejectsGarbage(t *testing.T) {
	svc := newTestJWTService(t)

	for _, tokenString := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		subject, err := svc.Verify(tokenString, service.TokenPurposeAccess)
		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
		assert.Empty(t, subject)
	}
}
