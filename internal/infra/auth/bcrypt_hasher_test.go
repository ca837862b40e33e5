package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"chirp/config"
	domainerrors "chirp/internal/domain/errors"
)

func TestBcryptHasherHashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("Sup3r-Secret!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Sup3r-Secret!", hash)

	t.Run("correct password matches", func(t *testing.T) {
		ok, err := hasher.Check("Sup3r-Secret!", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong password does not match", func(t *testing.T) {
		ok, err := hasher.Check("Wr0ng-Secret!", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("same password hashes differently each time", func(t *testing.T) {
		other, err := hasher.Hash("Sup3r-Secret!")
		require.NoError(t, err)
		assert.NotEqual(t, hash, other)
	})
}

func TestBcryptHasherCheckCorruptHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	for _, corrupt := range []string{"", "plaintext-leaked-into-column", "$1$legacy$hash"} {
		ok, err := hasher.Check("anything", corrupt)
		assert.ErrorIs(t, err, domainerrors.ErrCorruptCredential)
		assert.False(t, ok)
	}
}

func TestBcryptHasherUsesConfiguredCost(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
	}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("Sup3r-Secret!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	t.Run("accepts strong password", func(t *testing.T) {
		assert.NoError(t, hasher.ValidatePasswordStrength("Sup3r-Secret!"))
	})

	cases := []struct {
		name     string
		password string
		want     error
	}{
		{"too short", "Ab1!", domainerrors.ErrPasswordStrength},
		{"missing lowercase", "ABCDEF1!", domainerrors.ErrPasswordStrength},
		{"missing uppercase", "abcdef1!", domainerrors.ErrPasswordStrength},
		{"missing number", "Abcdefg!", domainerrors.ErrPasswordStrength},
		{"missing special character", "Abcdefg1", domainerrors.ErrPasswordStrength},
		{"contains forbidden word", "MyPassword1!", domainerrors.ErrPasswordForbiddenWords},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tc.password)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
