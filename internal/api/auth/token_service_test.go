package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	t.Parallel()

	s := NewTokenService([]byte("super-secret"), time.Hour)

	token, err := s.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestTokenService_EachTokenHasUniqueID(t *testing.T) {
	t.Parallel()

	s := NewTokenService([]byte("super-secret"), time.Hour)

	first, err := s.Issue()
	require.NoError(t, err)
	second, err := s.Issue()
	require.NoError(t, err)

	firstClaims, err := s.Verify(first)
	require.NoError(t, err)
	secondClaims, err := s.Verify(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestTokenService_VerifyExpired(t *testing.T) {
	t.Parallel()

	s := NewTokenService([]byte("secret"), -1*time.Minute)

	token, err := s.Issue()
	require.NoError(t, err)

	_, err = s.Verify(token)
	assert.Error(t, err)
}

func TestTokenService_VerifyWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService([]byte("right-secret"), time.Hour)
	verifier := NewTokenService([]byte("wrong-secret"), time.Hour)

	token, err := issuer.Issue()
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestTokenService_VerifyTampered(t *testing.T) {
	t.Parallel()

	s := NewTokenService([]byte("secret"), time.Hour)

	token, err := s.Issue()
	require.NoError(t, err)

	// flip one byte of the signature
	tampered := token[:len(token)-1]
	if strings.HasSuffix(token, "A") {
		tampered += "B"
	} else {
		tampered += "A"
	}
	require.NotEqual(t, token, tampered)

	_, err = s.Verify(tampered)
	assert.Error(t, err)
}

func TestTokenService_VerifyMalformed(t *testing.T) {
	t.Parallel()

	s := NewTokenService([]byte("secret"), time.Hour)

	_, err := s.Verify("not.a.jwt")
	assert.Error(t, err)
}

func TestTokenService_ErrorNeverLeaksSecret(t *testing.T) {
	t.Parallel()

	secret := "hush-hush-secret"
	s := NewTokenService([]byte(secret), time.Hour)

	_, err := s.Verify("garbage")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), secret)
}
