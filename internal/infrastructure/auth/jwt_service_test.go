package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbidMulla/off-compus-backend/domain"
)

func TestJWTGenerateValidateRoundtrip(t *testing.T) {
	svc := NewJWTService("test-secret", "jobportal-test", time.Hour)

	token, err := svc.Generate(42, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Greater(t, claims.ExpiresAt, claims.IssuedAt)
}

func TestJWTTokensAreUnique(t *testing.T) {
	svc := NewJWTService("test-secret", "jobportal-test", time.Hour)

	a, err := svc.Generate(1, "user")
	require.NoError(t, err)
	b, err := svc.Generate(1, "user")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestJWTValidateExpired(t *testing.T) {
	svc := NewJWTService("test-secret", "jobportal-test", -time.Minute)

	token, err := svc.Generate(42, "user")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestJWTValidateWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", "jobportal-test", time.Hour)
	verifier := NewJWTService("secret-b", "jobportal-test", time.Hour)

	token, err := issuer.Generate(42, "user")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTValidateGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", "jobportal-test", time.Hour)

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.Validate(tok)
		assert.Error(t, err, "token %q", tok)
	}
}

func TestPasswordHashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, svc.Verify(hash, "secret123"))
	assert.False(t, svc.Verify(hash, "secret124"))
}
