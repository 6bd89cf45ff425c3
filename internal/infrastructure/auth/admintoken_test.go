package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	service := NewAdminTokenService("test-secret", 60)

	token, expiresIn, err := service.Generate()
	require.NoError(t, err)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, AdminRole, claims.Role)
}

func TestAdminTokenWrongSecret(t *testing.T) {
	issuer := NewAdminTokenService("secret-one", 60)
	verifier := NewAdminTokenService("secret-two", 60)

	token, _, err := issuer.Generate()
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestAdminTokenGarbage(t *testing.T) {
	service := NewAdminTokenService("test-secret", 60)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := service.Verify(token)
		assert.Error(t, err, "token %q", token)
	}
}

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("hunter2")
	require.NoError(t, err)

	assert.NoError(t, hasher.Verify("hunter2", hash))
	assert.Error(t, hasher.Verify("wrong", hash))
}
