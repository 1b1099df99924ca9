package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rendyseptch/Login-app/internal/auth/service"
)

func TestHashPassword(t *testing.T) {
	hash, err := service.HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", hash)
	assert.False(t, strings.Contains(hash, "secret1"))
	// bcrypt prefix embedding the cost parameter
	assert.True(t, strings.HasPrefix(hash, "$2a$12$"))
}

func TestHashPassword_SaltVaries(t *testing.T) {
	h1, err := service.HashPassword("secret1")
	require.NoError(t, err)
	h2, err := service.HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := service.HashPassword("secret1")
	require.NoError(t, err)

	assert.True(t, service.VerifyPassword("secret1", hash))
	assert.False(t, service.VerifyPassword("secret2", hash))
	assert.False(t, service.VerifyPassword("", hash))
	assert.False(t, service.VerifyPassword("secret1", "not-a-hash"))
}
