package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rendyseptch/Login-app/internal/auth/service"
	apperrors "github.com/Rendyseptch/Login-app/internal/errors"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	ts := service.NewTokenService("test-secret", 24)

	token, err := ts.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ts.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	ts := service.NewTokenService("test-secret", -1)

	token, err := ts.Issue(42)
	require.NoError(t, err)

	_, err = ts.Verify(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestTokenService_Verify_TamperedSignature(t *testing.T) {
	ts := service.NewTokenService("test-secret", 24)

	token, err := ts.Issue(42)
	require.NoError(t, err)

	// Flip the last character of the signature.
	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	_, err = ts.Verify(tampered)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuer := service.NewTokenService("right-secret", 24)
	verifier := service.NewTokenService("wrong-secret", 24)

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	ts := service.NewTokenService("test-secret", 24)

	_, err := ts.Verify("not.a.jwt")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}
