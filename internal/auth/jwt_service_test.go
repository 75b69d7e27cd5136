package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/MohammedIhsaan28/Acquisition/internal/errors"
)

func TestJWTService_SignVerifyRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.Sign(42, "alice@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.ID) // jti
}

func TestJWTService_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", -1*time.Second)

	token, err := svc.Sign(1, "a@x.com", "user")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestJWTService_TamperedSignature(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.Sign(1, "a@x.com", "user")
	require.NoError(t, err)

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestJWTService_WrongSecret(t *testing.T) {
	signer := NewJWTService("right-secret", time.Hour)
	verifier := NewJWTService("wrong-secret", time.Hour)

	token, err := signer.Sign(1, "a@x.com", "user")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestJWTService_Malformed(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	for _, tok := range []string{"", "garbage", "not.a.jwt"} {
		_, err := svc.Verify(tok)
		assert.ErrorIs(t, err, apperrors.ErrTokenInvalid, "token: %q", tok)
	}
}
