package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtract(t *testing.T) {
	signed, expiresAt, err := Generate(42, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	assert.True(t, expiresAt.After(time.Now()))

	id, err := ExtractUserID(signed)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	signed, _, err := Generate(7, "user@example.com")
	require.NoError(t, err)

	tampered := signed[:len(signed)-2] + "xx"
	_, err = ExtractUserID(tampered)
	assert.Error(t, err)
}

func TestValidateRejectsWrongSigningMethod(t *testing.T) {
	// unsigned token with alg=none must not pass HMAC validation
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "1"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = Validate(raw)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "42",
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-1 * time.Hour).Unix(),
	}
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := expired.SignedString(secretKey())
	require.NoError(t, err)

	_, err = ExtractUserID(raw)
	assert.Error(t, err)
}

func TestExpiryDefault(t *testing.T) {
	assert.Equal(t, time.Duration(DefaultExpiryHours)*time.Hour, Expiry())
}
