package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secreto-de-prueba"

func TestTokenRoundTrip(t *testing.T) {
	signed, err := GenerateAccessToken(42, RoleCliente, testSecret, 15)
	require.NoError(t, err)

	claims, err := ParseToken(signed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, RoleCliente, claims.Role)
}

func TestTokenWrongSecret(t *testing.T) {
	signed, err := GenerateAccessToken(7, RoleAdmin, testSecret, 15)
	require.NoError(t, err)

	_, err = ParseToken(signed, "otro-secreto")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
		Role: RoleAdmin,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseToken(signed, testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenGarbage(t *testing.T) {
	_, err := ParseToken("ni.siquiera.un-jwt", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
