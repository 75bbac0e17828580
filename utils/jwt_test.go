package utils

import (
	"testing"
	"time"

	"homevista/config"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mintToken signs a token the way the identity service does; validation is
// the only surface this package exposes.
func mintToken(t *testing.T, secret, subject, role string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token := mintToken(t, "test-secret", "user-1", "admin", time.Hour)

	sub, role, err := ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
	assert.Equal(t, "admin", role)
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token := mintToken(t, "test-secret", "user-1", "", -time.Minute)

	_, _, err := ExtractClaimsFromToken(token)
	assert.Error(t, err)
}

func TestTokenWithWrongSecretRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token := mintToken(t, "other-secret", "user-1", "", time.Hour)

	_, _, err := ExtractClaimsFromToken(token)
	assert.Error(t, err)
}
