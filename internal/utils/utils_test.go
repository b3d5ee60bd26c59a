package utils

import (
	"testing"

	"github.com/dloopapp/dloop-partner-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwtConfig(secret string) *config.Config {
	return &config.Config{JWT: config.JWTConfig{Secret: secret, ExpiresIn: 3600}}
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := jwtConfig("round-trip-secret")

	token, err := GenerateJWT("64b0c8f2e4d3a2b1c0d9e8f7", "owner@example.com", cfg)
	require.NoError(t, err)

	claims, err := ValidateJWT(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, "64b0c8f2e4d3a2b1c0d9e8f7", claims["sub"])
	assert.Equal(t, "owner@example.com", claims["email"])
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("64b0c8f2e4d3a2b1c0d9e8f7", "owner@example.com", jwtConfig("first"))
	require.NoError(t, err)

	_, err = ValidateJWT(token, jwtConfig("second"))
	assert.Error(t, err)
}

func TestJWTGarbageToken(t *testing.T) {
	_, err := ValidateJWT("not-a-token", jwtConfig("secret"))
	assert.Error(t, err)
}

func TestGenerateRandomString(t *testing.T) {
	a, err := GenerateRandomString(16)
	require.NoError(t, err)
	b, err := GenerateRandomString(16)
	require.NoError(t, err)

	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)
}
