package jwtPkg

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSign_RoundTrip(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	token, expiredAt, err := Sign(map[string]interface{}{
		"id":         "user-1",
		"username":   "alice",
		"session_id": "session-1",
	}, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiredAt, time.Now().Unix())

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user-1", claims["id"])
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, "session-1", claims["session_id"])
	assert.Equal(t, true, claims["authorization"])
}

func TestSign_MissingSecret(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "")

	_, _, err := Sign(map[string]interface{}{"id": "user-1"}, time.Hour)
	assert.Error(t, err)
}

func TestSign_WrongSecretFailsVerification(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	token, _, err := Sign(map[string]interface{}{"id": "user-1"}, time.Hour)
	require.NoError(t, err)

	_, err = jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}
