package client

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	t.Run("live token is not expired", func(t *testing.T) {
		token := signedToken(t, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		})
		assert.False(t, TokenExpired(token, now))
	})

	t.Run("past expiry is expired", func(t *testing.T) {
		token := signedToken(t, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
		})
		assert.True(t, TokenExpired(token, now))
	})

	t.Run("missing exp counts as expired", func(t *testing.T) {
		token := signedToken(t, jwt.RegisteredClaims{Subject: "u1"})
		assert.True(t, TokenExpired(token, now))
	})

	t.Run("garbage counts as expired", func(t *testing.T) {
		assert.True(t, TokenExpired("not-a-jwt", now))
		assert.True(t, TokenExpired("", now))
	})
}
