package client

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired reports whether the access token's embedded exp claim has
// passed. The token is parsed without signature verification: the signing
// key belongs to the backend and the client only needs the expiry to fail
// fast before spending a network round-trip. Unparseable tokens count as
// expired.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.RegisteredClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, &claims)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return !now.Before(claims.ExpiresAt.Time)
}
