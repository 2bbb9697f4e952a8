package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the subset of the backend's JWT claims the client
// cares about locally.
type TokenClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// PeekToken parses a stored bearer token WITHOUT verifying its
// signature. The client has no access to the signing secret; it only
// inspects claims to avoid sending calls with an already expired token.
func PeekToken(tokenString string) (*TokenClaims, error) {
	parser := jwt.NewParser()
	claims := &TokenClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, errors.New("malformed token")
	}
	return claims, nil
}

// TokenExpired reports whether the token carries an exp claim in the
// past. A token that cannot be parsed counts as expired.
func TokenExpired(tokenString string, now time.Time) bool {
	claims, err := PeekToken(tokenString)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return now.After(claims.ExpiresAt.Time)
}
