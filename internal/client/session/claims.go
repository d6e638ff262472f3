package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of token claims shown to the operator.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the token's lifetime has passed. Tokens without
// an exp claim never expire from the client's point of view.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// Peek decodes the token payload without verifying the signature. The
// backend is the authority on token validity; this is only used to display
// who is logged in and to warn about an expired session before a request
// bounces with 401.
func Peek(token string) (Claims, error) {
	var rc jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &rc); err != nil {
		return Claims{}, fmt.Errorf("decode token: %w", err)
	}

	c := Claims{Subject: rc.Subject}
	if rc.ExpiresAt != nil {
		c.ExpiresAt = rc.ExpiresAt.Time
	}
	return c, nil
}
