package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims binds a bearer token to one simulator session.
type SessionClaims struct {
	jwt.RegisteredClaims
}

func (c *SessionClaims) SessionID() string {
	return c.Subject
}
