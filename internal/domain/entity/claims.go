package entity

import (
	"time"
)

// SessionClaims is the validated content of a session token.
type SessionClaims struct {
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
