package auth

import "time"

// RefreshToken is a persisted refresh session. Tokens are stored hashed.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}
