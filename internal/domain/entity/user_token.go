package entity

import (
	"time"
)

// UserToken is a persisted access token. A user holds at most one active
// token; issuing a new one replaces any previous row.
type UserToken struct {
	ID        uint64
	UserID    uint64
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the token is past its expiry at the given instant
func (t *UserToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
