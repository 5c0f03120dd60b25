package security

import (
	"time"
)

// PasswordHasher abstracts the password hashing capability
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password
	Hash(password string) (string, error)
	// Verify reports whether the password matches the stored hash
	Verify(password, hash string) bool
}

// TokenIssuer abstracts access-token issuance and verification
type TokenIssuer interface {
	// Issue creates a signed token for the user and returns its expiry
	Issue(userID uint64, username string) (token string, expiresAt time.Time, err error)
	// Parse verifies a token's signature and expiry and returns the user ID
	Parse(token string) (userID uint64, err error)
}
