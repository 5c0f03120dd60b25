package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bazaarhq/marketplace/internal/domain/port/core"
	"github.com/bazaarhq/marketplace/internal/domain/port/security"
)

// JWTIssuer implements TokenIssuer using HS256-signed JWTs
type JWTIssuer struct {
	secret       []byte
	lifetime     time.Duration
	timeProvider core.TimeProvider
}

// NewJWTIssuer creates a new JWT token issuer
func NewJWTIssuer(secret string, lifetime time.Duration, timeProvider core.TimeProvider) security.TokenIssuer {
	return &JWTIssuer{
		secret:       []byte(secret),
		lifetime:     lifetime,
		timeProvider: timeProvider,
	}
}

type accessClaims struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Issue signs a new access token for the user
func (i *JWTIssuer) Issue(userID uint64, username string) (string, time.Time, error) {
	now := i.timeProvider.Now()
	expiresAt := now.Add(i.lifetime)

	claims := accessClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, expiresAt, nil
}

// Parse verifies the token signature and expiry and returns the user ID
func (i *JWTIssuer) Parse(tokenString string) (uint64, error) {
	var claims accessClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid || claims.UserID == 0 {
		return 0, fmt.Errorf("invalid token claims")
	}
	return claims.UserID, nil
}
