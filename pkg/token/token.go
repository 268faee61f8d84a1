// Package token signs and verifies the compact bearer tokens that carry a
// request's identity. Verification is fully stateless: a token is valid iff
// its HMAC signature checks out against the server secret and it has not
// expired. No server-side session or allow-list is consulted.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/forkful/forkful/config"
)

var (
	// ErrInvalid covers signature mismatch, malformed encoding, and
	// unexpected signing algorithms.
	ErrInvalid = errors.New("token: invalid")
	// ErrExpired is returned once the embedded expiry has passed.
	ErrExpired = errors.New("token: expired")
)

// Claims is the typed JWT payload attached to every issued token.
type Claims struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.JWTSecret())
}

// Issue creates a signed HS256 token for the given account identity.
func Issue(accountID, email, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		AccountID: accountID,
		Email:     email,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// Verify parses and validates a token string, returning its claims.
// Expiry is reported as ErrExpired; every other failure as ErrInvalid.
func Verify(t string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(t, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return secret(), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalid
	}

	return claims, nil
}
