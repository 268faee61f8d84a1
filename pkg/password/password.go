// Package password wraps bcrypt for account credentials. The digest embeds
// its own salt and cost, so Compare needs nothing beyond the stored string.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrHashFormat is returned when a stored digest is not a bcrypt hash.
var ErrHashFormat = errors.New("password: malformed digest")

// Hash returns a salted bcrypt digest of the plain-text password.
func Hash(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// Compare checks a plain-text candidate against a stored digest.
// A mismatch is (false, nil); only a malformed digest produces an error.
func Compare(digest, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, ErrHashFormat
	}
}
