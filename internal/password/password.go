// Package password covers the credential lifecycle: generating temporary
// passwords, hashing them, and verifying login attempts. Temporary
// passwords are security-sensitive even though they are short-lived, so
// GenerateRandom draws from crypto/rand like the equipo id generator does.
package password

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const (
	charset        = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	passwordLength = 10
	bcryptCost     = 10
)

// GenerateRandom returns a 10-character alphanumeric temporary password.
func GenerateRandom() (string, error) {
	out := make([]byte, passwordLength)
	max := big.NewInt(int64(len(charset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generating password: %w", err)
		}
		out[i] = charset[n.Int64()]
	}
	return string(out), nil
}

// Hash produces a bcrypt hash of the plaintext.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(h), nil
}

// Verify reports whether plain matches the stored hash.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
