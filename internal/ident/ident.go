// Package ident generates the short human-readable identifiers assigned to
// equipos. An identifier is a device-type prefix followed by six uppercase
// hex characters drawn from crypto/rand (24 bits of entropy). Uniqueness is
// probabilistic; the primary-key constraint on the equipos table is the
// backstop, and the store retries once on a collision.
package ident

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

const randomBytes = 3

// PrefixForTipo maps a device type to its identifier prefix. The match is
// case-insensitive; unrecognized types share the generic EQU prefix.
func PrefixForTipo(tipo string) string {
	switch strings.ToLower(tipo) {
	case "impresora":
		return "IMP"
	case "laptop":
		return "LAP"
	default:
		return "EQU"
	}
}

// Generate returns prefix + 6 uppercase hex characters.
func Generate(prefix string) (string, error) {
	b := make([]byte, randomBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating equipo id: %w", err)
	}
	return prefix + strings.ToUpper(hex.EncodeToString(b)), nil
}
