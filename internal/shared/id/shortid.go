// Package id generates short, URL-safe identifiers for public-facing
// entities, Stripe-style: a type prefix, an underscore, and a Base62 body.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs.
	DefaultLength = 12
)

// Prefixes for different entity types.
const (
	PrefixOrder  = "ord"
	PrefixRecord = "gen"
)

// Generate creates a cryptographically random Base62 string of the given
// length (DefaultLength when length <= 0).
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := range result {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// GenerateWithPrefix creates an ID in the form "prefix_randomstring".
func GenerateWithPrefix(prefix string, length int) (string, error) {
	body, err := Generate(length)
	if err != nil {
		return "", err
	}
	return prefix + "_" + body, nil
}

// MustGenerateWithPrefix is GenerateWithPrefix panicking on failure; the only
// failure mode is a broken crypto/rand source.
func MustGenerateWithPrefix(prefix string, length int) string {
	s, err := GenerateWithPrefix(prefix, length)
	if err != nil {
		panic(err)
	}
	return s
}

// ParsePrefixedID splits "prefix_body" into its parts.
func ParsePrefixedID(s string) (prefix, body string, err error) {
	idx := strings.Index(s, "_")
	if idx <= 0 || idx == len(s)-1 {
		return "", "", fmt.Errorf("invalid prefixed id %q", s)
	}
	return s[:idx], s[idx+1:], nil
}
