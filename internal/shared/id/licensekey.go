package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultKeyLength is the default length of the random portion of a
	// license key. 20 base62 characters carry ~119 bits of entropy.
	DefaultKeyLength = 20

	// PrefixLicenseKey is the Stripe-style prefix for license keys.
	PrefixLicenseKey = "mk"
)

// Generate creates a random identifier with the specified length using
// Base62 encoding. The result is cryptographically random and URL-safe.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultKeyLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// MustGenerate creates a random identifier and panics on error.
func MustGenerate(length int) string {
	id, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return id
}

// NewLicenseKeyID generates a prefixed license key identifier in the form
// "mk_<random>".
func NewLicenseKeyID(length int) (string, error) {
	id, err := Generate(length)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s", PrefixLicenseKey, id), nil
}

// ParsePrefixedID extracts the prefix and random portion from a prefixed
// identifier string.
func ParsePrefixedID(prefixedID string) (prefix, shortID string, err error) {
	parts := strings.SplitN(prefixedID, "_", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid prefixed ID format: %s", prefixedID)
	}
	return parts[0], parts[1], nil
}

// ValidateLicenseKeyID checks that a candidate string has the license key
// shape: the "mk" prefix followed by base62 characters.
func ValidateLicenseKeyID(candidate string) error {
	prefix, shortID, err := ParsePrefixedID(candidate)
	if err != nil {
		return err
	}
	if prefix != PrefixLicenseKey {
		return fmt.Errorf("invalid prefix: expected %s, got %s", PrefixLicenseKey, prefix)
	}
	for i := 0; i < len(shortID); i++ {
		if !strings.ContainsRune(alphabet, rune(shortID[i])) {
			return fmt.Errorf("invalid character in license key at position %d", i)
		}
	}
	return nil
}
