// Package envelope provides the symmetric encryption envelope for page tokens.
package envelope

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

// Key encoding prefixes accepted by ParseKey.
const (
	HexKeyPrefix    = "hex:"
	Base64KeyPrefix = "base64:"
)

// MinSecretLength is the minimum secret length accepted by DeriveKey.
const MinSecretLength = 16

// DefaultKeyInfo is the HKDF info label used when none is configured.
const DefaultKeyInfo = "pagetoken/v1"

// ErrSecretTooShort is returned when a derivation secret is too short.
var ErrSecretTooShort = errors.New("envelope: secret too short (minimum 16 bytes)")

// ParseKey decodes key material from a configuration string.
//
// "hex:" and "base64:" prefixes select an encoding; any other value is used
// as raw bytes, so "0123456789abcdef" is a 16-byte AES-128 key.
func ParseKey(s string) ([]byte, error) {
	switch {
	case strings.HasPrefix(s, HexKeyPrefix):
		key, err := hex.DecodeString(strings.TrimPrefix(s, HexKeyPrefix))
		if err != nil {
			return nil, fmt.Errorf("envelope: decode hex key: %w", err)
		}
		return key, nil
	case strings.HasPrefix(s, Base64KeyPrefix):
		key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(s, Base64KeyPrefix))
		if err != nil {
			return nil, fmt.Errorf("envelope: decode base64 key: %w", err)
		}
		return key, nil
	default:
		return []byte(s), nil
	}
}

// FormatKey encodes key bytes in the "base64:" form understood by ParseKey.
func FormatKey(key []byte) string {
	return Base64KeyPrefix + base64.StdEncoding.EncodeToString(key)
}

// DeriveKey derives a key sized for alg from secret using HKDF-SHA256.
// Different info labels yield independent keys from the same secret.
func DeriveKey(secret []byte, info string, alg Algorithm) ([]byte, error) {
	size := alg.KeySize()
	if size == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}
	if len(secret) < MinSecretLength {
		return nil, ErrSecretTooShort
	}
	if info == "" {
		info = DefaultKeyInfo
	}

	reader := hkdf.New(sha256.New, secret, nil, []byte(info))
	key := make([]byte, size)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("envelope: derive key: %w", err)
	}
	return key, nil
}

// GenerateKey returns a random key sized for alg.
func GenerateKey(alg Algorithm) ([]byte, error) {
	size := alg.KeySize()
	if size == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}

	key := make([]byte, size)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("envelope: generate key: %w", err)
	}
	return key, nil
}

// ZeroKey overwrites key material in place.
func ZeroKey(key []byte) {
	for i := range key {
		key[i] = 0
	}
}
