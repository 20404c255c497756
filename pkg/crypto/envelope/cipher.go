// Package envelope provides the symmetric encryption envelope for page tokens.
package envelope

import (
	"crypto/aes"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Algorithm names a symmetric cipher and mode.
type Algorithm string

const (
	AES128CTR Algorithm = "aes-128-ctr"
	AES192CTR Algorithm = "aes-192-ctr"
	AES256CTR Algorithm = "aes-256-ctr"

	AES128GCM Algorithm = "aes-128-gcm"
	AES192GCM Algorithm = "aes-192-gcm"
	AES256GCM Algorithm = "aes-256-gcm"
)

// DefaultAlgorithm is used when a key is configured without an algorithm.
const DefaultAlgorithm = AES128CTR

// IVSize is the length of the initialization vector prefixed to every envelope.
const IVSize = aes.BlockSize

// Envelope errors.
var (
	ErrUnknownAlgorithm   = errors.New("envelope: unknown algorithm")
	ErrInvalidKeySize     = errors.New("envelope: invalid key size for algorithm")
	ErrCiphertextTooShort = errors.New("envelope: ciphertext too short")
	ErrAuthentication     = errors.New("envelope: message authentication failed")
)

// Cipher seals and opens IV-prefixed envelopes.
type Cipher interface {
	// Algorithm returns the algorithm in use.
	Algorithm() Algorithm

	// Seal encrypts plaintext under a fresh random IV and returns IV ‖ ciphertext.
	Seal(plaintext []byte) ([]byte, error)

	// Open splits off the IV and decrypts the remainder.
	Open(envelope []byte) ([]byte, error)

	// IVSize returns the IV size in bytes.
	IVSize() int

	// Overhead returns the number of bytes Seal adds on top of the IV.
	Overhead() int

	// Authenticated reports whether Open detects tampering.
	Authenticated() bool
}

// New creates a cipher using DefaultAlgorithm.
func New(key []byte) (Cipher, error) {
	return NewWithAlgorithm(key, DefaultAlgorithm)
}

// NewWithAlgorithm creates a cipher for the given algorithm.
//
// The key length must match the algorithm exactly.
func NewWithAlgorithm(key []byte, alg Algorithm) (Cipher, error) {
	switch alg {
	case AES128CTR, AES192CTR, AES256CTR:
		return NewCTR(key, alg)
	case AES128GCM, AES192GCM, AES256GCM:
		return NewGCM(key, alg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}
}

// ParseAlgorithm normalizes an algorithm name. An empty name selects
// DefaultAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultAlgorithm, nil
	}
	alg := Algorithm(name)
	if alg.KeySize() == 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return alg, nil
}

// Algorithms returns all supported algorithms.
func Algorithms() []Algorithm {
	return []Algorithm{AES128CTR, AES192CTR, AES256CTR, AES128GCM, AES192GCM, AES256GCM}
}

// KeySize returns the key length in bytes, or 0 for unknown algorithms.
func (a Algorithm) KeySize() int {
	switch a {
	case AES128CTR, AES128GCM:
		return 16
	case AES192CTR, AES192GCM:
		return 24
	case AES256CTR, AES256GCM:
		return 32
	default:
		return 0
	}
}

// Authenticated reports whether the algorithm detects tampering.
func (a Algorithm) Authenticated() bool {
	switch a {
	case AES128GCM, AES192GCM, AES256GCM:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	return string(a)
}

func checkKey(key []byte, alg Algorithm) error {
	if len(key) != alg.KeySize() {
		return fmt.Errorf("%w: %s needs %d bytes, got %d", ErrInvalidKeySize, alg, alg.KeySize(), len(key))
	}
	return nil
}

// readIV fills iv from crypto/rand.
func readIV(iv []byte) error {
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return fmt.Errorf("envelope: read iv: %w", err)
	}
	return nil
}
