// Package envelope provides the symmetric encryption envelope for page tokens.
package envelope

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
)

// GCM implements AES-GCM authenticated encryption with a 16-byte nonce,
// so the framing matches CTR: IV ‖ ciphertext ‖ tag.
type GCM struct {
	alg  Algorithm
	aead cipher.AEAD
}

// NewGCM creates an AES-GCM cipher.
//
// Key must be 16, 24, or 32 bytes for aes-128-gcm, aes-192-gcm, or aes-256-gcm.
func NewGCM(key []byte, alg Algorithm) (*GCM, error) {
	switch alg {
	case AES128GCM, AES192GCM, AES256GCM:
	default:
		return nil, fmt.Errorf("%w: %q is not a GCM algorithm", ErrUnknownAlgorithm, string(alg))
	}
	if err := checkKey(key, alg); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aead, err := cipher.NewGCMWithNonceSize(block, IVSize)
	if err != nil {
		return nil, err
	}

	return &GCM{alg: alg, aead: aead}, nil
}

// Algorithm returns the cipher algorithm.
func (c *GCM) Algorithm() Algorithm {
	return c.alg
}

// Seal encrypts and authenticates plaintext and returns IV ‖ ciphertext ‖ tag.
func (c *GCM) Seal(plaintext []byte) ([]byte, error) {
	iv := make([]byte, IVSize, IVSize+len(plaintext)+c.aead.Overhead())
	if err := readIV(iv); err != nil {
		return nil, err
	}

	// Prepend IV to ciphertext
	return c.aead.Seal(iv, iv, plaintext, nil), nil
}

// Open verifies and decrypts an envelope produced by Seal.
func (c *GCM) Open(envelope []byte) ([]byte, error) {
	if len(envelope) < IVSize {
		return nil, ErrCiphertextTooShort
	}

	plaintext, err := c.aead.Open(nil, envelope[:IVSize], envelope[IVSize:], nil)
	if err != nil {
		return nil, errors.Join(ErrAuthentication, err)
	}
	return plaintext, nil
}

// IVSize returns the IV size in bytes.
func (c *GCM) IVSize() int {
	return IVSize
}

// Overhead returns the authentication tag size in bytes.
func (c *GCM) Overhead() int {
	return c.aead.Overhead()
}

// Authenticated returns true.
func (c *GCM) Authenticated() bool {
	return true
}
