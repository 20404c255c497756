// Package envelope provides the symmetric encryption envelope for page tokens.
package envelope

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// CTR implements unauthenticated AES in counter mode.
//
// The 16-byte IV is the initial counter block.
type CTR struct {
	alg   Algorithm
	block cipher.Block
}

// NewCTR creates an AES-CTR cipher.
//
// Key must be 16, 24, or 32 bytes for aes-128-ctr, aes-192-ctr, or aes-256-ctr.
func NewCTR(key []byte, alg Algorithm) (*CTR, error) {
	switch alg {
	case AES128CTR, AES192CTR, AES256CTR:
	default:
		return nil, fmt.Errorf("%w: %q is not a CTR algorithm", ErrUnknownAlgorithm, string(alg))
	}
	if err := checkKey(key, alg); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return &CTR{alg: alg, block: block}, nil
}

// Algorithm returns the cipher algorithm.
func (c *CTR) Algorithm() Algorithm {
	return c.alg
}

// Seal encrypts plaintext and returns IV ‖ ciphertext.
func (c *CTR) Seal(plaintext []byte) ([]byte, error) {
	out := make([]byte, IVSize+len(plaintext))
	iv := out[:IVSize]
	if err := readIV(iv); err != nil {
		return nil, err
	}

	cipher.NewCTR(c.block, iv).XORKeyStream(out[IVSize:], plaintext)
	return out, nil
}

// Open decrypts an envelope produced by Seal.
//
// CTR carries no integrity check: a modified ciphertext decrypts to
// different bytes without an error.
func (c *CTR) Open(envelope []byte) ([]byte, error) {
	if len(envelope) < IVSize {
		return nil, ErrCiphertextTooShort
	}

	out := make([]byte, len(envelope)-IVSize)
	cipher.NewCTR(c.block, envelope[:IVSize]).XORKeyStream(out, envelope[IVSize:])
	return out, nil
}

// IVSize returns the IV size in bytes.
func (c *CTR) IVSize() int {
	return IVSize
}

// Overhead returns 0; CTR ciphertext has the plaintext length.
func (c *CTR) Overhead() int {
	return 0
}

// Authenticated returns false.
func (c *CTR) Authenticated() bool {
	return false
}
