// Package envelope provides the symmetric encryption envelope for page tokens.
//
// Every sealed message is framed as
//
//	IV (16 bytes) ‖ ciphertext
//
// with no length prefix: the IV size is fixed and the ciphertext fills the
// remainder. A fresh IV is read from crypto/rand on every Seal call.
//
// Supported Algorithms:
//
//   - aes-128-ctr (default), aes-192-ctr, aes-256-ctr: confidentiality only.
//     Tampered ciphertext decrypts to garbage without an error.
//   - aes-128-gcm, aes-192-gcm, aes-256-gcm: authenticated, 16-byte nonce
//     plus a 16-byte tag. Tampering makes Open fail with ErrAuthentication.
//
// Usage:
//
//	c, err := envelope.NewWithAlgorithm(key, envelope.AES128CTR)
//	sealed, err := c.Seal(plaintext)
//	plaintext, err := c.Open(sealed)
//
// Ciphers hold only immutable key schedules and are safe for concurrent use.
package envelope
