// Package config defines the CLI configuration structure.
package config

// Config is the configuration for pagetoken-cli.
type Config struct {
	Cipher CipherSection `koanf:"cipher" yaml:"cipher"`
	Token  TokenSection  `koanf:"token" yaml:"token"`
	Log    LogSection    `koanf:"log" yaml:"log"`
	Output string        `koanf:"output" yaml:"output"` // table, json, yaml
}

// CipherSection configures the token envelope.
type CipherSection struct {
	// Key is the cipher key or, with KDF "hkdf", the secret keys are derived
	// from. "hex:" and "base64:" prefixes select an encoding; anything else
	// is used as raw bytes. Empty disables encryption.
	Key string `koanf:"key" yaml:"key"`

	// Algorithm names the envelope cipher, e.g. aes-128-ctr.
	Algorithm string `koanf:"algorithm" yaml:"algorithm"`

	// KDF is "none" (Key is the cipher key) or "hkdf" (derive it).
	KDF string `koanf:"kdf" yaml:"kdf"`

	// Label is the HKDF info string. Different labels give independent keys.
	Label string `koanf:"label" yaml:"label"`
}

// TokenSection configures the token text form.
type TokenSection struct {
	// Encoding is base64url, base64 or hex.
	Encoding string `koanf:"encoding" yaml:"encoding"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"`
}
