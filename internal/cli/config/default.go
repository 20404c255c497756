// Package config defines the CLI configuration structure.
package config

import (
	"github.com/yndnr/pagetoken-go/pkg/crypto/envelope"
	"github.com/yndnr/pagetoken-go/pkg/pagetoken"
)

// KDF names.
const (
	KDFNone = "none"
	KDFHKDF = "hkdf"
)

// Default configuration values.
const (
	DefaultAlgorithm = string(envelope.DefaultAlgorithm)
	DefaultKDF       = KDFNone
	DefaultLabel     = envelope.DefaultKeyInfo
	DefaultEncoding  = string(pagetoken.DefaultEncoding)
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultOutput    = "table"
)

// Default returns the default CLI configuration: no encryption.
func Default() *Config {
	return &Config{
		Cipher: CipherSection{
			Algorithm: DefaultAlgorithm,
			KDF:       DefaultKDF,
			Label:     DefaultLabel,
		},
		Token: TokenSection{
			Encoding: DefaultEncoding,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Output: DefaultOutput,
	}
}

// defaultValues returns Default as dotted koanf keys.
func defaultValues() map[string]any {
	d := Default()
	return map[string]any{
		"cipher.algorithm": d.Cipher.Algorithm,
		"cipher.kdf":       d.Cipher.KDF,
		"cipher.label":     d.Cipher.Label,
		"token.encoding":   d.Token.Encoding,
		"log.level":        d.Log.Level,
		"log.format":       d.Log.Format,
		"output":           d.Output,
	}
}
