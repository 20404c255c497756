// Package config defines the CLI configuration structure.
package config

import (
	"fmt"
	"strings"

	"github.com/yndnr/pagetoken-go/pkg/crypto/envelope"
	"github.com/yndnr/pagetoken-go/pkg/pagetoken"
)

// ManagerConfig resolves the cipher section into a pagetoken.Config.
//
// With KDF "hkdf" the parsed key is a secret of at least
// envelope.MinSecretLength bytes and the cipher key is derived from it with
// Label. Otherwise the parsed key is used as is. No key means no encryption.
func (c *Config) ManagerConfig() (pagetoken.Config, error) {
	alg, err := envelope.ParseAlgorithm(c.Cipher.Algorithm)
	if err != nil {
		return pagetoken.Config{}, err
	}

	mc := pagetoken.Config{CipherAlgorithm: alg}
	if c.Cipher.Key == "" {
		return mc, nil
	}

	key, err := envelope.ParseKey(c.Cipher.Key)
	if err != nil {
		return pagetoken.Config{}, err
	}

	if strings.EqualFold(c.Cipher.KDF, KDFHKDF) {
		derived, err := envelope.DeriveKey(key, c.Cipher.Label, alg)
		envelope.ZeroKey(key)
		if err != nil {
			return pagetoken.Config{}, fmt.Errorf("derive cipher key: %w", err)
		}
		key = derived
	}

	mc.CipherKey = key
	return mc, nil
}

// Encoding returns the configured token text encoding.
func (c *Config) Encoding() pagetoken.Encoding {
	enc, err := pagetoken.ParseEncoding(c.Token.Encoding)
	if err != nil {
		return pagetoken.DefaultEncoding
	}
	return enc
}
