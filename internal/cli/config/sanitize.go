// Package config defines the CLI configuration structure.
package config

import "github.com/yndnr/pagetoken-go/internal/telemetry/logger"

// Sanitize returns a copy of the config with the cipher key masked, for
// printing or logging.
func Sanitize(cfg *Config) *Config {
	sanitized := *cfg
	if sanitized.Cipher.Key != "" {
		sanitized.Cipher.Key = logger.RedactString(sanitized.Cipher.Key)
	}
	return &sanitized
}
