// Package config defines the CLI configuration structure.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/yndnr/pagetoken-go/internal/cli/output"
	"github.com/yndnr/pagetoken-go/internal/telemetry/logger"
	"github.com/yndnr/pagetoken-go/pkg/crypto/envelope"
	"github.com/yndnr/pagetoken-go/pkg/pagetoken"
)

// Verify validates the configuration. All problems are reported together.
func Verify(cfg *Config) error {
	return errors.Join(
		verifyCipher(&cfg.Cipher),
		verifyToken(&cfg.Token),
		verifyLog(&cfg.Log),
		verifyOutput(cfg.Output),
	)
}

func verifyCipher(cfg *CipherSection) error {
	if _, err := envelope.ParseAlgorithm(cfg.Algorithm); err != nil {
		return fmt.Errorf("cipher.algorithm: %w", err)
	}

	switch strings.ToLower(cfg.KDF) {
	case "", KDFNone, KDFHKDF:
	default:
		return fmt.Errorf("cipher.kdf: unknown value %q (want %s or %s)", cfg.KDF, KDFNone, KDFHKDF)
	}

	if cfg.Key == "" {
		return nil
	}
	if _, err := envelope.ParseKey(cfg.Key); err != nil {
		return fmt.Errorf("cipher.key: %w", err)
	}
	return nil
}

func verifyToken(cfg *TokenSection) error {
	if _, err := pagetoken.ParseEncoding(cfg.Encoding); err != nil {
		return fmt.Errorf("token.encoding: %w", err)
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	if _, err := logger.ParseLevel(cfg.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if cfg.Format != "" && !slices.Contains(logger.Formats, strings.ToLower(cfg.Format)) {
		return fmt.Errorf("log.format: unknown format %q", cfg.Format)
	}
	return nil
}

func verifyOutput(format string) error {
	if format == "" {
		return nil
	}
	if _, err := output.ParseFormat(format); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}
