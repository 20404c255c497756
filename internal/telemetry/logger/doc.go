// Package logger provides structured logging for pagetoken tools.
//
// Files:
//
//   - logger.go: slog handler setup and the package-level default logger
//   - context.go: logger and command-name propagation through context
//   - redact.go: masking of cipher keys and other secrets
//
// Values starting with "hex:" or "base64:" are masked wherever they appear,
// and attributes whose key contains "secret", "token" or similar words are
// replaced entirely. Log token fingerprints, never tokens.
package logger
