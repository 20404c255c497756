// Package confloader provides configuration loading mechanism.
//
// It merges configuration from several sources into a typed struct using
// koanf:
//
//   - Defaults: a dotted-key map supplied by the caller
//   - File: YAML
//   - Environment: PAGETOKEN_* variables
//   - Overrides: command-line flags that were set explicitly
//
// Later sources override earlier ones. Struct fields are mapped with
// `koanf` tags.
package confloader
