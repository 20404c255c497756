// Package command provides CLI command definitions for pagetoken-cli.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: App, global flags, config and logger setup
//   - token.go: create and parse
//   - keygen.go: cipher key generation
//   - config.go: configuration subcommand group
//   - version.go: build information
//
// Global flags override the config file and PAGETOKEN_* environment
// variables. With --metrics the token counters of the run are printed to
// stderr in Prometheus text format.
package command
