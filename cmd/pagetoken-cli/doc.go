// Package main provides the entry point for pagetoken-cli.
//
// The CLI tool works with page tokens offline:
//
//   - Create a token from JSON sort-key entries
//   - Parse a token and print its entries
//   - Generate cipher keys
//   - Show and initialize the CLI configuration
//
// Usage:
//
//	pagetoken-cli [global flags] command [flags]
//	pagetoken-cli --key hex:00112233... create --payload '[{"key":"id","value":42}]'
//	pagetoken-cli --key hex:00112233... -o json parse TOKEN
//	pagetoken-cli -a aes-256-gcm keygen
package main
