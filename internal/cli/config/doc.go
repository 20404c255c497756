// Package config provides CLI configuration for pagetoken-cli.
//
//   - spec.go: Config struct (~/.pagetoken/cli.yaml)
//   - default.go: default values
//   - loader.go: loading through confloader, and saving
//   - verify.go, sanitize.go: validation and masking for display
//   - manager.go: resolution into a pagetoken.Config
//
// Example file:
//
//	cipher:
//	  key: "base64:AAECAwQFBgcICQoLDA0ODw=="
//	  algorithm: aes-128-ctr
//	  kdf: none
//	token:
//	  encoding: base64url
//	log:
//	  level: warn
//	output: table
package config
