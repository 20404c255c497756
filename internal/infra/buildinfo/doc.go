// Package buildinfo provides build information for pagetoken-cli.
//
// Usage:
//
//	go build -ldflags "-X .../buildinfo.Version=1.0.0 -X .../buildinfo.Commit=abc123"
package buildinfo
