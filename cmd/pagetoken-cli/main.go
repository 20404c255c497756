// Package main provides the entry point for pagetoken-cli.
//
// pagetoken-cli creates and inspects opaque page tokens with the same
// key configuration a service uses.
package main

import (
	"os"

	"github.com/yndnr/pagetoken-go/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		command.PrintError("%v", err)
		os.Exit(1)
	}
}
