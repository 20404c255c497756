package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/pagetoken-go/internal/infra/buildinfo"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show build information",
		Action: func(c *cli.Context) error {
			st, err := getState(c)
			if err != nil {
				return err
			}
			_, f := formatter(c, st)
			return f.Format(stdout(c), buildinfo.Get())
		},
	}
}
