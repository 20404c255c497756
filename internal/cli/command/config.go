package command

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/pagetoken-go/internal/cli/config"
	"github.com/yndnr/pagetoken-go/internal/cli/output"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "CLI configuration",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration (key masked)",
				Action: configShow,
			},
			{
				Name:   "validate",
				Usage:  "Validate the configuration",
				Action: configValidate,
			},
			{
				Name:  "init",
				Usage: "Write a default configuration file",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing file",
					},
				},
				Action: configInit,
			},
		},
	}
}

// configPath returns the --config path or the default one.
func configPath(c *cli.Context) string {
	if path := c.String("config"); path != "" {
		return path
	}
	return config.DefaultConfigPath()
}

func configShow(c *cli.Context) error {
	st, err := getState(c)
	if err != nil {
		return err
	}

	format, f := formatter(c, st)
	if format == output.FormatTable {
		f = &output.YAMLFormatter{}
	}
	return f.Format(stdout(c), config.Sanitize(st.cfg))
}

// The Before hook already verified the configuration.
func configValidate(c *cli.Context) error {
	if _, err := getState(c); err != nil {
		return err
	}
	_, err := fmt.Fprintf(stdout(c), "configuration is valid (%s)\n", configPath(c))
	return err
}

func configInit(c *cli.Context) error {
	path := configPath(c)
	if !c.Bool("force") {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	if err := config.Save(config.Default(), path); err != nil {
		return err
	}
	commandLogger(c).Info("config written", "path", path)
	_, err := fmt.Fprintf(stdout(c), "wrote %s\n", path)
	return err
}
