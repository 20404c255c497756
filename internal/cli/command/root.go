// Package command provides CLI command definitions for pagetoken-cli.
//
// It uses urfave/cli/v2 for command parsing. Configuration is loaded once
// in the Before hook and shared with every command through the app
// metadata.
package command

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/pagetoken-go/internal/cli/config"
	"github.com/yndnr/pagetoken-go/internal/cli/output"
	"github.com/yndnr/pagetoken-go/internal/infra/buildinfo"
	"github.com/yndnr/pagetoken-go/internal/telemetry/logger"
	"github.com/yndnr/pagetoken-go/internal/telemetry/metric"
	"github.com/yndnr/pagetoken-go/pkg/crypto/envelope"
	"github.com/yndnr/pagetoken-go/pkg/pagetoken"
)

const stateKey = "state"

// state is shared by the hooks and actions of one run.
type state struct {
	cfg     *config.Config
	log     logger.Logger
	metrics *metric.Registry
}

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "pagetoken-cli",
		Usage:   "Create and inspect opaque page tokens",
		Version: buildinfo.Get().Version,
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			CreateCommand(),
			ParseCommand(),
			KeygenCommand(),
			VersionCommand(),
			ConfigCommand(),
		},
		Metadata: map[string]any{},
		Before:   before,
		After:    after,
	}
}

// flagKeys maps global flags to configuration keys.
var flagKeys = map[string]string{
	"key":        "cipher.key",
	"algorithm":  "cipher.algorithm",
	"kdf":        "cipher.kdf",
	"label":      "cipher.label",
	"encoding":   "token.encoding",
	"output":     "output",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Config file (default ~/.pagetoken/cli.yaml)",
		},
		&cli.StringFlag{
			Name:    "key",
			Aliases: []string{"k"},
			Usage:   "Cipher key or HKDF secret (hex:..., base64:... or raw)",
		},
		&cli.StringFlag{
			Name:    "algorithm",
			Aliases: []string{"a"},
			Usage:   "Envelope algorithm, e.g. aes-128-ctr or aes-256-gcm",
		},
		&cli.StringFlag{
			Name:  "kdf",
			Usage: "Key derivation: none or hkdf",
		},
		&cli.StringFlag{
			Name:  "label",
			Usage: "HKDF info label",
		},
		&cli.StringFlag{
			Name:    "encoding",
			Aliases: []string{"e"},
			Usage:   "Token text encoding: base64url, base64, hex",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Show wide output (more columns)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
		&cli.BoolFlag{
			Name:  "metrics",
			Usage: "Print token metrics to stderr on exit",
		},
	}
}

// flagOverrides collects explicitly set global flags as config overrides.
func flagOverrides(c *cli.Context) map[string]any {
	overrides := make(map[string]any)
	for name, key := range flagKeys {
		if c.IsSet(name) {
			overrides[key] = c.String(name)
		}
	}
	return overrides
}

func before(c *cli.Context) error {
	cfg := config.Default()
	if !initializing(c) {
		var err error
		cfg, err = config.Load(c.String("config"), flagOverrides(c))
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: c.App.ErrWriter,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)

	c.App.Metadata[stateKey] = &state{
		cfg:     cfg,
		log:     log,
		metrics: metric.NewRegistry(),
	}
	c.Context = logger.WithLogger(c.Context, log)
	return nil
}

// initializing reports whether the command is "config init", which must run
// before a config file exists.
func initializing(c *cli.Context) bool {
	args := c.Args().Slice()
	return len(args) >= 2 && args[0] == "config" && args[1] == "init"
}

func after(c *cli.Context) error {
	st, ok := c.App.Metadata[stateKey].(*state)
	if !ok || !c.Bool("metrics") {
		return nil
	}
	return st.metrics.WriteText(c.App.ErrWriter)
}

// getState returns the state prepared by the Before hook.
func getState(c *cli.Context) (*state, error) {
	if st, ok := c.App.Metadata[stateKey].(*state); ok {
		return st, nil
	}
	return nil, errors.New("configuration not loaded")
}

// commandLogger returns the run logger tagged with the command name.
func commandLogger(c *cli.Context) logger.Logger {
	return logger.L(logger.WithCommand(c.Context, c.Command.Name))
}

// newManager builds a page token manager from the loaded configuration.
// The manager reports to the run's metric registry.
func newManager(c *cli.Context) (*pagetoken.Manager, *state, error) {
	st, err := getState(c)
	if err != nil {
		return nil, nil, err
	}

	mc, err := st.cfg.ManagerConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("cipher config: %w", err)
	}
	defer envelope.ZeroKey(mc.CipherKey)

	m, err := pagetoken.New(mc,
		pagetoken.WithLogger(commandLogger(c)),
		pagetoken.WithRecorder(st.metrics),
	)
	if err != nil {
		return nil, nil, err
	}

	if err := st.metrics.Register(metric.NewManagerInfo(string(m.Algorithm()), m.Encrypted())); err != nil {
		return nil, nil, fmt.Errorf("register metrics: %w", err)
	}
	return m, st, nil
}

// formatter returns the configured output formatter.
func formatter(c *cli.Context, st *state) (output.Format, output.Formatter) {
	format, err := output.ParseFormat(st.cfg.Output)
	if err != nil {
		format = output.FormatTable
	}
	return format, output.NewFormatter(format, c.Bool("wide"))
}

// stdout returns the writer for command output.
func stdout(c *cli.Context) io.Writer {
	if c.App.Writer != nil {
		return c.App.Writer
	}
	return os.Stdout
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
