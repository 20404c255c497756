package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/pagetoken-go/internal/cli/output"
	"github.com/yndnr/pagetoken-go/pkg/crypto/envelope"
)

// KeygenCommand returns the keygen command.
func KeygenCommand() *cli.Command {
	return &cli.Command{
		Name:  "keygen",
		Usage: "Generate a random cipher key for the configured algorithm",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "list",
				Usage: "List supported algorithms instead",
			},
		},
		Action: keygen,
	}
}

// keyResult is the structured output of keygen.
type keyResult struct {
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Key       string `json:"key" yaml:"key"`
}

// algorithmRow describes a supported algorithm.
type algorithmRow struct {
	Algorithm     string `json:"algorithm" yaml:"algorithm"`
	KeySize       int    `json:"key_size" yaml:"key_size"`
	Authenticated bool   `json:"authenticated" yaml:"authenticated"`
}

func keygen(c *cli.Context) error {
	st, err := getState(c)
	if err != nil {
		return err
	}
	format, f := formatter(c, st)

	if c.Bool("list") {
		var rows []algorithmRow
		for _, alg := range envelope.Algorithms() {
			rows = append(rows, algorithmRow{
				Algorithm:     string(alg),
				KeySize:       alg.KeySize(),
				Authenticated: alg.Authenticated(),
			})
		}
		return f.Format(stdout(c), rows)
	}

	alg, err := envelope.ParseAlgorithm(st.cfg.Cipher.Algorithm)
	if err != nil {
		return err
	}
	key, err := envelope.GenerateKey(alg)
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}
	defer envelope.ZeroKey(key)

	encoded := envelope.FormatKey(key)
	if format == output.FormatTable {
		_, err := fmt.Fprintln(stdout(c), encoded)
		return err
	}
	return f.Format(stdout(c), keyResult{Algorithm: string(alg), Key: encoded})
}
