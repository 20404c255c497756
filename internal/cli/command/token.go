package command

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/pagetoken-go/internal/cli/output"
	"github.com/yndnr/pagetoken-go/pkg/pagetoken"
)

// CreateCommand returns the create command.
func CreateCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a page token from JSON entries",
		Description: `Entries are read from --payload, --file or stdin, either as an array
or as {"entries": [...]}. Each entry looks like

   {"key": "created_at", "type": "timestamp", "value": "2024-01-15T00:00:00Z", "direction": "desc"}

"type" may be omitted for strings, numbers and booleans. "direction"
defaults to asc.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "payload",
				Aliases: []string{"p"},
				Usage:   "Entries as JSON",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Read entries from a JSON file",
			},
		},
		Action: tokenCreate,
	}
}

// ParseCommand returns the parse command.
func ParseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Aliases:   []string{"inspect"},
		Usage:     "Decode a page token and print its entries",
		ArgsUsage: "TOKEN",
		Action:    tokenParse,
	}
}

// tokenResult is the structured output of create.
type tokenResult struct {
	Token       string `json:"token" yaml:"token"`
	Encoding    string `json:"encoding" yaml:"encoding"`
	Encrypted   bool   `json:"encrypted" yaml:"encrypted"`
	Size        int    `json:"size" yaml:"size"`
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
}

// entryRow is one decoded entry as printed by parse.
type entryRow struct {
	Key       string `json:"key" yaml:"key"`
	Type      string `json:"type" yaml:"type"`
	Value     any    `json:"value" yaml:"value"`
	Direction string `json:"direction" yaml:"direction"`
}

func tokenCreate(c *cli.Context) error {
	data, err := readPayload(c)
	if err != nil {
		return err
	}
	payload, err := decodePayload(data)
	if err != nil {
		return err
	}

	m, st, err := newManager(c)
	if err != nil {
		return err
	}

	token, err := m.CreateToken(payload)
	if err != nil {
		return fmt.Errorf("create token: %w", err)
	}

	enc := st.cfg.Encoding()
	text := enc.Encode(token)
	commandLogger(c).Info("token created",
		"entries", payload.Len(),
		"size", len(token),
		"fingerprint", pagetoken.Fingerprint(token),
	)

	format, f := formatter(c, st)
	if format == output.FormatTable {
		_, err := fmt.Fprintln(stdout(c), text)
		return err
	}
	return f.Format(stdout(c), tokenResult{
		Token:       text,
		Encoding:    string(enc),
		Encrypted:   m.Encrypted(),
		Size:        len(token),
		Fingerprint: pagetoken.Fingerprint(token),
	})
}

func tokenParse(c *cli.Context) error {
	text := strings.TrimSpace(c.Args().First())
	if text == "" || text == "-" {
		data, err := io.ReadAll(stdin(c))
		if err != nil {
			return fmt.Errorf("read token: %w", err)
		}
		text = strings.TrimSpace(string(data))
	}
	if text == "" {
		return errors.New("token required")
	}

	m, st, err := newManager(c)
	if err != nil {
		return err
	}

	token, err := st.cfg.Encoding().Decode(text)
	if err != nil {
		return fmt.Errorf("parse token: %w", err)
	}
	payload, err := m.ParseToken(token)
	if err != nil {
		return fmt.Errorf("parse token: %w", err)
	}

	rows := make([]entryRow, 0, payload.Len())
	for _, e := range payload.Entries {
		row := entryRow{
			Key:       e.Key,
			Value:     e.Value.Interface(),
			Direction: e.Direction.Resolve().String(),
		}
		if e.Value.Present() {
			row.Type = e.Value.Kind().String()
		}
		rows = append(rows, row)
	}

	_, f := formatter(c, st)
	return f.Format(stdout(c), rows)
}

// readPayload returns the raw entries JSON from --payload, --file or stdin.
func readPayload(c *cli.Context) ([]byte, error) {
	switch {
	case c.IsSet("payload"):
		return []byte(c.String("payload")), nil
	case c.IsSet("file"):
		data, err := os.ReadFile(c.String("file"))
		if err != nil {
			return nil, fmt.Errorf("read payload: %w", err)
		}
		return data, nil
	default:
		data, err := io.ReadAll(stdin(c))
		if err != nil {
			return nil, fmt.Errorf("read payload: %w", err)
		}
		return data, nil
	}
}

// decodePayload accepts a JSON array of entries or an object with an
// "entries" array.
func decodePayload(data []byte) (pagetoken.Payload, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return pagetoken.Payload{}, errors.New("empty payload")
	}

	if data[0] == '[' {
		var entries []pagetoken.Entry
		if err := json.Unmarshal(data, &entries); err != nil {
			return pagetoken.Payload{}, fmt.Errorf("decode payload: %w", err)
		}
		return pagetoken.NewPayload(entries...), nil
	}

	var p pagetoken.Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return pagetoken.Payload{}, fmt.Errorf("decode payload: %w", err)
	}
	return p, nil
}

func stdin(c *cli.Context) io.Reader {
	if c.App.Reader != nil {
		return c.App.Reader
	}
	return os.Stdin
}
