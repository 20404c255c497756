package command

import (
	"bytes"
	"strings"
	"testing"
)

// result captures one CLI run.
type result struct {
	stdout string
	stderr string
	err    error
}

// run executes the CLI with args in an isolated home directory.
func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	app := App()
	var out, errOut bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &errOut
	app.Reader = strings.NewReader(stdin)

	err := app.Run(append([]string{"pagetoken-cli"}, args...))
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

// mustRun is run that fails the test on error and returns trimmed stdout.
func mustRun(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	r := run(t, stdin, args...)
	if r.err != nil {
		t.Fatalf("run %v error = %v (stderr: %s)", args, r.err, r.stderr)
	}
	return strings.TrimSpace(r.stdout)
}

const (
	testKey     = "0123456789abcdef"
	testEntries = `[
		{"key": "created_at", "type": "timestamp", "value": "2024-01-15T00:00:00.123456789Z", "direction": "desc"},
		{"key": "id", "value": 42}
	]`
)
