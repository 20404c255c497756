package command

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/yndnr/pagetoken-go/pkg/crypto/envelope"
)

func TestKeygen(t *testing.T) {
	tests := []struct {
		algorithm string
		size      int
	}{
		{"aes-128-ctr", 16},
		{"aes-192-ctr", 24},
		{"aes-256-gcm", 32},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			out := mustRun(t, "", "--algorithm", tt.algorithm, "keygen")
			if !strings.HasPrefix(out, envelope.Base64KeyPrefix) {
				t.Fatalf("keygen output = %q, want %s prefix", out, envelope.Base64KeyPrefix)
			}

			key, err := envelope.ParseKey(out)
			if err != nil {
				t.Fatalf("ParseKey(%q) error = %v", out, err)
			}
			if len(key) != tt.size {
				t.Errorf("key length = %d, want %d", len(key), tt.size)
			}
		})
	}
}

func TestKeygen_Usable(t *testing.T) {
	key := mustRun(t, "", "--algorithm", "aes-256-ctr", "keygen")

	token := mustRun(t, "", "--key", key, "--algorithm", "aes-256-ctr", "create", "--payload", testEntries)
	mustRun(t, "", "--key", key, "--algorithm", "aes-256-ctr", "parse", token)
}

func TestKeygen_JSON(t *testing.T) {
	out := mustRun(t, "", "-o", "json", "keygen")

	var got keyResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}
	if got.Algorithm != string(envelope.DefaultAlgorithm) {
		t.Errorf("Algorithm = %q, want %q", got.Algorithm, envelope.DefaultAlgorithm)
	}
	if !strings.HasPrefix(got.Key, envelope.Base64KeyPrefix) {
		t.Errorf("Key = %q", got.Key)
	}
}

func TestKeygen_List(t *testing.T) {
	out := mustRun(t, "", "-o", "json", "keygen", "--list")

	var rows []algorithmRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}
	if len(rows) != len(envelope.Algorithms()) {
		t.Fatalf("listed %d algorithms, want %d", len(rows), len(envelope.Algorithms()))
	}
	for _, row := range rows {
		if want := strings.HasSuffix(row.Algorithm, "-gcm"); row.Authenticated != want {
			t.Errorf("%s: Authenticated = %v, want %v", row.Algorithm, row.Authenticated, want)
		}
	}
}
