package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yndnr/pagetoken-go/pkg/crypto/envelope"
	"github.com/yndnr/pagetoken-go/pkg/pagetoken"
)

// isolate points the home directory at a temp dir so the user's own
// ~/.pagetoken/cli.yaml never leaks into a test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Cipher.Key != "" {
		t.Errorf("Cipher.Key = %q, want empty", cfg.Cipher.Key)
	}
	if cfg.Cipher.Algorithm != "aes-128-ctr" {
		t.Errorf("Cipher.Algorithm = %q, want aes-128-ctr", cfg.Cipher.Algorithm)
	}
	if cfg.Cipher.KDF != KDFNone {
		t.Errorf("Cipher.KDF = %q, want %q", cfg.Cipher.KDF, KDFNone)
	}
	if cfg.Token.Encoding != "base64url" {
		t.Errorf("Token.Encoding = %q, want base64url", cfg.Token.Encoding)
	}
	if cfg.Output != "table" {
		t.Errorf("Output = %q, want table", cfg.Output)
	}
	if err := Verify(cfg); err != nil {
		t.Errorf("Verify(Default()) error = %v", err)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	home := isolate(t)

	want := filepath.Join(home, ".pagetoken", "cli.yaml")
	if got := DefaultConfigPath(); got != want {
		t.Errorf("DefaultConfigPath() = %q, want %q", got, want)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want %+v", *cfg, *Default())
	}
}

func TestLoad_DefaultPathFile(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".pagetoken", "cli.yaml"), "output: json\n")

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output != "json" {
		t.Errorf("Output = %q, want json", cfg.Output)
	}
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "cli.yaml")
	writeFile(t, path, `cipher:
  key: "0123456789abcdef"
  algorithm: aes-128-gcm
token:
  encoding: hex
log:
  level: info
output: yaml
`)
	t.Setenv("PAGETOKEN_LOG_LEVEL", "debug")
	t.Setenv("PAGETOKEN_OUTPUT", "json")

	cfg, err := Load(path, map[string]any{"output": "table"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"file", cfg.Cipher.Key, "0123456789abcdef"},
		{"file", cfg.Cipher.Algorithm, "aes-128-gcm"},
		{"file", cfg.Token.Encoding, "hex"},
		{"default", cfg.Log.Format, DefaultLogFormat},
		{"env over file", cfg.Log.Level, "debug"},
		{"override over env", cfg.Output, "table"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	if err == nil {
		t.Fatal("Load(missing) error = nil")
	}
}

func TestLoad_Invalid(t *testing.T) {
	isolate(t)

	_, err := Load("", map[string]any{"cipher.algorithm": "rot13"})
	if !errors.Is(err, envelope.ErrUnknownAlgorithm) {
		t.Errorf("Load() error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"hkdf", func(c *Config) { c.Cipher.KDF = "HKDF" }, ""},
		{"empty output", func(c *Config) { c.Output = "" }, ""},
		{"bad algorithm", func(c *Config) { c.Cipher.Algorithm = "des" }, "cipher.algorithm"},
		{"bad kdf", func(c *Config) { c.Cipher.KDF = "scrypt" }, "cipher.kdf"},
		{"bad key", func(c *Config) { c.Cipher.Key = "hex:zz" }, "cipher.key"},
		{"bad encoding", func(c *Config) { c.Token.Encoding = "base32" }, "token.encoding"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"bad output", func(c *Config) { c.Output = "csv" }, "output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := Verify(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Verify() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Verify() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestVerify_ReportsAll(t *testing.T) {
	cfg := Default()
	cfg.Cipher.Algorithm = "des"
	cfg.Output = "csv"

	err := Verify(cfg)
	if err == nil {
		t.Fatal("Verify() error = nil")
	}
	for _, want := range []string{"cipher.algorithm", "output"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Verify() error = %v, missing %q", err, want)
		}
	}
}

func TestSave(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "cli.yaml")

	cfg := Default()
	cfg.Cipher.Key = "hex:000102030405060708090a0b0c0d0e0f"
	cfg.Output = "json"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("file mode = %o, want 600", perm)
	}

	loaded, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("Load() = %+v, want %+v", *loaded, *cfg)
	}
}

func TestSanitize(t *testing.T) {
	cfg := Default()
	cfg.Cipher.Key = "hex:000102030405060708090a0b0c0d0e0f"

	sanitized := Sanitize(cfg)
	if sanitized.Cipher.Key == cfg.Cipher.Key {
		t.Error("Sanitize() did not mask the key")
	}
	if !strings.HasPrefix(sanitized.Cipher.Key, "hex:") {
		t.Errorf("Sanitize() key = %q, want hex: prefix kept", sanitized.Cipher.Key)
	}
	if cfg.Cipher.Key != "hex:000102030405060708090a0b0c0d0e0f" {
		t.Error("Sanitize() modified the original")
	}

	if got := Sanitize(Default()).Cipher.Key; got != "" {
		t.Errorf("Sanitize() empty key = %q, want empty", got)
	}
}

func TestConfig_ManagerConfig(t *testing.T) {
	secret := "correct horse battery staple"
	derived, err := envelope.DeriveKey([]byte(secret), "orders", envelope.AES256CTR)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}

	tests := []struct {
		name    string
		cipher  CipherSection
		wantKey []byte
		wantAlg envelope.Algorithm
		wantErr bool
	}{
		{
			name:    "no key",
			cipher:  CipherSection{Algorithm: "aes-128-ctr", KDF: KDFNone},
			wantAlg: envelope.AES128CTR,
		},
		{
			name:    "raw key",
			cipher:  CipherSection{Key: "0123456789abcdef", Algorithm: "aes-128-ctr", KDF: KDFNone},
			wantKey: []byte("0123456789abcdef"),
			wantAlg: envelope.AES128CTR,
		},
		{
			name:    "hex key",
			cipher:  CipherSection{Key: "hex:000102030405060708090a0b0c0d0e0f", Algorithm: "aes-128-gcm"},
			wantKey: []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
			wantAlg: envelope.AES128GCM,
		},
		{
			name:    "hkdf",
			cipher:  CipherSection{Key: secret, Algorithm: "aes-256-ctr", KDF: KDFHKDF, Label: "orders"},
			wantKey: derived,
			wantAlg: envelope.AES256CTR,
		},
		{
			name:    "hkdf short secret",
			cipher:  CipherSection{Key: "short", Algorithm: "aes-128-ctr", KDF: KDFHKDF},
			wantErr: true,
		},
		{
			name:    "bad key",
			cipher:  CipherSection{Key: "base64:!!!", Algorithm: "aes-128-ctr"},
			wantErr: true,
		},
		{
			name:    "bad algorithm",
			cipher:  CipherSection{Algorithm: "des"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Cipher = tt.cipher

			mc, err := cfg.ManagerConfig()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ManagerConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if mc.CipherAlgorithm != tt.wantAlg {
				t.Errorf("CipherAlgorithm = %q, want %q", mc.CipherAlgorithm, tt.wantAlg)
			}
			if !bytes.Equal(mc.CipherKey, tt.wantKey) {
				t.Errorf("CipherKey = %x, want %x", mc.CipherKey, tt.wantKey)
			}
		})
	}
}

func TestConfig_ManagerConfig_Roundtrip(t *testing.T) {
	cfg := Default()
	cfg.Cipher.Key = "a secret that is long enough"
	cfg.Cipher.KDF = KDFHKDF

	mc, err := cfg.ManagerConfig()
	if err != nil {
		t.Fatalf("ManagerConfig() error = %v", err)
	}
	m, err := pagetoken.New(mc)
	if err != nil {
		t.Fatalf("pagetoken.New() error = %v", err)
	}
	if !m.Encrypted() {
		t.Error("manager should be encrypted")
	}

	token, err := m.CreateToken(pagetoken.NewPayload(pagetoken.Asc("id", pagetoken.Int(7))))
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}
	if _, err := m.ParseToken(token); err != nil {
		t.Errorf("ParseToken() error = %v", err)
	}
}

func TestConfig_Encoding(t *testing.T) {
	tests := map[string]pagetoken.Encoding{
		"":          pagetoken.EncodingBase64URL,
		"hex":       pagetoken.EncodingHex,
		"BASE64":    pagetoken.EncodingBase64,
		"nonsense":  pagetoken.DefaultEncoding,
		"base64url": pagetoken.EncodingBase64URL,
	}
	for in, want := range tests {
		cfg := Default()
		cfg.Token.Encoding = in
		if got := cfg.Encoding(); got != want {
			t.Errorf("Encoding(%q) = %q, want %q", in, got, want)
		}
	}
}
