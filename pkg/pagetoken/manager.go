// Package pagetoken provides opaque pagination cursors.
package pagetoken

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/yndnr/pagetoken-go/pkg/crypto/envelope"
)

// Operation labels passed to Recorder and Logger.
const (
	OpCreate = "create"
	OpParse  = "parse"
)

// Config configures a Manager. It is resolved once by New.
type Config struct {
	// CipherKey enables encryption when non-empty. Its length must match
	// CipherAlgorithm (16 bytes for aes-128-ctr).
	CipherKey []byte

	// CipherAlgorithm names the envelope cipher. Empty selects
	// envelope.DefaultAlgorithm. Ignored without a CipherKey.
	CipherAlgorithm envelope.Algorithm
}

// DefaultConfig returns an unencrypted configuration.
func DefaultConfig() Config {
	return Config{
		CipherAlgorithm: envelope.DefaultAlgorithm,
	}
}

// Logger receives diagnostic messages. The internal telemetry logger and
// most structured loggers satisfy it.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

// Recorder receives token counters, e.g. for Prometheus.
type Recorder interface {
	TokenCreated(encrypted bool, size int)
	TokenParsed(encrypted bool, size int)
	TokenRejected(op, code string)
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(m *Manager) {
		if r != nil {
			m.rec = r
		}
	}
}

// WithCipher overrides the envelope cipher built from Config.
func WithCipher(c envelope.Cipher) Option {
	return func(m *Manager) {
		m.cipher = c
	}
}

// WithRejectLogSampling limits how often rejected tokens are logged: the
// first n rejections, then at most one per interval.
func WithRejectLogSampling(n int, interval time.Duration) Option {
	return func(m *Manager) {
		m.sampler = &rate.Sometimes{First: n, Interval: interval}
	}
}

// Manager creates and parses page tokens.
//
// Create: entries → Codec.Encode → [Cipher.Seal] → token.
// Parse: token → [Cipher.Open] → Codec.Decode → entries.
//
// A Manager is immutable after New and safe for concurrent use.
type Manager struct {
	codec   *Codec
	cipher  envelope.Cipher
	log     Logger
	rec     Recorder
	sampler *rate.Sometimes
}

// New creates a Manager from cfg.
func New(cfg Config, opts ...Option) (*Manager, error) {
	m := &Manager{
		codec:   NewCodec(),
		log:     nopLogger{},
		rec:     nopRecorder{},
		sampler: &rate.Sometimes{First: 10, Interval: 10 * time.Second},
	}

	if len(cfg.CipherKey) > 0 {
		alg := cfg.CipherAlgorithm
		if alg == "" {
			alg = envelope.DefaultAlgorithm
		}
		c, err := envelope.NewWithAlgorithm(cfg.CipherKey, alg)
		if err != nil {
			return nil, ErrInvalidConfig.WithCause(err)
		}
		m.cipher = c
	}

	for _, opt := range opts {
		opt(m)
	}

	m.log.Debug("page token manager ready", "encrypted", m.Encrypted(), "algorithm", string(m.Algorithm()))
	return m, nil
}

// Encrypted reports whether tokens are wrapped in an envelope.
func (m *Manager) Encrypted() bool {
	return m.cipher != nil
}

// Algorithm returns the envelope algorithm, or "" when unencrypted.
func (m *Manager) Algorithm() envelope.Algorithm {
	if m.cipher == nil {
		return ""
	}
	return m.cipher.Algorithm()
}

// CreateToken encodes p and encrypts it when a key is configured.
//
// It fails with ErrUnsupportedValue or ErrInvalidEntry when an entry cannot
// be encoded; no token is produced in that case.
func (m *Manager) CreateToken(p Payload) ([]byte, error) {
	data, err := m.codec.Encode(p)
	if err != nil {
		return nil, m.reject(OpCreate, nil, err)
	}

	if m.cipher != nil {
		data, err = m.cipher.Seal(data)
		if err != nil {
			return nil, m.reject(OpCreate, nil, ErrCipherFailure.WithCause(err))
		}
	}

	m.rec.TokenCreated(m.Encrypted(), len(data))
	return data, nil
}

// ParseToken decrypts token when a key is configured and decodes it.
//
// It fails with ErrCipherFailure when the envelope is unusable (e.g.
// shorter than the IV) and with ErrMalformedToken when the bytes are not a
// valid payload. Decoded entries may carry absent values.
func (m *Manager) ParseToken(token []byte) (Payload, error) {
	data := token
	if m.cipher != nil {
		var err error
		data, err = m.cipher.Open(token)
		if err != nil {
			return Payload{}, m.reject(OpParse, token, ErrCipherFailure.WithCause(err))
		}
	}

	p, err := m.codec.Decode(data)
	if err != nil {
		return Payload{}, m.reject(OpParse, token, err)
	}

	m.rec.TokenParsed(m.Encrypted(), len(token))
	return p, nil
}

// CreateString is CreateToken followed by DefaultEncoding.
func (m *Manager) CreateString(p Payload) (string, error) {
	token, err := m.CreateToken(p)
	if err != nil {
		return "", err
	}
	return DefaultEncoding.Encode(token), nil
}

// ParseString decodes DefaultEncoding text and calls ParseToken.
func (m *Manager) ParseString(s string) (Payload, error) {
	token, err := DefaultEncoding.Decode(s)
	if err != nil {
		return Payload{}, m.reject(OpParse, []byte(s), err)
	}
	return m.ParseToken(token)
}

// reject records a failure and logs it, throttled by the sampler.
// The token itself is never logged, only its fingerprint.
func (m *Manager) reject(op string, token []byte, err error) error {
	code := ErrorCode(err)
	m.rec.TokenRejected(op, code)

	m.sampler.Do(func() {
		args := []any{"op", op, "code", code, "error", err.Error()}
		if token != nil {
			args = append(args, "fingerprint", Fingerprint(token), "size", len(token))
		}
		m.log.Warn("page token rejected", args...)
	})
	return err
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

type nopRecorder struct{}

func (nopRecorder) TokenCreated(bool, int)       {}
func (nopRecorder) TokenParsed(bool, int)        {}
func (nopRecorder) TokenRejected(string, string) {}
