// Package pagetoken provides opaque pagination cursors.
package pagetoken

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spaolacci/murmur3"
)

// Encoding is a text form for binary tokens.
type Encoding string

const (
	// EncodingBase64URL is unpadded URL-safe base64, safe in query strings.
	EncodingBase64URL Encoding = "base64url"
	// EncodingBase64 is padded standard base64.
	EncodingBase64 Encoding = "base64"
	// EncodingHex is lowercase hexadecimal.
	EncodingHex Encoding = "hex"
)

// DefaultEncoding is the text form used by CreateString and ParseString.
const DefaultEncoding = EncodingBase64URL

// ParseEncoding normalizes an encoding name. An empty name selects
// DefaultEncoding.
func ParseEncoding(name string) (Encoding, error) {
	switch e := Encoding(strings.ToLower(strings.TrimSpace(name))); e {
	case "":
		return DefaultEncoding, nil
	case EncodingBase64URL, EncodingBase64, EncodingHex:
		return e, nil
	default:
		return "", fmt.Errorf("pagetoken: unknown encoding %q", name)
	}
}

// Encode renders token bytes as text.
func (e Encoding) Encode(token []byte) string {
	switch e {
	case EncodingBase64:
		return base64.StdEncoding.EncodeToString(token)
	case EncodingHex:
		return hex.EncodeToString(token)
	default:
		return base64.RawURLEncoding.EncodeToString(token)
	}
}

// Decode parses text produced by Encode. Failures are ErrMalformedToken.
func (e Encoding) Decode(s string) ([]byte, error) {
	var (
		token []byte
		err   error
	)
	switch e {
	case EncodingBase64:
		token, err = base64.StdEncoding.DecodeString(s)
	case EncodingHex:
		token, err = hex.DecodeString(s)
	default:
		token, err = base64.RawURLEncoding.DecodeString(s)
	}
	if err != nil {
		return nil, ErrMalformedToken.WithCause(err).WithDetails("invalid %s text", e)
	}
	return token, nil
}

// Fingerprint returns a short non-cryptographic hash of a token for log
// correlation. It does not reveal the token contents.
func Fingerprint(token []byte) string {
	return fmt.Sprintf("%08x", murmur3.Sum32(token))
}
