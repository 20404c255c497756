// Package pagetoken provides opaque pagination cursors.
package pagetoken

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

// entryJSON is the JSON form of an Entry:
//
//	{"key": "created_at", "type": "timestamp", "value": "2024-01-15T00:00:00.123456789Z", "direction": "desc"}
//
// "type" may be omitted for strings, numbers and booleans; timestamps need
// it because JSON has no timestamp type.
type entryJSON struct {
	Key       string          `json:"key"`
	Type      string          `json:"type,omitempty"`
	Value     json.RawMessage `json:"value"`
	Direction string          `json:"direction,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (e Entry) MarshalJSON() ([]byte, error) {
	out := entryJSON{
		Key:       e.Key,
		Direction: e.Direction.Resolve().String(),
	}

	var (
		raw []byte
		err error
	)
	switch v := e.Value; v.kind {
	case KindString:
		raw, err = json.Marshal(v.str)
	case KindNumber:
		if v.isInt {
			raw, err = json.Marshal(v.i)
		} else {
			if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
				return nil, fmt.Errorf("pagetoken: entry %q: %v has no JSON form", e.Key, v.f)
			}
			raw, err = json.Marshal(v.f)
		}
	case KindBool:
		raw, err = json.Marshal(v.b)
	case KindTime:
		raw, err = json.Marshal(v.t.Format(time.RFC3339Nano))
	default:
		raw = []byte("null")
	}
	if err != nil {
		return nil, err
	}
	if e.Value.Present() {
		out.Type = e.Value.kind.String()
	}
	out.Value = raw

	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var in entryJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	dir, err := ParseDirection(in.Direction)
	if err != nil {
		return err
	}

	v, err := valueFromJSON(in.Type, in.Value)
	if err != nil {
		return fmt.Errorf("entry %q: %w", in.Key, err)
	}

	*e = Entry{Key: in.Key, Value: v, Direction: dir}
	return nil
}

func valueFromJSON(typ string, raw json.RawMessage) (Value, error) {
	switch strings.ToLower(typ) {
	case "timestamp", "time":
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Value{}, ErrUnsupportedValue.WithCause(err)
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return Value{}, ErrUnsupportedValue.WithCause(err)
		}
		return Time(t), nil
	case "string":
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Value{}, ErrUnsupportedValue.WithCause(err)
		}
		return String(s), nil
	case "boolean", "bool":
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return Value{}, ErrUnsupportedValue.WithCause(err)
		}
		return Bool(b), nil
	case "number":
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return Value{}, ErrUnsupportedValue.WithCause(err)
		}
		return numberValue(n)
	case "":
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var x any
		if err := dec.Decode(&x); err != nil {
			return Value{}, ErrUnsupportedValue.WithCause(err)
		}
		return ValueOf(x)
	default:
		return Value{}, ErrUnsupportedValue.WithDetails("unknown type %q", typ)
	}
}
