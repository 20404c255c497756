// Package pagetoken provides opaque pagination cursors.
package pagetoken

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// Kind identifies the populated variant of a Value.
type Kind uint8

const (
	// KindAbsent is the zero Kind. Only decoding produces absent values.
	KindAbsent Kind = iota
	KindString
	KindNumber
	KindBool
	KindTime
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindTime:
		return "timestamp"
	default:
		return "absent"
	}
}

// Value is a sort-key value: exactly one of string, number, boolean or
// timestamp. The zero Value is absent.
//
// Numbers remember whether they were built from an integer, so int64 values
// survive a round trip without passing through float64.
type Value struct {
	kind  Kind
	str   string
	i     int64
	f     float64
	isInt bool
	b     bool
	t     time.Time
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Int returns an integral number value.
func Int(i int64) Value {
	return Value{kind: KindNumber, i: i, isInt: true}
}

// Float returns a floating-point number value.
func Float(f float64) Value {
	return Value{kind: KindNumber, f: f}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Time returns a timestamp value with nanosecond precision, in UTC.
// The monotonic clock reading and location are dropped.
func Time(t time.Time) Value {
	return Value{kind: KindTime, t: time.Unix(t.Unix(), int64(t.Nanosecond())).UTC()}
}

// ValueOf classifies a dynamic Go value.
//
// Supported inputs are strings, signed and unsigned integers (unsigned values
// must fit in int64), float32/float64, bool, time.Time, non-nil *time.Time,
// valid *timestamppb.Timestamp, json.Number and Value. Anything else fails
// with ErrUnsupportedValue.
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		if !x.Present() {
			return Value{}, ErrUnsupportedValue.WithDetails("absent value")
		}
		return x, nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return uintValue(uint64(x))
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return uintValue(x)
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case json.Number:
		return numberValue(x)
	case time.Time:
		return Time(x), nil
	case *time.Time:
		if x == nil {
			return Value{}, ErrUnsupportedValue.WithDetails("nil *time.Time")
		}
		return Time(*x), nil
	case *timestamppb.Timestamp:
		if err := x.CheckValid(); err != nil {
			return Value{}, ErrUnsupportedValue.WithCause(err)
		}
		return Time(x.AsTime()), nil
	case nil:
		return Value{}, ErrUnsupportedValue.WithDetails("nil")
	default:
		return Value{}, ErrUnsupportedValue.WithDetails("%T", v)
	}
}

func uintValue(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, ErrUnsupportedValue.WithDetails("unsigned value %d overflows int64", u)
	}
	return Int(int64(u)), nil
}

func numberValue(n json.Number) (Value, error) {
	if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
		return Int(i), nil
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return Value{}, ErrUnsupportedValue.WithDetails("invalid number %q", string(n))
	}
	return Float(f), nil
}

// Kind returns the populated variant.
func (v Value) Kind() Kind {
	return v.kind
}

// Present reports whether the value holds a variant.
func (v Value) Present() bool {
	return v.kind != KindAbsent
}

// Str returns the string variant.
func (v Value) Str() (string, bool) {
	return v.str, v.kind == KindString
}

// IsInt reports whether a number value is integral.
func (v Value) IsInt() bool {
	return v.kind == KindNumber && v.isInt
}

// Int64 returns an integral number value.
func (v Value) Int64() (int64, bool) {
	return v.i, v.IsInt()
}

// Float64 returns a number value as float64. Integral values are converted.
func (v Value) Float64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	if v.isInt {
		return float64(v.i), true
	}
	return v.f, true
}

// Boolean returns the boolean variant.
func (v Value) Boolean() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Timestamp returns the timestamp variant.
func (v Value) Timestamp() (time.Time, bool) {
	return v.t, v.kind == KindTime
}

// Interface returns the value as a plain Go value: string, int64, float64,
// bool, time.Time, or nil when absent.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		if v.isInt {
			return v.i
		}
		return v.f
	case KindBool:
		return v.b
	case KindTime:
		return v.t
	default:
		return nil
	}
}

// Equal reports whether two values hold the same variant and content.
// Timestamps compare at nanosecond resolution; NaN equals NaN.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindNumber:
		if v.isInt != o.isInt {
			return false
		}
		if v.isInt {
			return v.i == o.i
		}
		return v.f == o.f || (math.IsNaN(v.f) && math.IsNaN(o.f))
	case KindBool:
		return v.b == o.b
	case KindTime:
		return v.t.Equal(o.t)
	default:
		return true
	}
}

// String implements fmt.Stringer.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.str)
	case KindNumber:
		if v.isInt {
			return strconv.FormatInt(v.i, 10)
		}
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindTime:
		return v.t.Format(time.RFC3339Nano)
	default:
		return "<absent>"
	}
}

// GoString implements fmt.GoStringer.
func (v Value) GoString() string {
	return fmt.Sprintf("pagetoken.Value{%s: %s}", v.kind, v)
}
