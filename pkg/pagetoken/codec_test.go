package pagetoken

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	cursorv1 "github.com/yndnr/pagetoken-go/api/proto/cursor/v1"
)

var createdAt = time.Date(2024, 1, 15, 0, 0, 0, 123456789, time.UTC)

// wireEntry builds a raw cursor.v1 payload with a single entry; set
// populates fields on the entry message.
func wireEntry(t *testing.T, set func(m protoreflect.Message, fd func(protoreflect.FieldNumber) protoreflect.FieldDescriptor)) []byte {
	t.Helper()

	msg := cursorv1.NewPayload()
	entriesFD := cursorv1.PayloadDescriptor().Fields().ByNumber(cursorv1.PayloadEntriesField)
	list := msg.Mutable(entriesFD).List()
	ev := list.NewElement()
	fields := cursorv1.EntryDescriptor().Fields()
	set(ev.Message(), fields.ByNumber)
	list.Append(ev)

	data, err := proto.Marshal(msg)
	if err != nil {
		t.Fatalf("proto.Marshal() error = %v", err)
	}
	return data
}

func TestCodec_RoundTrip(t *testing.T) {
	c := NewCodec()

	tests := []struct {
		name string
		in   Payload
	}{
		{"empty", Payload{}},
		{"string", NewPayload(Asc("name", String("alice")))},
		{"empty string", NewPayload(Asc("name", String("")))},
		{"unicode string", NewPayload(Desc("title", String("ページ 🚀")))},
		{"integer", NewPayload(Asc("id", Int(42)))},
		{"max int64", NewPayload(Asc("id", Int(math.MaxInt64)))},
		{"min int64", NewPayload(Asc("id", Int(math.MinInt64)))},
		{"float", NewPayload(Desc("score", Float(98.25)))},
		{"negative zero", NewPayload(Asc("score", Float(math.Copysign(0, -1))))},
		{"infinity", NewPayload(Asc("score", Float(math.Inf(1))))},
		{"nan", NewPayload(Asc("score", Float(math.NaN())))},
		{"bool", NewPayload(Asc("active", Bool(false)))},
		{"timestamp", NewPayload(Desc("created_at", Time(createdAt)))},
		{"pre-epoch timestamp", NewPayload(Asc("born", Time(time.Date(1901, 3, 4, 5, 6, 7, 8, time.UTC))))},
		{"composite", NewPayload(
			Desc("created_at", Time(createdAt)),
			Asc("priority", Int(3)),
			Asc("id", String("b7f3")),
		)},
		{"duplicate keys", NewPayload(
			Asc("k", Int(1)),
			Desc("k", Int(2)),
		)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := c.Encode(tt.in)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			got, err := c.Decode(data)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if diff := cmp.Diff(tt.in, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCodec_EncodeEmpty(t *testing.T) {
	data, err := NewCodec().Encode(Payload{})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if data == nil || len(data) != 0 {
		t.Errorf("Encode(empty) = %v, want empty non-nil slice", data)
	}
}

func TestCodec_DirectionDefault(t *testing.T) {
	c := NewCodec()

	data, err := c.Encode(NewPayload(Entry{Key: "id", Value: Int(42)}))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := c.Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Entries[0].Direction != Ascending {
		t.Errorf("Direction = %s, want asc", got.Entries[0].Direction)
	}
}

func TestCodec_Deterministic(t *testing.T) {
	c := NewCodec()
	p := NewPayload(Desc("created_at", Time(createdAt)), Asc("id", Int(42)))

	a, err := c.Encode(p)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	b, err := c.Encode(p)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if string(a) != string(b) {
		t.Error("Encode() is not deterministic")
	}
}

func TestCodec_EncodeErrors(t *testing.T) {
	c := NewCodec()

	tests := []struct {
		name    string
		in      Payload
		wantErr *Error
	}{
		{"absent value", NewPayload(Entry{Key: "id"}), ErrUnsupportedValue},
		{"empty key", NewPayload(Asc("", Int(1))), ErrInvalidEntry},
		{"invalid utf-8 key", NewPayload(Asc("\xff", Int(1))), ErrInvalidEntry},
		{"invalid utf-8 value", NewPayload(Asc("name", String("a\xffb"))), ErrInvalidEntry},
		{"timestamp out of range", NewPayload(Asc("t", Time(time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)))), ErrUnsupportedValue},
		{"bad entry after good one", NewPayload(Asc("id", Int(1)), Entry{Key: "x"}), ErrUnsupportedValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := c.Encode(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Encode() error = %v, want %v", err, tt.wantErr)
			}
			if data != nil {
				t.Errorf("Encode() data = %v, want nil on error", data)
			}
		})
	}
}

func TestCodec_DecodeAbsentValue(t *testing.T) {
	data := wireEntry(t, func(m protoreflect.Message, fd func(protoreflect.FieldNumber) protoreflect.FieldDescriptor) {
		m.Set(fd(cursorv1.EntryKeyField), protoreflect.ValueOfString("id"))
	})

	got, err := NewCodec().Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Len() != 1 {
		t.Fatalf("Decode() entries = %d, want 1", got.Len())
	}
	e := got.Entries[0]
	if e.Value.Present() {
		t.Errorf("Value = %v, want absent", e.Value)
	}
	if e.Direction != Ascending {
		t.Errorf("Direction = %s, want asc", e.Direction)
	}
}

func TestCodec_DecodeErrors(t *testing.T) {
	type setter = func(m protoreflect.Message, fd func(protoreflect.FieldNumber) protoreflect.FieldDescriptor)

	tests := []struct {
		name string
		set  setter
	}{
		{"multiple variants", func(m protoreflect.Message, fd func(protoreflect.FieldNumber) protoreflect.FieldDescriptor) {
			m.Set(fd(cursorv1.EntryKeyField), protoreflect.ValueOfString("id"))
			m.Set(fd(cursorv1.EntryStringField), protoreflect.ValueOfString("a"))
			m.Set(fd(cursorv1.EntryBoolField), protoreflect.ValueOfBool(true))
		}},
		{"empty key", func(m protoreflect.Message, fd func(protoreflect.FieldNumber) protoreflect.FieldDescriptor) {
			m.Set(fd(cursorv1.EntryIntField), protoreflect.ValueOfInt64(1))
		}},
		{"invalid timestamp", func(m protoreflect.Message, fd func(protoreflect.FieldNumber) protoreflect.FieldDescriptor) {
			m.Set(fd(cursorv1.EntryKeyField), protoreflect.ValueOfString("t"))
			ts := m.Mutable(fd(cursorv1.EntryTimestampField)).Message()
			ts.Set(ts.Descriptor().Fields().ByName("nanos"), protoreflect.ValueOfInt32(-1))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCodec().Decode(wireEntry(t, tt.set))
			if !errors.Is(err, ErrMalformedToken) {
				t.Errorf("Decode() error = %v, want ErrMalformedToken", err)
			}
		})
	}
}

func TestCodec_DecodeGarbage(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"truncated tag", []byte{0x0a}},
		{"length overflow", []byte{0x0a, 0x7f, 0x01}},
		{"invalid wire type", []byte{0x0f}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCodec().Decode(tt.data)
			if !errors.Is(err, ErrMalformedToken) {
				t.Errorf("Decode(%x) error = %v, want ErrMalformedToken", tt.data, err)
			}
		})
	}
}

func TestCodec_DecodeEmpty(t *testing.T) {
	got, err := NewCodec().Decode(nil)
	if err != nil {
		t.Fatalf("Decode(nil) error = %v", err)
	}
	if got.Len() != 0 {
		t.Errorf("Decode(nil) entries = %d, want 0", got.Len())
	}
}
