// Package pagetoken provides opaque pagination cursors.
package pagetoken

import (
	"unicode/utf8"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	cursorv1 "github.com/yndnr/pagetoken-go/api/proto/cursor/v1"
)

// Codec maps payloads to and from the cursor.v1 wire schema.
//
// A Codec holds only descriptors and is safe for concurrent use.
type Codec struct {
	payload protoreflect.MessageDescriptor
	entries protoreflect.FieldDescriptor

	key       protoreflect.FieldDescriptor
	asc       protoreflect.FieldDescriptor
	str       protoreflect.FieldDescriptor
	num       protoreflect.FieldDescriptor
	integer   protoreflect.FieldDescriptor
	boolean   protoreflect.FieldDescriptor
	timestamp protoreflect.FieldDescriptor
	seconds   protoreflect.FieldDescriptor
	nanos     protoreflect.FieldDescriptor

	// variants in decode precedence order
	variants []protoreflect.FieldDescriptor

	marshal   proto.MarshalOptions
	unmarshal proto.UnmarshalOptions
}

// NewCodec creates a codec for the cursor.v1 schema.
func NewCodec() *Codec {
	entry := cursorv1.EntryDescriptor().Fields()
	ts := entry.ByNumber(cursorv1.EntryTimestampField)

	c := &Codec{
		payload:   cursorv1.PayloadDescriptor(),
		entries:   cursorv1.PayloadDescriptor().Fields().ByNumber(cursorv1.PayloadEntriesField),
		key:       entry.ByNumber(cursorv1.EntryKeyField),
		asc:       entry.ByNumber(cursorv1.EntryAscField),
		str:       entry.ByNumber(cursorv1.EntryStringField),
		num:       entry.ByNumber(cursorv1.EntryNumberField),
		integer:   entry.ByNumber(cursorv1.EntryIntField),
		boolean:   entry.ByNumber(cursorv1.EntryBoolField),
		timestamp: ts,
		seconds:   ts.Message().Fields().ByName("seconds"),
		nanos:     ts.Message().Fields().ByName("nanos"),
		marshal:   proto.MarshalOptions{Deterministic: true},
		unmarshal: proto.UnmarshalOptions{DiscardUnknown: true},
	}
	c.variants = []protoreflect.FieldDescriptor{c.str, c.num, c.integer, c.boolean, c.timestamp}
	return c
}

// Encode serializes a payload. Entry order is preserved and duplicate keys
// are kept. Entries without a direction are written as ascending.
//
// Nothing is returned if any entry is invalid.
func (c *Codec) Encode(p Payload) ([]byte, error) {
	msg := dynamicpb.NewMessage(c.payload)
	list := msg.Mutable(c.entries).List()

	for i, e := range p.Entries {
		ev := list.NewElement()
		if err := c.encodeEntry(ev.Message(), i, e); err != nil {
			return nil, err
		}
		list.Append(ev)
	}

	data, err := c.marshal.Marshal(msg)
	if err != nil {
		return nil, ErrInvalidEntry.WithCause(err)
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}

func (c *Codec) encodeEntry(m protoreflect.Message, i int, e Entry) error {
	if e.Key == "" {
		return ErrInvalidEntry.WithDetails("entry %d: empty key", i)
	}
	if !utf8.ValidString(e.Key) {
		return ErrInvalidEntry.WithDetails("entry %d: key is not valid UTF-8", i)
	}

	m.Set(c.key, protoreflect.ValueOfString(e.Key))
	m.Set(c.asc, protoreflect.ValueOfBool(e.Direction.IsAscending()))

	v := e.Value
	switch v.kind {
	case KindString:
		if !utf8.ValidString(v.str) {
			return ErrInvalidEntry.WithDetails("entry %d (%s): string value is not valid UTF-8", i, e.Key)
		}
		m.Set(c.str, protoreflect.ValueOfString(v.str))
	case KindNumber:
		if v.isInt {
			m.Set(c.integer, protoreflect.ValueOfInt64(v.i))
		} else {
			m.Set(c.num, protoreflect.ValueOfFloat64(v.f))
		}
	case KindBool:
		m.Set(c.boolean, protoreflect.ValueOfBool(v.b))
	case KindTime:
		ts := timestamppb.New(v.t)
		if err := ts.CheckValid(); err != nil {
			return ErrUnsupportedValue.WithCause(err).WithDetails("entry %d (%s)", i, e.Key)
		}
		tm := m.Mutable(c.timestamp).Message()
		tm.Set(c.seconds, protoreflect.ValueOfInt64(ts.GetSeconds()))
		tm.Set(c.nanos, protoreflect.ValueOfInt32(ts.GetNanos()))
	default:
		return ErrUnsupportedValue.WithDetails("entry %d (%s): no value", i, e.Key)
	}
	return nil
}

// Decode parses wire bytes into a payload.
//
// A wire entry with no value variant decodes to an absent Value. An entry
// with more than one variant, an invalid timestamp or invalid UTF-8 makes
// the whole payload malformed; no partial result is returned.
func (c *Codec) Decode(data []byte) (Payload, error) {
	msg := dynamicpb.NewMessage(c.payload)
	if err := c.unmarshal.Unmarshal(data, msg); err != nil {
		return Payload{}, ErrMalformedToken.WithCause(err)
	}

	list := msg.Get(c.entries).List()
	entries := make([]Entry, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		e, err := c.decodeEntry(list.Get(i).Message(), i)
		if err != nil {
			return Payload{}, err
		}
		entries = append(entries, e)
	}

	return Payload{Entries: entries}, nil
}

func (c *Codec) decodeEntry(m protoreflect.Message, i int) (Entry, error) {
	key := m.Get(c.key).String()
	if key == "" {
		return Entry{}, ErrMalformedToken.WithDetails("entry %d: empty key", i)
	}
	if !utf8.ValidString(key) {
		return Entry{}, ErrMalformedToken.WithDetails("entry %d: key is not valid UTF-8", i)
	}

	e := Entry{Key: key, Direction: Descending}
	// unset asc reads as its declared default (true)
	if m.Get(c.asc).Bool() {
		e.Direction = Ascending
	}

	populated := 0
	for _, fd := range c.variants {
		if m.Has(fd) {
			populated++
		}
	}
	if populated > 1 {
		return Entry{}, ErrMalformedToken.WithDetails("entry %d (%s): %d value variants set", i, key, populated)
	}

	switch {
	case m.Has(c.str):
		s := m.Get(c.str).String()
		if !utf8.ValidString(s) {
			return Entry{}, ErrMalformedToken.WithDetails("entry %d (%s): string value is not valid UTF-8", i, key)
		}
		e.Value = String(s)
	case m.Has(c.num):
		e.Value = Float(m.Get(c.num).Float())
	case m.Has(c.integer):
		e.Value = Int(m.Get(c.integer).Int())
	case m.Has(c.boolean):
		e.Value = Bool(m.Get(c.boolean).Bool())
	case m.Has(c.timestamp):
		tm := m.Get(c.timestamp).Message()
		ts := &timestamppb.Timestamp{
			Seconds: tm.Get(c.seconds).Int(),
			Nanos:   int32(tm.Get(c.nanos).Int()),
		}
		if err := ts.CheckValid(); err != nil {
			return Entry{}, ErrMalformedToken.WithCause(err).WithDetails("entry %d (%s)", i, key)
		}
		e.Value = Time(ts.AsTime())
	}

	return e, nil
}
