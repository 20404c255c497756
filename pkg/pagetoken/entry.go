// Package pagetoken provides opaque pagination cursors.
package pagetoken

import (
	"fmt"
	"strings"
)

// Direction is the sort direction of an entry.
type Direction int8

const (
	// DirectionUnspecified encodes as Ascending.
	DirectionUnspecified Direction = iota
	Ascending
	Descending
)

// ParseDirection parses "asc"/"ascending" and "desc"/"descending".
// An empty string yields DirectionUnspecified.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DirectionUnspecified, nil
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return DirectionUnspecified, fmt.Errorf("pagetoken: unknown direction %q", s)
	}
}

// IsAscending reports whether the direction sorts ascending.
// DirectionUnspecified counts as ascending.
func (d Direction) IsAscending() bool {
	return d != Descending
}

// Resolve maps DirectionUnspecified to Ascending.
func (d Direction) Resolve() Direction {
	if d == Descending {
		return Descending
	}
	return Ascending
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return "unspecified"
	}
}

// Entry is one component of a composite sort-key position.
type Entry struct {
	// Key names the sort field.
	Key string
	// Value is the position within that field. Decoded entries may carry an
	// absent value; check Value.Present before use.
	Value Value
	// Direction is the sort direction of the field.
	Direction Direction
}

// Asc returns an ascending entry.
func Asc(key string, v Value) Entry {
	return Entry{Key: key, Value: v, Direction: Ascending}
}

// Desc returns a descending entry.
func Desc(key string, v Value) Entry {
	return Entry{Key: key, Value: v, Direction: Descending}
}

// NewEntry classifies a dynamic value with ValueOf and builds an entry.
func NewEntry(key string, value any, dir Direction) (Entry, error) {
	v, err := ValueOf(value)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Key: key, Value: v, Direction: dir}, nil
}

// Equal reports whether two entries have the same key, resolved direction
// and value.
func (e Entry) Equal(o Entry) bool {
	return e.Key == o.Key &&
		e.Direction.Resolve() == o.Direction.Resolve() &&
		e.Value.Equal(o.Value)
}

// String implements fmt.Stringer.
func (e Entry) String() string {
	return fmt.Sprintf("%s %s %s", e.Key, e.Direction.Resolve(), e.Value)
}

// Payload is the ordered list of entries carried by a token. Order mirrors
// the composite sort order of the query; duplicate keys are kept.
type Payload struct {
	Entries []Entry `json:"entries"`
}

// NewPayload returns a payload holding entries.
func NewPayload(entries ...Entry) Payload {
	return Payload{Entries: entries}
}

// Len returns the number of entries.
func (p Payload) Len() int {
	return len(p.Entries)
}

// Get returns the first entry with the given key.
func (p Payload) Get(key string) (Entry, bool) {
	for _, e := range p.Entries {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Equal reports whether two payloads hold equal entries in the same order.
func (p Payload) Equal(o Payload) bool {
	if len(p.Entries) != len(o.Entries) {
		return false
	}
	for i := range p.Entries {
		if !p.Entries[i].Equal(o.Entries[i]) {
			return false
		}
	}
	return true
}
