// Package cursorv1 provides the Protocol Buffer schema for page tokens.
//
// The schema (cursor.proto) is compiled into a protoreflect descriptor at
// init time, so no generated code is checked in. Messages are handled with
// dynamicpb:
//
//	msg := cursorv1.NewPayload()
//	err := proto.Unmarshal(data, msg)
//
// The value fields of PageTokenEntry form a logical oneof but are declared as
// independent optional fields. That keeps explicit presence for every
// variant, so a decoder can reject entries that carry more than one.
package cursorv1
