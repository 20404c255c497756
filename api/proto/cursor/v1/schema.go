package cursorv1

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	// FilePath is the import path of the schema file.
	FilePath = "pagetoken/cursor/v1/cursor.proto"

	// Package is the protobuf package name.
	Package = "pagetoken.cursor.v1"
)

// Message names.
const (
	PayloadMessage protoreflect.Name = "PageTokenPayload"
	EntryMessage   protoreflect.Name = "PageTokenEntry"
)

// Field numbers of PageTokenPayload.
const (
	PayloadEntriesField protoreflect.FieldNumber = 1
)

// Field numbers of PageTokenEntry.
const (
	EntryKeyField       protoreflect.FieldNumber = 1
	EntryAscField       protoreflect.FieldNumber = 2
	EntryStringField    protoreflect.FieldNumber = 3
	EntryNumberField    protoreflect.FieldNumber = 4
	EntryBoolField      protoreflect.FieldNumber = 5
	EntryTimestampField protoreflect.FieldNumber = 6
	EntryIntField       protoreflect.FieldNumber = 7
)

var file protoreflect.FileDescriptor

func init() {
	fd, err := buildFile()
	if err != nil {
		panic("cursorv1: build descriptor: " + err.Error())
	}
	file = fd
}

// File returns the schema file descriptor.
func File() protoreflect.FileDescriptor {
	return file
}

// PayloadDescriptor returns the descriptor of PageTokenPayload.
func PayloadDescriptor() protoreflect.MessageDescriptor {
	return file.Messages().ByName(PayloadMessage)
}

// EntryDescriptor returns the descriptor of PageTokenEntry.
func EntryDescriptor() protoreflect.MessageDescriptor {
	return file.Messages().ByName(EntryMessage)
}

// NewPayload returns an empty PageTokenPayload message.
func NewPayload() *dynamicpb.Message {
	return dynamicpb.NewMessage(PayloadDescriptor())
}

// FileDescriptorProto returns a copy of the schema in descriptor form.
func FileDescriptorProto() *descriptorpb.FileDescriptorProto {
	return protodesc.ToFileDescriptorProto(file)
}

func buildFile() (protoreflect.FileDescriptor, error) {
	deps := new(protoregistry.Files)
	if err := deps.RegisterFile(timestamppb.File_google_protobuf_timestamp_proto); err != nil {
		return nil, err
	}
	return protodesc.NewFile(fileProto(), deps)
}

func fileProto() *descriptorpb.FileDescriptorProto {
	field := func(name string, num protoreflect.FieldNumber, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
		return &descriptorpb.FieldDescriptorProto{
			Name:   proto.String(name),
			Number: proto.Int32(int32(num)),
			Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
			Type:   typ.Enum(),
		}
	}

	entries := field("entries", PayloadEntriesField, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE)
	entries.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	entries.TypeName = proto.String("." + Package + "." + string(EntryMessage))

	asc := field("asc", EntryAscField, descriptorpb.FieldDescriptorProto_TYPE_BOOL)
	asc.DefaultValue = proto.String("true")

	ts := field("t_value", EntryTimestampField, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE)
	ts.TypeName = proto.String(".google.protobuf.Timestamp")

	return &descriptorpb.FileDescriptorProto{
		Name:       proto.String(FilePath),
		Package:    proto.String(Package),
		Syntax:     proto.String("proto2"),
		Dependency: []string{timestamppb.File_google_protobuf_timestamp_proto.Path()},
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name:  proto.String(string(PayloadMessage)),
				Field: []*descriptorpb.FieldDescriptorProto{entries},
			},
			{
				Name: proto.String(string(EntryMessage)),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("key", EntryKeyField, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					asc,
					field("s_value", EntryStringField, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					field("n_value", EntryNumberField, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
					field("b_value", EntryBoolField, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
					ts,
					field("i_value", EntryIntField, descriptorpb.FieldDescriptorProto_TYPE_SINT64),
				},
			},
		},
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("github.com/yndnr/pagetoken-go/api/proto/cursor/v1;cursorv1"),
		},
	}
}
