// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.9
// 	protoc        (unknown)
// source: aura/v1/uvm.proto

package aurav1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	structpb "google.golang.org/protobuf/types/known/structpb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type DispatchRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	TargetObjectId string                 `protobuf:"bytes,1,opt,name=target_object_id,json=targetObjectId,proto3" json:"target_object_id,omitempty"`
	MethodName     string                 `protobuf:"bytes,2,opt,name=method_name,json=methodName,proto3" json:"method_name,omitempty"`
	Args           []*structpb.Value      `protobuf:"bytes,3,rep,name=args,proto3" json:"args,omitempty"`
	Kwargs         *structpb.Struct       `protobuf:"bytes,4,opt,name=kwargs,proto3" json:"kwargs,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *DispatchRequest) Reset() {
	*x = DispatchRequest{}
	mi := &file_aura_v1_uvm_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DispatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DispatchRequest) ProtoMessage() {}

func (x *DispatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_uvm_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DispatchRequest.ProtoReflect.Descriptor instead.
func (*DispatchRequest) Descriptor() ([]byte, []int) {
	return file_aura_v1_uvm_proto_rawDescGZIP(), []int{0}
}

func (x *DispatchRequest) GetTargetObjectId() string {
	if x != nil {
		return x.TargetObjectId
	}
	return ""
}

func (x *DispatchRequest) GetMethodName() string {
	if x != nil {
		return x.MethodName
	}
	return ""
}

func (x *DispatchRequest) GetArgs() []*structpb.Value {
	if x != nil {
		return x.Args
	}
	return nil
}

func (x *DispatchRequest) GetKwargs() *structpb.Struct {
	if x != nil {
		return x.Kwargs
	}
	return nil
}

type DispatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Output        *structpb.Value        `protobuf:"bytes,1,opt,name=output,proto3" json:"output,omitempty"`
	StateChanged  bool                   `protobuf:"varint,2,opt,name=state_changed,json=stateChanged,proto3" json:"state_changed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DispatchResponse) Reset() {
	*x = DispatchResponse{}
	mi := &file_aura_v1_uvm_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DispatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DispatchResponse) ProtoMessage() {}

func (x *DispatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_uvm_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DispatchResponse.ProtoReflect.Descriptor instead.
func (*DispatchResponse) Descriptor() ([]byte, []int) {
	return file_aura_v1_uvm_proto_rawDescGZIP(), []int{1}
}

func (x *DispatchResponse) GetOutput() *structpb.Value {
	if x != nil {
		return x.Output
	}
	return nil
}

func (x *DispatchResponse) GetStateChanged() bool {
	if x != nil {
		return x.StateChanged
	}
	return false
}

type GetObjectRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ObjectId      string                 `protobuf:"bytes,1,opt,name=object_id,json=objectId,proto3" json:"object_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetObjectRequest) Reset() {
	*x = GetObjectRequest{}
	mi := &file_aura_v1_uvm_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetObjectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetObjectRequest) ProtoMessage() {}

func (x *GetObjectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_uvm_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetObjectRequest.ProtoReflect.Descriptor instead.
func (*GetObjectRequest) Descriptor() ([]byte, []int) {
	return file_aura_v1_uvm_proto_rawDescGZIP(), []int{2}
}

func (x *GetObjectRequest) GetObjectId() string {
	if x != nil {
		return x.ObjectId
	}
	return ""
}

type GetObjectResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ObjectId      string                 `protobuf:"bytes,1,opt,name=object_id,json=objectId,proto3" json:"object_id,omitempty"`
	Attributes    *structpb.Struct       `protobuf:"bytes,2,opt,name=attributes,proto3" json:"attributes,omitempty"`
	Methods       map[string]string      `protobuf:"bytes,3,rep,name=methods,proto3" json:"methods,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	PrototypeIds  []string               `protobuf:"bytes,4,rep,name=prototype_ids,json=prototypeIds,proto3" json:"prototype_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetObjectResponse) Reset() {
	*x = GetObjectResponse{}
	mi := &file_aura_v1_uvm_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetObjectResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetObjectResponse) ProtoMessage() {}

func (x *GetObjectResponse) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_uvm_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetObjectResponse.ProtoReflect.Descriptor instead.
func (*GetObjectResponse) Descriptor() ([]byte, []int) {
	return file_aura_v1_uvm_proto_rawDescGZIP(), []int{3}
}

func (x *GetObjectResponse) GetObjectId() string {
	if x != nil {
		return x.ObjectId
	}
	return ""
}

func (x *GetObjectResponse) GetAttributes() *structpb.Struct {
	if x != nil {
		return x.Attributes
	}
	return nil
}

func (x *GetObjectResponse) GetMethods() map[string]string {
	if x != nil {
		return x.Methods
	}
	return nil
}

func (x *GetObjectResponse) GetPrototypeIds() []string {
	if x != nil {
		return x.PrototypeIds
	}
	return nil
}

var File_aura_v1_uvm_proto protoreflect.FileDescriptor

const file_aura_v1_uvm_proto_rawDesc = "" +
	"\n" +
	"\x11aura/v1/uvm.proto\x12\aaura.v1\x1a\x1cgoogle/protobuf/struct.proto\"\xb9\x01\n" +
	"\x0fDispatchRequest\x12(\n" +
	"\x10target_object_id\x18\x01 \x01(\tR\x0etargetObjectId\x12\x1f\n" +
	"\vmethod_name\x18\x02 \x01(\tR\n" +
	"methodName\x12*\n" +
	"\x04args\x18\x03 \x03(\v2\x16.google.protobuf.ValueR\x04args\x12/\n" +
	"\x06kwargs\x18\x04 \x01(\v2\x17.google.protobuf.StructR\x06kwargs\"g\n" +
	"\x10DispatchResponse\x12.\n" +
	"\x06output\x18\x01 \x01(\v2\x16.google.protobuf.ValueR\x06output\x12#\n" +
	"\rstate_changed\x18\x02 \x01(\bR\fstateChanged\"/\n" +
	"\x10GetObjectRequest\x12\x1b\n" +
	"\tobject_id\x18\x01 \x01(\tR\bobjectId\"\x8d\x02\n" +
	"\x11GetObjectResponse\x12\x1b\n" +
	"\tobject_id\x18\x01 \x01(\tR\bobjectId\x127\n" +
	"\n" +
	"attributes\x18\x02 \x01(\v2\x17.google.protobuf.StructR\n" +
	"attributes\x12A\n" +
	"\amethods\x18\x03 \x03(\v2'.aura.v1.GetObjectResponse.MethodsEntryR\amethods\x12#\n" +
	"\rprototype_ids\x18\x04 \x03(\tR\fprototypeIds\x1a:\n" +
	"\fMethodsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x012\x9a\x01\n" +
	"\x0fDispatchService\x12A\n" +
	"\bDispatch\x12\x18.aura.v1.DispatchRequest\x1a\x19.aura.v1.DispatchResponse\"\x00\x12D\n" +
	"\tGetObject\x12\x19.aura.v1.GetObjectRequest\x1a\x1a.aura.v1.GetObjectResponse\"\x00B\x1cZ\x1aaura/gen/go/aura/v1;aurav1b\x06proto3"

var (
	file_aura_v1_uvm_proto_rawDescOnce sync.Once
	file_aura_v1_uvm_proto_rawDescData []byte
)

func file_aura_v1_uvm_proto_rawDescGZIP() []byte {
	file_aura_v1_uvm_proto_rawDescOnce.Do(func() {
		file_aura_v1_uvm_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_aura_v1_uvm_proto_rawDesc), len(file_aura_v1_uvm_proto_rawDesc)))
	})
	return file_aura_v1_uvm_proto_rawDescData
}

var file_aura_v1_uvm_proto_msgTypes = make([]protoimpl.MessageInfo, 5)
var file_aura_v1_uvm_proto_goTypes = []any{
	(*DispatchRequest)(nil),   // 0: aura.v1.DispatchRequest
	(*DispatchResponse)(nil),  // 1: aura.v1.DispatchResponse
	(*GetObjectRequest)(nil),  // 2: aura.v1.GetObjectRequest
	(*GetObjectResponse)(nil), // 3: aura.v1.GetObjectResponse
	nil,                       // 4: aura.v1.GetObjectResponse.MethodsEntry
	(*structpb.Value)(nil),    // 5: google.protobuf.Value
	(*structpb.Struct)(nil),   // 6: google.protobuf.Struct
}
var file_aura_v1_uvm_proto_depIdxs = []int32{
	5, // 0: aura.v1.DispatchRequest.args:type_name -> google.protobuf.Value
	6, // 1: aura.v1.DispatchRequest.kwargs:type_name -> google.protobuf.Struct
	5, // 2: aura.v1.DispatchResponse.output:type_name -> google.protobuf.Value
	6, // 3: aura.v1.GetObjectResponse.attributes:type_name -> google.protobuf.Struct
	4, // 4: aura.v1.GetObjectResponse.methods:type_name -> aura.v1.GetObjectResponse.MethodsEntry
	0, // 5: aura.v1.DispatchService.Dispatch:input_type -> aura.v1.DispatchRequest
	2, // 6: aura.v1.DispatchService.GetObject:input_type -> aura.v1.GetObjectRequest
	1, // 7: aura.v1.DispatchService.Dispatch:output_type -> aura.v1.DispatchResponse
	3, // 8: aura.v1.DispatchService.GetObject:output_type -> aura.v1.GetObjectResponse
	7, // [7:9] is the sub-list for method output_type
	5, // [5:7] is the sub-list for method input_type
	5, // [5:5] is the sub-list for extension type_name
	5, // [5:5] is the sub-list for extension extendee
	0, // [0:5] is the sub-list for field type_name
}

func init() { file_aura_v1_uvm_proto_init() }
func file_aura_v1_uvm_proto_init() {
	if File_aura_v1_uvm_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_aura_v1_uvm_proto_rawDesc), len(file_aura_v1_uvm_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   5,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_aura_v1_uvm_proto_goTypes,
		DependencyIndexes: file_aura_v1_uvm_proto_depIdxs,
		MessageInfos:      file_aura_v1_uvm_proto_msgTypes,
	}.Build()
	File_aura_v1_uvm_proto = out.File
	file_aura_v1_uvm_proto_goTypes = nil
	file_aura_v1_uvm_proto_depIdxs = nil
}
