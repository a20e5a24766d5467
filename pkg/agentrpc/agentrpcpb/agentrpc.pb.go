// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: agentrpc.proto

package agentrpcpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
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

// DeviceStatus mirrors the per-device entry of the HTTP HashcatStatus frame.
type DeviceStatus struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Id          int32                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Name        string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Type        string                 `protobuf:"bytes,3,opt,name=type,proto3" json:"type,omitempty"`
	Speed       int64                  `protobuf:"varint,4,opt,name=speed,proto3" json:"speed,omitempty"`
	Utilization int32                  `protobuf:"varint,5,opt,name=utilization,proto3" json:"utilization,omitempty"`
	// -1 means unmonitored.
	Temperature   int32 `protobuf:"varint,6,opt,name=temperature,proto3" json:"temperature,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeviceStatus) Reset() {
	*x = DeviceStatus{}
	mi := &file_agentrpc_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeviceStatus) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeviceStatus) ProtoMessage() {}

func (x *DeviceStatus) ProtoReflect() protoreflect.Message {
	mi := &file_agentrpc_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeviceStatus.ProtoReflect.Descriptor instead.
func (*DeviceStatus) Descriptor() ([]byte, []int) {
	return file_agentrpc_proto_rawDescGZIP(), []int{0}
}

func (x *DeviceStatus) GetId() int32 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *DeviceStatus) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *DeviceStatus) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *DeviceStatus) GetSpeed() int64 {
	if x != nil {
		return x.Speed
	}
	return 0
}

func (x *DeviceStatus) GetUtilization() int32 {
	if x != nil {
		return x.Utilization
	}
	return 0
}

func (x *DeviceStatus) GetTemperature() int32 {
	if x != nil {
		return x.Temperature
	}
	return 0
}

// CrackEntry is one cracked hash piggy-backed on a status frame.
type CrackEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TimestampUnix int64                  `protobuf:"varint,1,opt,name=timestamp_unix,json=timestampUnix,proto3" json:"timestamp_unix,omitempty"`
	Hash          string                 `protobuf:"bytes,2,opt,name=hash,proto3" json:"hash,omitempty"`
	PlainText     string                 `protobuf:"bytes,3,opt,name=plain_text,json=plainText,proto3" json:"plain_text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CrackEntry) Reset() {
	*x = CrackEntry{}
	mi := &file_agentrpc_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CrackEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CrackEntry) ProtoMessage() {}

func (x *CrackEntry) ProtoReflect() protoreflect.Message {
	mi := &file_agentrpc_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CrackEntry.ProtoReflect.Descriptor instead.
func (*CrackEntry) Descriptor() ([]byte, []int) {
	return file_agentrpc_proto_rawDescGZIP(), []int{1}
}

func (x *CrackEntry) GetTimestampUnix() int64 {
	if x != nil {
		return x.TimestampUnix
	}
	return 0
}

func (x *CrackEntry) GetHash() string {
	if x != nil {
		return x.Hash
	}
	return ""
}

func (x *CrackEntry) GetPlainText() string {
	if x != nil {
		return x.PlainText
	}
	return ""
}

// StatusFrame is one hashcat progress report for a leased task.
type StatusFrame struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	TaskId          int64                  `protobuf:"varint,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	Session         string                 `protobuf:"bytes,2,opt,name=session,proto3" json:"session,omitempty"`
	Status          int32                  `protobuf:"varint,3,opt,name=status,proto3" json:"status,omitempty"`
	Target          string                 `protobuf:"bytes,4,opt,name=target,proto3" json:"target,omitempty"`
	ProgressDone    int64                  `protobuf:"varint,5,opt,name=progress_done,json=progressDone,proto3" json:"progress_done,omitempty"`
	ProgressTotal   int64                  `protobuf:"varint,6,opt,name=progress_total,json=progressTotal,proto3" json:"progress_total,omitempty"`
	RestorePoint    int64                  `protobuf:"varint,7,opt,name=restore_point,json=restorePoint,proto3" json:"restore_point,omitempty"`
	RecoveredHashes []string               `protobuf:"bytes,8,rep,name=recovered_hashes,json=recoveredHashes,proto3" json:"recovered_hashes,omitempty"`
	RecoveredSalts  []string               `protobuf:"bytes,9,rep,name=recovered_salts,json=recoveredSalts,proto3" json:"recovered_salts,omitempty"`
	Rejected        int64                  `protobuf:"varint,10,opt,name=rejected,proto3" json:"rejected,omitempty"`
	Devices         []*DeviceStatus        `protobuf:"bytes,11,rep,name=devices,proto3" json:"devices,omitempty"`
	// Unix seconds; 0 means unset.
	TimeStartUnix     int64  `protobuf:"varint,12,opt,name=time_start_unix,json=timeStartUnix,proto3" json:"time_start_unix,omitempty"`
	EstimatedStopUnix int64  `protobuf:"varint,13,opt,name=estimated_stop_unix,json=estimatedStopUnix,proto3" json:"estimated_stop_unix,omitempty"`
	HashcatGuess      string `protobuf:"bytes,14,opt,name=hashcat_guess,json=hashcatGuess,proto3" json:"hashcat_guess,omitempty"`
	// Cracked hashes observed since the previous frame, if any.
	Cracks        []*CrackEntry `protobuf:"bytes,15,rep,name=cracks,proto3" json:"cracks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StatusFrame) Reset() {
	*x = StatusFrame{}
	mi := &file_agentrpc_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StatusFrame) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatusFrame) ProtoMessage() {}

func (x *StatusFrame) ProtoReflect() protoreflect.Message {
	mi := &file_agentrpc_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StatusFrame.ProtoReflect.Descriptor instead.
func (*StatusFrame) Descriptor() ([]byte, []int) {
	return file_agentrpc_proto_rawDescGZIP(), []int{2}
}

func (x *StatusFrame) GetTaskId() int64 {
	if x != nil {
		return x.TaskId
	}
	return 0
}

func (x *StatusFrame) GetSession() string {
	if x != nil {
		return x.Session
	}
	return ""
}

func (x *StatusFrame) GetStatus() int32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *StatusFrame) GetTarget() string {
	if x != nil {
		return x.Target
	}
	return ""
}

func (x *StatusFrame) GetProgressDone() int64 {
	if x != nil {
		return x.ProgressDone
	}
	return 0
}

func (x *StatusFrame) GetProgressTotal() int64 {
	if x != nil {
		return x.ProgressTotal
	}
	return 0
}

func (x *StatusFrame) GetRestorePoint() int64 {
	if x != nil {
		return x.RestorePoint
	}
	return 0
}

func (x *StatusFrame) GetRecoveredHashes() []string {
	if x != nil {
		return x.RecoveredHashes
	}
	return nil
}

func (x *StatusFrame) GetRecoveredSalts() []string {
	if x != nil {
		return x.RecoveredSalts
	}
	return nil
}

func (x *StatusFrame) GetRejected() int64 {
	if x != nil {
		return x.Rejected
	}
	return 0
}

func (x *StatusFrame) GetDevices() []*DeviceStatus {
	if x != nil {
		return x.Devices
	}
	return nil
}

func (x *StatusFrame) GetTimeStartUnix() int64 {
	if x != nil {
		return x.TimeStartUnix
	}
	return 0
}

func (x *StatusFrame) GetEstimatedStopUnix() int64 {
	if x != nil {
		return x.EstimatedStopUnix
	}
	return 0
}

func (x *StatusFrame) GetHashcatGuess() string {
	if x != nil {
		return x.HashcatGuess
	}
	return ""
}

func (x *StatusFrame) GetCracks() []*CrackEntry {
	if x != nil {
		return x.Cracks
	}
	return nil
}

// Ack is the per-frame response.
type Ack struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	TaskId   int64                  `protobuf:"varint,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	Accepted bool                   `protobuf:"varint,2,opt,name=accepted,proto3" json:"accepted,omitempty"`
	// Set when accepted is false: "conflict" for lease mismatches the agent
	// should re-sync on, "error" otherwise.
	Error              string  `protobuf:"bytes,3,opt,name=error,proto3" json:"error,omitempty"`
	ProgressPercentage float64 `protobuf:"fixed64,4,opt,name=progress_percentage,json=progressPercentage,proto3" json:"progress_percentage,omitempty"`
	// Unix seconds; 0 when no reliable estimate exists.
	EstimatedFinishUnix int64 `protobuf:"varint,5,opt,name=estimated_finish_unix,json=estimatedFinishUnix,proto3" json:"estimated_finish_unix,omitempty"`
	NewCracks           int32 `protobuf:"varint,6,opt,name=new_cracks,json=newCracks,proto3" json:"new_cracks,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *Ack) Reset() {
	*x = Ack{}
	mi := &file_agentrpc_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Ack) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Ack) ProtoMessage() {}

func (x *Ack) ProtoReflect() protoreflect.Message {
	mi := &file_agentrpc_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Ack.ProtoReflect.Descriptor instead.
func (*Ack) Descriptor() ([]byte, []int) {
	return file_agentrpc_proto_rawDescGZIP(), []int{3}
}

func (x *Ack) GetTaskId() int64 {
	if x != nil {
		return x.TaskId
	}
	return 0
}

func (x *Ack) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

func (x *Ack) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

func (x *Ack) GetProgressPercentage() float64 {
	if x != nil {
		return x.ProgressPercentage
	}
	return 0
}

func (x *Ack) GetEstimatedFinishUnix() int64 {
	if x != nil {
		return x.EstimatedFinishUnix
	}
	return 0
}

func (x *Ack) GetNewCracks() int32 {
	if x != nil {
		return x.NewCracks
	}
	return 0
}

var File_agentrpc_proto protoreflect.FileDescriptor

const file_agentrpc_proto_rawDesc = "" +
	"\n" +
	"\x0eagentrpc.proto\x12\x17cipherswarm.agentrpc.v1\"\xa0\x01\n" +
	"\fDeviceStatus\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x05R\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x12\n" +
	"\x04type\x18\x03 \x01(\tR\x04type\x12\x14\n" +
	"\x05speed\x18\x04 \x01(\x03R\x05speed\x12 \n" +
	"\vutilization\x18\x05 \x01(\x05R\vutilization\x12 \n" +
	"\vtemperature\x18\x06 \x01(\x05R\vtemperature\"f\n" +
	"\n" +
	"CrackEntry\x12%\n" +
	"\x0etimestamp_unix\x18\x01 \x01(\x03R\rtimestampUnix\x12\x12\n" +
	"\x04hash\x18\x02 \x01(\tR\x04hash\x12\x1d\n" +
	"\n" +
	"plain_text\x18\x03 \x01(\tR\tplainText\"\xcc\x04\n" +
	"\vStatusFrame\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\x03R\x06taskId\x12\x18\n" +
	"\asession\x18\x02 \x01(\tR\asession\x12\x16\n" +
	"\x06status\x18\x03 \x01(\x05R\x06status\x12\x16\n" +
	"\x06target\x18\x04 \x01(\tR\x06target\x12#\n" +
	"\rprogress_done\x18\x05 \x01(\x03R\fprogressDone\x12%\n" +
	"\x0eprogress_total\x18\x06 \x01(\x03R\rprogressTotal\x12#\n" +
	"\rrestore_point\x18\a \x01(\x03R\frestorePoint\x12)\n" +
	"\x10recovered_hashes\x18\b \x03(\tR\x0frecoveredHashes\x12'\n" +
	"\x0frecovered_salts\x18\t \x03(\tR\x0erecoveredSalts\x12\x1a\n" +
	"\brejected\x18\n" +
	" \x01(\x03R\brejected\x12?\n" +
	"\adevices\x18\v \x03(\v2%.cipherswarm.agentrpc.v1.DeviceStatusR\adevices\x12&\n" +
	"\x0ftime_start_unix\x18\f \x01(\x03R\rtimeStartUnix\x12.\n" +
	"\x13estimated_stop_unix\x18\r \x01(\x03R\x11estimatedStopUnix\x12#\n" +
	"\rhashcat_guess\x18\x0e \x01(\tR\fhashcatGuess\x12;\n" +
	"\x06cracks\x18\x0f \x03(\v2#.cipherswarm.agentrpc.v1.CrackEntryR\x06cracks\"\xd4\x01\n" +
	"\x03Ack\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\x03R\x06taskId\x12\x1a\n" +
	"\baccepted\x18\x02 \x01(\bR\baccepted\x12\x14\n" +
	"\x05error\x18\x03 \x01(\tR\x05error\x12/\n" +
	"\x13progress_percentage\x18\x04 \x01(\x01R\x12progressPercentage\x122\n" +
	"\x15estimated_finish_unix\x18\x05 \x01(\x03R\x13estimatedFinishUnix\x12\x1d\n" +
	"\n" +
	"new_cracks\x18\x06 \x01(\x05R\tnewCracks2e\n" +
	"\vAgentStream\x12V\n" +
	"\fStreamStatus\x12$.cipherswarm.agentrpc.v1.StatusFrame\x1a\x1c.cipherswarm.agentrpc.v1.Ack(\x010\x01B<Z:github.com/cipherswarm/cipherswarm/pkg/agentrpc/agentrpcpbb\x06proto3"

var (
	file_agentrpc_proto_rawDescOnce sync.Once
	file_agentrpc_proto_rawDescData []byte
)

func file_agentrpc_proto_rawDescGZIP() []byte {
	file_agentrpc_proto_rawDescOnce.Do(func() {
		file_agentrpc_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_agentrpc_proto_rawDesc), len(file_agentrpc_proto_rawDesc)))
	})
	return file_agentrpc_proto_rawDescData
}

var file_agentrpc_proto_msgTypes = make([]protoimpl.MessageInfo, 4)
var file_agentrpc_proto_goTypes = []any{
	(*DeviceStatus)(nil), // 0: cipherswarm.agentrpc.v1.DeviceStatus
	(*CrackEntry)(nil),   // 1: cipherswarm.agentrpc.v1.CrackEntry
	(*StatusFrame)(nil),  // 2: cipherswarm.agentrpc.v1.StatusFrame
	(*Ack)(nil),          // 3: cipherswarm.agentrpc.v1.Ack
}
var file_agentrpc_proto_depIdxs = []int32{
	0, // 0: cipherswarm.agentrpc.v1.StatusFrame.devices:type_name -> cipherswarm.agentrpc.v1.DeviceStatus
	1, // 1: cipherswarm.agentrpc.v1.StatusFrame.cracks:type_name -> cipherswarm.agentrpc.v1.CrackEntry
	2, // 2: cipherswarm.agentrpc.v1.AgentStream.StreamStatus:input_type -> cipherswarm.agentrpc.v1.StatusFrame
	3, // 3: cipherswarm.agentrpc.v1.AgentStream.StreamStatus:output_type -> cipherswarm.agentrpc.v1.Ack
	3, // [3:4] is the sub-list for method output_type
	2, // [2:3] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_agentrpc_proto_init() }
func file_agentrpc_proto_init() {
	if File_agentrpc_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_agentrpc_proto_rawDesc), len(file_agentrpc_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   4,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_agentrpc_proto_goTypes,
		DependencyIndexes: file_agentrpc_proto_depIdxs,
		MessageInfos:      file_agentrpc_proto_msgTypes,
	}.Build()
	File_agentrpc_proto = out.File
	file_agentrpc_proto_goTypes = nil
	file_agentrpc_proto_depIdxs = nil
}
