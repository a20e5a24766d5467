// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: agentrpc.proto

package agentrpcpb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	AgentStream_StreamStatus_FullMethodName = "/cipherswarm.agentrpc.v1.AgentStream/StreamStatus"
)

// AgentStreamClient is the client API for AgentStream service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AgentStream is the optional streaming sibling of the HTTP status/crack
// submission endpoints: agents holding a lease may hold one bidirectional
// stream open and push frames instead of polling POST requests. Semantics
// are identical to the HTTP endpoints; every frame is acknowledged.
type AgentStreamClient interface {
	StreamStatus(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[StatusFrame, Ack], error)
}

type agentStreamClient struct {
	cc grpc.ClientConnInterface
}

func NewAgentStreamClient(cc grpc.ClientConnInterface) AgentStreamClient {
	return &agentStreamClient{cc}
}

func (c *agentStreamClient) StreamStatus(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[StatusFrame, Ack], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &AgentStream_ServiceDesc.Streams[0], AgentStream_StreamStatus_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[StatusFrame, Ack]{ClientStream: stream}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type AgentStream_StreamStatusClient = grpc.BidiStreamingClient[StatusFrame, Ack]

// AgentStreamServer is the server API for AgentStream service.
// All implementations must embed UnimplementedAgentStreamServer
// for forward compatibility.
//
// AgentStream is the optional streaming sibling of the HTTP status/crack
// submission endpoints: agents holding a lease may hold one bidirectional
// stream open and push frames instead of polling POST requests. Semantics
// are identical to the HTTP endpoints; every frame is acknowledged.
type AgentStreamServer interface {
	StreamStatus(grpc.BidiStreamingServer[StatusFrame, Ack]) error
	mustEmbedUnimplementedAgentStreamServer()
}

// UnimplementedAgentStreamServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAgentStreamServer struct{}

func (UnimplementedAgentStreamServer) StreamStatus(grpc.BidiStreamingServer[StatusFrame, Ack]) error {
	return status.Error(codes.Unimplemented, "method StreamStatus not implemented")
}
func (UnimplementedAgentStreamServer) mustEmbedUnimplementedAgentStreamServer() {}
func (UnimplementedAgentStreamServer) testEmbeddedByValue()                     {}

// UnsafeAgentStreamServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AgentStreamServer will
// result in compilation errors.
type UnsafeAgentStreamServer interface {
	mustEmbedUnimplementedAgentStreamServer()
}

func RegisterAgentStreamServer(s grpc.ServiceRegistrar, srv AgentStreamServer) {
	// If the following call panics, it indicates UnimplementedAgentStreamServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AgentStream_ServiceDesc, srv)
}

func _AgentStream_StreamStatus_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(AgentStreamServer).StreamStatus(&grpc.GenericServerStream[StatusFrame, Ack]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type AgentStream_StreamStatusServer = grpc.BidiStreamingServer[StatusFrame, Ack]

// AgentStream_ServiceDesc is the grpc.ServiceDesc for AgentStream service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AgentStream_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "cipherswarm.agentrpc.v1.AgentStream",
	HandlerType: (*AgentStreamServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamStatus",
			Handler:       _AgentStream_StreamStatus_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "agentrpc.proto",
}
