// Package agentrpc exposes the gRPC streaming variant of the status/crack
// submission endpoints: a single bidirectional StreamStatus RPC agents may
// prefer over repeated HTTP polling for high-frequency frames. Disabled by
// default (AgentRPCConfig.Enabled); the HTTP/JSON contract remains the
// baseline every agent must speak.
//
// The generated stubs under agentrpcpb/ are produced from proto/agentrpc.proto
// the same way the ent client is produced from ent/schema: by go generate,
// not checked in.
package agentrpc

//go:generate protoc --proto_path=proto --go_out=. --go_opt=module=github.com/cipherswarm/cipherswarm/pkg/agentrpc --go-grpc_out=. --go-grpc_opt=module=github.com/cipherswarm/cipherswarm/pkg/agentrpc proto/agentrpc.proto
