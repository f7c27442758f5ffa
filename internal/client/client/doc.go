// Package client talks to the foldervault sync service.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface): Ping and
//     CreateFolder/UpdateFolder/DeleteFolder/ListFolders.
//  2. A gRPC implementation (see GRPCClient) that manages a connection,
//     injects an access token via an interceptor, transparently refreshes
//     expired tokens, and maps gRPC status codes to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound. Anything else is
// wrapped as "rpc error: ...".
//
// GRPCClient is safe for concurrent use. It adds no deadlines of its own;
// callers bound calls through the context.
package client
