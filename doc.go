// Package macrocosm is the runtime support of generated contract code.
//
// Error types generated with derive error narrow to and promote from
// [StdError], and wrap [LibraryError], the runtime's own error type,
// in their Macrocosm variant:
//
//	if err := coins.Sub(fee); err != nil {
//	    return msg.ContractErrorFromStd(macrocosm.OverflowErr(err.Error()))
//	}
//
// Standard errors carry a gRPC status, so errors returned by query
// handlers keep their code across the transport:
//
//	srv := grpc.NewServer(grpc.UnaryInterceptor(macrocosm.UnaryServerInterceptor()))
//
// Query registries live in the [github.com/syssam/macrocosm/schema] package.
package macrocosm

//go:generate go run ./cmd/macrocosm generate --package github.com/syssam/macrocosm --target . library_error.yaml
