package macrocosm

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Status returns the gRPC status of err. A standard error anywhere in the
// chain decides the code, library errors are narrowed first. Other errors
// map to codes.Unknown.
func Status(err error) *status.Status {
	if lib, ok := err.(LibraryError); ok {
		return LibraryErrorToStd(lib).GRPCStatus()
	}
	return status.Convert(err)
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// handler errors into gRPC errors carrying their standard error code.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, Status(err).Err()
	}
}
