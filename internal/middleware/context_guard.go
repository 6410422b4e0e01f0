package middleware

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// ContextGuard rejects calls whose deadline passed or that were cancelled before reaching the handler.
func ContextGuard(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, status.FromContextError(err).Err()
	}

	return handler(ctx, req)
}
