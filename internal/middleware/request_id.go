package middleware

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	appctx "github.com/ferdiebergado/kubodir/internal/context"
)

const HeaderRequestID = "x-request-id"

// RequestID tags the call with the caller supplied request id, or a new one,
// and echoes it in the response header.
func RequestID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	var requestID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get(HeaderRequestID); len(vals) > 0 {
			requestID = vals[0]
		}
	}

	if requestID == "" {
		requestID = uuid.NewString()
	}

	_ = grpc.SetHeader(ctx, metadata.Pairs(HeaderRequestID, requestID))

	return handler(appctx.NewContextWithRequestID(ctx, requestID), req)
}
