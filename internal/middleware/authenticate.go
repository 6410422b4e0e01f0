package middleware

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	appctx "github.com/ferdiebergado/kubodir/internal/context"
	"github.com/ferdiebergado/kubodir/internal/platform/jwt"
)

const (
	headerAuthorization = "authorization"
	bearerPrefix        = "bearer "
)

// Authenticate requires a valid bearer token on every call except those whose
// full method starts with one of the exempt prefixes.
func Authenticate(verifier jwt.Verifier, exempt ...string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		for _, prefix := range exempt {
			if strings.HasPrefix(info.FullMethod, prefix) {
				return handler(ctx, req)
			}
		}

		token := bearerToken(ctx)
		if token == "" {
			return nil, status.Error(codes.Unauthenticated, "missing bearer token")
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid bearer token")
		}

		return handler(appctx.NewContextWithCaller(ctx, claims.Subject), req)
	}
}

func bearerToken(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	vals := md.Get(headerAuthorization)
	if len(vals) == 0 {
		return ""
	}

	v := strings.TrimSpace(vals[0])
	if len(v) <= len(bearerPrefix) || !strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(v[len(bearerPrefix):])
}
