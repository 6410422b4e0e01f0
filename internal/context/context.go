package context

import "context"

type ctxKey int

const (
	requestIDCtxKey ctxKey = iota + 1
	callerCtxKey
)

func NewContextWithRequestID(baseCtx context.Context, requestID string) context.Context {
	return context.WithValue(baseCtx, requestIDCtxKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDCtxKey).(string)
	return id
}

// NewContextWithCaller stores the authenticated subject of the call.
func NewContextWithCaller(baseCtx context.Context, subject string) context.Context {
	return context.WithValue(baseCtx, callerCtxKey, subject)
}

func CallerFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(callerCtxKey).(string)
	return subject, ok
}
