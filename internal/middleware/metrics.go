package middleware

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

var (
	callsHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grpc_server_handled_total",
		Help: "Total number of unary calls completed, by method and status code.",
	}, []string{"method", "code"})

	callDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "grpc_server_handling_seconds",
		Help:    "Latency of unary calls, by method.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
)

// Metrics records the count and latency of unary calls.
func Metrics(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	callDuration.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
	callsHandled.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()

	return resp, err
}
