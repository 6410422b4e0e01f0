package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ferdiebergado/kubodir/internal/platform/router"
)

func mountOpsRoutes(r router.Router, healthz http.Handler) {
	r.Get("/healthz", healthz.ServeHTTP)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
}
