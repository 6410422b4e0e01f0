// Package health probes the service dependencies and publishes the result.
package health

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/ferdiebergado/gopherkit/http/response"
	"golang.org/x/sync/errgroup"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type Status string

const (
	StatusHealthy   Status = "HEALTHY"
	StatusUnhealthy Status = "UNHEALTHY"
)

// Probe reports a dependency failure as an error.
type Probe func(ctx context.Context) error

type Report struct {
	Status     Status            `json:"status"`
	Components map[string]Status `json:"components"`
	Version    string            `json:"version"`
	CheckedAt  time.Time         `json:"checked_at"`
}

func (r Report) Healthy() bool {
	return r.Status == StatusHealthy
}

type Monitor struct {
	version string
	timeout time.Duration
	now     func() time.Time

	mu     sync.RWMutex
	probes map[string]Probe
}

func NewMonitor(version string, timeout time.Duration) *Monitor {
	return &Monitor{
		version: version,
		timeout: timeout,
		now:     time.Now,
		probes:  make(map[string]Probe),
	}
}

// Register adds a named probe. A later probe with the same name replaces the earlier one.
func (m *Monitor) Register(name string, p Probe) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.probes[name] = p
}

// Check runs every probe concurrently. It never fails; a failing probe marks the report unhealthy.
func (m *Monitor) Check(ctx context.Context) Report {
	m.mu.RLock()
	names := make([]string, 0, len(m.probes))
	for name := range m.probes {
		names = append(names, name)
	}
	probes := make(map[string]Probe, len(m.probes))
	for k, v := range m.probes {
		probes[k] = v
	}
	m.mu.RUnlock()
	sort.Strings(names)

	results := make([]Status, len(names))

	var g errgroup.Group
	for i, name := range names {
		g.Go(func() error {
			results[i] = m.probe(ctx, name, probes[name])
			return nil
		})
	}
	_ = g.Wait()

	report := Report{
		Status:     StatusHealthy,
		Components: make(map[string]Status, len(names)),
		Version:    m.version,
		CheckedAt:  m.now().UTC(),
	}

	for i, name := range names {
		report.Components[name] = results[i]
		if results[i] != StatusHealthy {
			report.Status = StatusUnhealthy
		}
	}

	return report
}

func (m *Monitor) probe(ctx context.Context, name string, p Probe) (status Status) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("health probe panicked", "component", name, "reason", r)
			status = StatusUnhealthy
		}
	}()

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	if err := p(ctx); err != nil {
		slog.Warn("health probe failed", "component", name, "reason", err)
		return StatusUnhealthy
	}
	return StatusHealthy
}

// Run checks on every tick and mirrors the result into srv for the given services
// and the server as a whole. It returns when ctx is done.
func (m *Monitor) Run(ctx context.Context, interval time.Duration, srv *grpchealth.Server, services ...string) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		m.sync(ctx, srv, services)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (m *Monitor) sync(ctx context.Context, srv *grpchealth.Server, services []string) {
	status := healthpb.HealthCheckResponse_SERVING
	if !m.Check(ctx).Healthy() {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	srv.SetServingStatus("", status)
	for _, svc := range services {
		srv.SetServingStatus(svc, status)
	}
}

// ServeHTTP writes the current report as JSON, answering 503 when unhealthy.
func (m *Monitor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	report := m.Check(r.Context())

	code := http.StatusOK
	if !report.Healthy() {
		code = http.StatusServiceUnavailable
	}

	response.JSON(w, code, report)
}
