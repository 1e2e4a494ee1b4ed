// Package metrics holds the Prometheus instrumentation for the HTTP surface.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Set bundles the collectors for one server instance so tests can use
// isolated registries instead of the process-global default.
type Set struct {
	Registry *prometheus.Registry

	RequestsTotal  *prometheus.CounterVec
	ParseDuration  prometheus.Histogram
	CyclesDetected prometheus.Counter
}

// New creates a Set registered against a fresh registry.
func New() *Set {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Set{
		Registry: reg,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pipecheck_requests_total",
			Help: "HTTP requests handled, by method, path and status code.",
		}, []string{"method", "path", "code"}),
		ParseDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pipecheck_parse_duration_seconds",
			Help:    "Wall time spent analyzing one submitted pipeline.",
			Buckets: prometheus.DefBuckets,
		}),
		CyclesDetected: factory.NewCounter(prometheus.CounterOpts{
			Name: "pipecheck_cycles_detected_total",
			Help: "Submitted pipelines found to contain at least one cycle.",
		}),
	}
}
