// Package metrics exposes Prometheus instrumentation for the service:
// HTTP traffic, diagnosis executions, and graph size.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all Prometheus collectors for the service, backed by its
// own prometheus.Registry so tests can gather in isolation.
type Registry struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Diagnosis metrics
	DiagnosesTotal      *prometheus.CounterVec
	DiagnosisDuration   prometheus.Histogram
	DiagnosisCandidates prometheus.Histogram

	// Graph size
	GraphSymptoms prometheus.Gauge
	GraphDiseases prometheus.Gauge
	GraphEdges    prometheus.Gauge
}

// NewRegistry creates a registry with all collectors registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initHTTPMetrics()
	r.initDiagnosisMetrics()
	return r
}

// Registry returns the underlying prometheus registry.
func (r *Registry) Registry() *prometheus.Registry {
	return r.registry
}
