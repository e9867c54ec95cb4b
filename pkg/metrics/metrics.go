package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RecordHTTPRequest records an HTTP request with its duration.
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordDiagnosis records a diagnosis execution.
func (r *Registry) RecordDiagnosis(status string, duration time.Duration, candidates int) {
	r.DiagnosesTotal.WithLabelValues(status).Inc()
	if status == "ok" {
		r.DiagnosisDuration.Observe(duration.Seconds())
		r.DiagnosisCandidates.Observe(float64(candidates))
	}
}

// SetGraphSize updates the graph size gauges.
func (r *Registry) SetGraphSize(symptoms, diseases, edges int) {
	r.GraphSymptoms.Set(float64(symptoms))
	r.GraphDiseases.Set(float64(diseases))
	r.GraphEdges.Set(float64(edges))
}

// Handler returns the HTTP handler serving the metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
