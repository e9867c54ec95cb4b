package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initDiagnosisMetrics() {
	r.DiagnosesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "symptomgraph_diagnoses_total",
			Help: "Total number of diagnosis requests executed",
		},
		[]string{"status"},
	)

	r.DiagnosisDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "symptomgraph_diagnosis_duration_seconds",
			Help:    "Diagnosis execution duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	r.DiagnosisCandidates = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "symptomgraph_diagnosis_candidates",
			Help:    "Number of candidate diseases returned per diagnosis",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 40},
		},
	)

	r.GraphSymptoms = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "symptomgraph_graph_symptom_vertices",
			Help: "Number of symptom vertices in the graph",
		},
	)

	r.GraphDiseases = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "symptomgraph_graph_disease_vertices",
			Help: "Number of disease vertices in the graph",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "symptomgraph_graph_edges",
			Help: "Number of edges in the graph",
		},
	)
}
