// Package api exposes the diagnosis engine over HTTP: REST endpoints,
// a GraphQL endpoint, health checks, and Prometheus metrics.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/medigraph/symptomgraph/pkg/auth"
	"github.com/medigraph/symptomgraph/pkg/diagnosis"
	"github.com/medigraph/symptomgraph/pkg/graph"
	"github.com/medigraph/symptomgraph/pkg/graphql"
	"github.com/medigraph/symptomgraph/pkg/health"
	"github.com/medigraph/symptomgraph/pkg/logging"
	"github.com/medigraph/symptomgraph/pkg/metrics"
)

const maxBodyBytes = 1 << 20 // 1 MiB is generous for a symptom list

// Server wires the engine into HTTP handlers. The engine is read-only, so
// one Server safely serves concurrent requests.
type Server struct {
	engine         *diagnosis.Engine
	logger         logging.Logger
	metrics        *metrics.Registry
	checker        *health.HealthChecker
	graphqlHandler *graphql.GraphQLHandler
	validate       *validator.Validate
	tokens         *auth.TokenManager // nil disables auth
	startTime      time.Time
	version        string
}

// NewServer creates an API server over the given engine. tokens may be nil
// to leave the diagnose endpoint unauthenticated.
func NewServer(engine *diagnosis.Engine, registry *metrics.Registry,
	tokens *auth.TokenManager, logger logging.Logger) (*Server, error) {

	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if registry == nil {
		registry = metrics.NewRegistry()
	}

	schema, err := graphql.GenerateSchema(engine)
	if err != nil {
		return nil, err
	}

	s := &Server{
		engine:         engine,
		logger:         logger.With(logging.Component("api")),
		metrics:        registry,
		checker:        health.NewHealthChecker(),
		graphqlHandler: graphql.NewGraphQLHandler(schema),
		validate:       validator.New(),
		tokens:         tokens,
		startTime:      time.Now(),
		version:        "1.0.0",
	}
	s.registerHealthChecks()

	stats := engine.Graph().Statistics()
	registry.SetGraphSize(stats.Symptoms, stats.Diseases, stats.Edges)

	return s, nil
}

// Handler returns the fully wired HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Health and metrics
	mux.HandleFunc("/health", s.checker.HTTPHandler())
	mux.HandleFunc("/health/live", s.checker.LivenessHandler())
	mux.HandleFunc("/health/ready", s.checker.ReadinessHandler())
	mux.Handle("/metrics", s.metrics.Handler())

	// Service info
	mux.HandleFunc("/info", s.handleInfo)

	// Catalog endpoints
	mux.HandleFunc("/symptoms", s.handleSymptoms)
	mux.HandleFunc("/diseases", s.handleDiseases)
	mux.HandleFunc("/diseases/", s.handleDisease) // /diseases/{name}

	// Diagnosis
	mux.HandleFunc("/diagnose", s.requireAuth(s.handleDiagnose))

	// GraphQL endpoint
	mux.Handle("/graphql", s.graphqlHandler)

	var handler http.Handler = mux
	handler = s.bodySizeLimitMiddleware(handler, maxBodyBytes)
	handler = s.corsMiddleware(handler)
	handler = s.metricsMiddleware(handler)
	handler = s.loggingMiddleware(handler)
	handler = s.requestIDMiddleware(handler)
	handler = s.panicRecoveryMiddleware(handler)
	return handler
}

func (s *Server) registerHealthChecks() {
	graphCheck := health.GraphCheck(func() (int, int, int) {
		stats := s.engine.Graph().Statistics()
		return stats.Symptoms, stats.Diseases, stats.Edges
	})
	catalogCheck := health.CatalogCheck(func() []string {
		missing := make([]string, 0)
		for _, name := range s.engine.Graph().VertexNames(graph.KindDisease) {
			if !s.engine.Catalog().Has(name) {
				missing = append(missing, name)
			}
		}
		return missing
	})

	s.checker.RegisterCheck("graph", graphCheck)
	s.checker.RegisterCheck("catalog", catalogCheck)
	s.checker.RegisterReadinessCheck("graph", graphCheck)
	s.checker.RegisterLivenessCheck("server", func() health.Check {
		return health.SimpleCheck("server")
	})
}

// Helper methods

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", logging.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}
