// Package diagnosis implements the scoring engine: pairwise shortest-path
// aggregation over the symptom-disease graph, inverse-score normalization
// into a probability distribution, and catalog enrichment of the ranked
// candidates.
package diagnosis

import (
	"fmt"

	"github.com/medigraph/symptomgraph/pkg/catalog"
	"github.com/medigraph/symptomgraph/pkg/graph"
	"github.com/medigraph/symptomgraph/pkg/logging"
)

// Result is one ranked disease hypothesis, enriched from the catalog.
// Results are produced fresh per request and never persisted.
type Result struct {
	Disease     string   `json:"disease"`
	Probability float64  `json:"probability"`
	Description string   `json:"description"`
	Precautions []string `json:"precautions"`
}

// Engine runs diagnosis queries against a graph and catalog built once at
// startup. Both are treated as immutable, so an Engine is safe for
// concurrent use without locking.
type Engine struct {
	graph   *graph.Graph
	catalog *catalog.Catalog
	logger  logging.Logger
}

// NewEngine creates a diagnosis engine. A nil logger disables logging.
func NewEngine(g *graph.Graph, c *catalog.Catalog, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Engine{
		graph:   g,
		catalog: c,
		logger:  logger.With(logging.Component("diagnosis")),
	}
}

// Graph returns the underlying symptom-disease graph.
func (e *Engine) Graph() *graph.Graph {
	return e.graph
}

// Catalog returns the underlying disease catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Diagnose ranks candidate diseases for the selected symptoms. Every name
// must resolve to a symptom vertex, otherwise ErrUnknownSymptom is returned
// and the request contributes nothing. An empty result is normal signal:
// either fewer than two symptoms were selected or no pair shares a disease.
func (e *Engine) Diagnose(symptoms []string) ([]Result, error) {
	selected, err := e.validate(symptoms)
	if err != nil {
		return nil, err
	}

	timer := logging.StartTimer(e.logger, "diagnosis complete",
		logging.Int("symptoms", len(selected)))

	raw, err := aggregate(e.graph, selected)
	if err != nil {
		timer.EndError(err)
		return nil, err
	}

	results := make([]Result, 0, len(raw))
	for _, candidate := range normalize(raw) {
		record, err := e.catalog.Describe(candidate.Disease)
		if err != nil {
			// A scored disease missing from the catalog means the
			// source tables disagree; fail the request rather than
			// misrepresent the ranking.
			timer.EndError(err)
			return nil, err
		}
		results = append(results, Result{
			Disease:     record.Name,
			Probability: candidate.Probability,
			Description: record.Description,
			Precautions: record.Precautions,
		})
	}

	timer.End()
	return results, nil
}

// validate normalizes, deduplicates, and checks the selected symptom names,
// preserving selection order.
func (e *Engine) validate(symptoms []string) ([]string, error) {
	seen := make(map[string]struct{}, len(symptoms))
	selected := make([]string, 0, len(symptoms))
	for _, name := range symptoms {
		normalized := graph.Normalize(name)
		if kind, ok := e.graph.Kind(normalized); !ok || kind != graph.KindSymptom {
			return nil, fmt.Errorf("symptom %q: %w", name, ErrUnknownSymptom)
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		selected = append(selected, normalized)
	}
	return selected, nil
}
