// Package graph implements the bipartite symptom-disease graph: a vertex
// store with weighted undirected edges and a hop-count shortest-path
// search. The graph is built once at startup and is read-only afterwards,
// so concurrent lookups need no locking.
package graph

import (
	"sort"
	"strings"
)

// VertexKind tags a vertex as either a symptom or a disease. A name never
// appears under both kinds.
type VertexKind uint8

const (
	KindSymptom VertexKind = iota
	KindDisease
)

// String returns the string representation of a vertex kind.
func (k VertexKind) String() string {
	switch k {
	case KindSymptom:
		return "symptom"
	case KindDisease:
		return "disease"
	default:
		return "unknown"
	}
}

// Neighbor is an adjacent vertex together with the connecting edge weight.
type Neighbor struct {
	Name   string
	Weight float64
}

// Graph holds symptom and disease vertices and weighted undirected edges
// between them. Edge weight is the inverse of the symptom's severity score,
// so more severe symptoms produce lighter, more informative edges.
type Graph struct {
	kinds map[string]VertexKind
	adj   map[string]map[string]float64
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		kinds: make(map[string]VertexKind),
		adj:   make(map[string]map[string]float64),
	}
}

// Normalize canonicalizes a vertex name: lower-cased, trimmed, with inner
// whitespace collapsed to underscores to match the dataset convention.
func Normalize(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}

// AddVertex inserts a vertex if absent. Re-adding under the same kind is a
// no-op; re-adding under the other kind returns ErrKindConflict, since the
// source data cannot be trusted at that point.
func (g *Graph) AddVertex(name string, kind VertexKind) error {
	name = Normalize(name)
	if name == "" {
		return NewError("AddVertex").Vertex(name).Cause(ErrVertexNotFound).Err()
	}
	if existing, ok := g.kinds[name]; ok {
		if existing != kind {
			return NewError("AddVertex").Vertex(name).Cause(ErrKindConflict).Err()
		}
		return nil
	}
	g.kinds[name] = kind
	g.adj[name] = make(map[string]float64)
	return nil
}

// AddEdge connects a symptom vertex and a disease vertex with weight
// 1/severity. Both vertices must already exist. Re-adding the same pair
// overwrites the weight rather than duplicating the edge, which makes
// loading idempotent.
func (g *Graph) AddEdge(symptom, disease string, severity int) error {
	symptom = Normalize(symptom)
	disease = Normalize(disease)

	if severity <= 0 {
		return NewError("AddEdge").Edge(symptom, disease).Cause(ErrInvalidSeverity).Err()
	}
	symptomKind, ok := g.kinds[symptom]
	if !ok {
		return VertexNotFoundError("AddEdge", symptom)
	}
	diseaseKind, ok := g.kinds[disease]
	if !ok {
		return VertexNotFoundError("AddEdge", disease)
	}
	if symptomKind != KindSymptom || diseaseKind != KindDisease {
		return NewError("AddEdge").Edge(symptom, disease).Cause(ErrNotBipartite).Err()
	}

	weight := 1.0 / float64(severity)
	g.adj[symptom][disease] = weight
	g.adj[disease][symptom] = weight
	return nil
}

// HasVertex reports whether the named vertex exists.
func (g *Graph) HasVertex(name string) bool {
	_, ok := g.kinds[Normalize(name)]
	return ok
}

// Kind returns the kind of the named vertex.
func (g *Graph) Kind(name string) (VertexKind, bool) {
	kind, ok := g.kinds[Normalize(name)]
	return kind, ok
}

// Neighbors returns the adjacent vertices of the named vertex sorted by
// name. An unknown or isolated vertex yields an empty slice, not an error.
func (g *Graph) Neighbors(name string) []Neighbor {
	edges, ok := g.adj[Normalize(name)]
	if !ok {
		return nil
	}
	neighbors := make([]Neighbor, 0, len(edges))
	for neighbor, weight := range edges {
		neighbors = append(neighbors, Neighbor{Name: neighbor, Weight: weight})
	}
	sort.Slice(neighbors, func(i, j int) bool {
		return neighbors[i].Name < neighbors[j].Name
	})
	return neighbors
}

// EdgeWeight returns the weight of the edge between two vertices, or 0 if
// no such edge exists.
func (g *Graph) EdgeWeight(a, b string) float64 {
	if edges, ok := g.adj[Normalize(a)]; ok {
		return edges[Normalize(b)]
	}
	return 0
}

// VertexNames returns the names of all vertices of the given kind, sorted.
func (g *Graph) VertexNames(kind VertexKind) []string {
	names := make([]string, 0)
	for name, k := range g.kinds {
		if k == kind {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Stats summarizes the size of the graph.
type Stats struct {
	Symptoms int
	Diseases int
	Edges    int
}

// Statistics returns vertex and edge counts.
func (g *Graph) Statistics() Stats {
	var stats Stats
	for _, kind := range g.kinds {
		if kind == KindSymptom {
			stats.Symptoms++
		} else {
			stats.Diseases++
		}
	}
	total := 0
	for _, edges := range g.adj {
		total += len(edges)
	}
	stats.Edges = total / 2 // each undirected edge is stored twice
	return stats
}
