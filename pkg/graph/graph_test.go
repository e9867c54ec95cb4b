package graph

import (
	"errors"
	"testing"
)

// buildGraph constructs a graph from vertex and edge specs, failing the
// test on any error.
func buildGraph(t *testing.T, symptoms, diseases []string, edges map[[2]string]int) *Graph {
	t.Helper()
	g := New()
	for _, s := range symptoms {
		if err := g.AddVertex(s, KindSymptom); err != nil {
			t.Fatalf("AddVertex(%q) failed: %v", s, err)
		}
	}
	for _, d := range diseases {
		if err := g.AddVertex(d, KindDisease); err != nil {
			t.Fatalf("AddVertex(%q) failed: %v", d, err)
		}
	}
	for pair, severity := range edges {
		if err := g.AddEdge(pair[0], pair[1], severity); err != nil {
			t.Fatalf("AddEdge(%q, %q, %d) failed: %v", pair[0], pair[1], severity, err)
		}
	}
	return g
}

func TestAddVertex_SameKindIsIdempotent(t *testing.T) {
	g := New()
	if err := g.AddVertex("headache", KindSymptom); err != nil {
		t.Fatalf("first AddVertex failed: %v", err)
	}
	if err := g.AddVertex("headache", KindSymptom); err != nil {
		t.Fatalf("re-adding same kind should be a no-op, got: %v", err)
	}
	if got := len(g.VertexNames(KindSymptom)); got != 1 {
		t.Errorf("expected 1 symptom vertex, got %d", got)
	}
}

func TestAddVertex_KindConflict(t *testing.T) {
	g := New()
	if err := g.AddVertex("flu", KindDisease); err != nil {
		t.Fatalf("AddVertex failed: %v", err)
	}
	err := g.AddVertex("flu", KindSymptom)
	if !errors.Is(err, ErrKindConflict) {
		t.Errorf("expected ErrKindConflict, got %v", err)
	}
}

func TestAddVertex_NormalizesNames(t *testing.T) {
	g := New()
	if err := g.AddVertex("  Chest Pain ", KindSymptom); err != nil {
		t.Fatalf("AddVertex failed: %v", err)
	}
	if !g.HasVertex("chest_pain") {
		t.Error("expected normalized name chest_pain to exist")
	}
	if !g.HasVertex("Chest Pain") {
		t.Error("expected lookup to normalize the query name too")
	}
}

func TestAddEdge_RequiresExistingVertices(t *testing.T) {
	g := New()
	if err := g.AddVertex("fever", KindSymptom); err != nil {
		t.Fatalf("AddVertex failed: %v", err)
	}
	err := g.AddEdge("fever", "flu", 5)
	if !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("expected ErrVertexNotFound, got %v", err)
	}
}

func TestAddEdge_InvalidSeverity(t *testing.T) {
	g := buildGraph(t, []string{"fever"}, []string{"flu"}, nil)
	for _, severity := range []int{0, -1} {
		err := g.AddEdge("fever", "flu", severity)
		if !errors.Is(err, ErrInvalidSeverity) {
			t.Errorf("severity %d: expected ErrInvalidSeverity, got %v", severity, err)
		}
	}
}

func TestAddEdge_EnforcesBipartite(t *testing.T) {
	g := buildGraph(t, []string{"fever", "headache"}, []string{"flu"}, nil)
	if err := g.AddEdge("fever", "headache", 3); !errors.Is(err, ErrNotBipartite) {
		t.Errorf("symptom-symptom edge: expected ErrNotBipartite, got %v", err)
	}
	// Reversed argument order is also rejected
	if err := g.AddEdge("flu", "fever", 3); !errors.Is(err, ErrNotBipartite) {
		t.Errorf("disease-first edge: expected ErrNotBipartite, got %v", err)
	}
}

func TestAddEdge_ReAddOverwrites(t *testing.T) {
	g := buildGraph(t, []string{"fever"}, []string{"flu"}, nil)
	if err := g.AddEdge("fever", "flu", 2); err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}
	if err := g.AddEdge("fever", "flu", 4); err != nil {
		t.Fatalf("re-AddEdge failed: %v", err)
	}

	neighbors := g.Neighbors("fever")
	if len(neighbors) != 1 {
		t.Fatalf("expected 1 neighbor after re-add, got %d", len(neighbors))
	}
	if neighbors[0].Weight != 0.25 {
		t.Errorf("expected overwritten weight 0.25, got %v", neighbors[0].Weight)
	}
	if g.Statistics().Edges != 1 {
		t.Errorf("expected 1 edge, got %d", g.Statistics().Edges)
	}
}

func TestEdgeWeight_IsInverseSeverity(t *testing.T) {
	g := buildGraph(t, []string{"fever"}, []string{"flu"},
		map[[2]string]int{{"fever", "flu"}: 5})

	if got := g.EdgeWeight("fever", "flu"); got != 0.2 {
		t.Errorf("expected weight 0.2, got %v", got)
	}
	if got := g.EdgeWeight("flu", "fever"); got != 0.2 {
		t.Errorf("expected symmetric weight 0.2, got %v", got)
	}
	if got := g.EdgeWeight("fever", "cold"); got != 0 {
		t.Errorf("expected 0 for missing edge, got %v", got)
	}
}

func TestNeighbors_SortedAndEmptyCases(t *testing.T) {
	g := buildGraph(t,
		[]string{"fever", "isolated"},
		[]string{"flu", "cold"},
		map[[2]string]int{
			{"fever", "flu"}:  5,
			{"fever", "cold"}: 5,
		})

	neighbors := g.Neighbors("fever")
	if len(neighbors) != 2 {
		t.Fatalf("expected 2 neighbors, got %d", len(neighbors))
	}
	if neighbors[0].Name != "cold" || neighbors[1].Name != "flu" {
		t.Errorf("expected sorted neighbors [cold flu], got %v", neighbors)
	}

	if got := g.Neighbors("isolated"); len(got) != 0 {
		t.Errorf("isolated vertex should have no neighbors, got %v", got)
	}
	if got := g.Neighbors("unknown"); got != nil {
		t.Errorf("unknown vertex should yield nil, got %v", got)
	}
}

func TestStatistics(t *testing.T) {
	g := buildGraph(t,
		[]string{"fever", "headache"},
		[]string{"flu"},
		map[[2]string]int{
			{"fever", "flu"}:    5,
			{"headache", "flu"}: 3,
		})

	stats := g.Statistics()
	if stats.Symptoms != 2 || stats.Diseases != 1 || stats.Edges != 2 {
		t.Errorf("unexpected statistics: %+v", stats)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Fever", "fever"},
		{"  chest  pain ", "chest_pain"},
		{"FUNGAL INFECTION", "fungal_infection"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
