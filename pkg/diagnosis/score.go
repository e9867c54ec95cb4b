package diagnosis

import (
	"errors"

	"github.com/medigraph/symptomgraph/pkg/graph"
)

// pairs returns all unordered pairs of distinct elements.
func pairs(items []string) [][2]string {
	result := make([][2]string, 0, len(items)*(len(items)-1)/2)
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			result = append(result, [2]string{items[i], items[j]})
		}
	}
	return result
}

// aggregate computes raw disease scores for the selected symptoms. For every
// unordered pair it finds the minimum-hop path and adds the path's total
// edge weight to each disease vertex lying on that path. Fewer than two
// symptoms cannot form a path through a shared disease, so the result is
// empty. Disconnected pairs contribute nothing.
func aggregate(g *graph.Graph, symptoms []string) (map[string]float64, error) {
	scores := make(map[string]float64)

	for _, pair := range pairs(symptoms) {
		path, err := g.ShortestPath(pair[0], pair[1])
		if err != nil {
			if errors.Is(err, graph.ErrNoPath) {
				continue // no shared-disease correlation for this pair
			}
			return nil, err
		}

		pathScore := g.PathScore(path)
		for _, vertex := range path {
			if kind, ok := g.Kind(vertex); ok && kind == graph.KindDisease {
				scores[vertex] += pathScore
			}
		}
	}

	return scores, nil
}
