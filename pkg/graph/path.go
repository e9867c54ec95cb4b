package graph

import (
	"container/list"
)

// ShortestPath finds the minimum-hop path between two vertices using
// breadth-first search, recording predecessor links and reconstructing the
// path backwards from the target.
//
// Edge weights are deliberately NOT used as traversal cost: hop count is
// the correlation metric, and weights only enter afterwards when the path
// is scored. Swapping this for Dijkstra would silently change which
// diseases are reachable and how they rank. Ties between equal-hop paths
// are broken by the lowest accumulated weight, which also makes the result
// deterministic.
//
// Returns ErrNoPath when either endpoint is missing or the endpoints are in
// disconnected components; callers treat that as "no correlation", not a
// failure.
func (g *Graph) ShortestPath(source, target string) ([]string, error) {
	source = Normalize(source)
	target = Normalize(target)

	if !g.HasVertex(source) || !g.HasVertex(target) {
		return nil, NewError("ShortestPath").Path(source, target).Cause(ErrNoPath).Err()
	}
	if source == target {
		return []string{source}, nil
	}

	dist := map[string]int{source: 0}
	accum := map[string]float64{source: 0}
	pred := map[string]string{source: source}

	queue := list.New()
	queue.PushBack(source)

	for queue.Len() > 0 {
		current := queue.Remove(queue.Front()).(string)
		currentDist := dist[current]
		currentAccum := accum[current]

		for _, neighbor := range g.Neighbors(current) {
			candidate := currentAccum + neighbor.Weight

			if seen, ok := dist[neighbor.Name]; ok {
				// Same-level relaxation: keep the lighter of two
				// equal-hop paths. BFS processes levels in order, so
				// this settles before the neighbor is dequeued.
				if seen == currentDist+1 && candidate < accum[neighbor.Name] {
					accum[neighbor.Name] = candidate
					pred[neighbor.Name] = current
				}
				continue
			}

			dist[neighbor.Name] = currentDist + 1
			accum[neighbor.Name] = candidate
			pred[neighbor.Name] = current
			queue.PushBack(neighbor.Name)
		}
	}

	if _, ok := pred[target]; !ok {
		return nil, NewError("ShortestPath").Path(source, target).Cause(ErrNoPath).Err()
	}

	// Walk predecessors back from the target, then reverse.
	path := make([]string, 0, dist[target]+1)
	for node := target; node != pred[node]; node = pred[node] {
		path = append(path, node)
	}
	path = append(path, source)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// PathScore returns the sum of edge weights along consecutive vertex pairs
// of a path. A single-vertex path scores zero.
func (g *Graph) PathScore(path []string) float64 {
	score := 0.0
	for i := 0; i+1 < len(path); i++ {
		score += g.EdgeWeight(path[i], path[i+1])
	}
	return score
}
