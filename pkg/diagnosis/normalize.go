package diagnosis

import (
	"sort"
)

// Candidate is one disease with its normalized probability percentage.
type Candidate struct {
	Disease     string
	Probability float64
}

// normalize converts raw disease scores into a percentage distribution
// using inverse-score weighting: a lower accumulated path weight means the
// paths ran through more severe symptoms, so the disease is more likely.
// The output is sorted descending by probability, ties by name ascending
// so that equal scores order reproducibly.
func normalize(raw map[string]float64) []Candidate {
	inverses := make(map[string]float64, len(raw))
	total := 0.0
	for disease, score := range raw {
		if score <= 0 {
			// A raw score is a sum of strictly positive weights; zero
			// here means an upstream defect, not a valid state.
			continue
		}
		inv := 1.0 / score
		inverses[disease] = inv
		total += inv
	}

	if len(inverses) == 0 {
		return []Candidate{}
	}

	candidates := make([]Candidate, 0, len(inverses))
	for disease, inv := range inverses {
		candidates = append(candidates, Candidate{
			Disease:     disease,
			Probability: inv / total * 100,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Probability != candidates[j].Probability {
			return candidates[i].Probability > candidates[j].Probability
		}
		return candidates[i].Disease < candidates[j].Disease
	})
	return candidates
}
