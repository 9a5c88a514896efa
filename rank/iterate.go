package rank

import "math"

// ε is the per-page convergence threshold of the iterative estimator.
// It is an absolute tolerance: ranks are on the order of 1/N, so a
// corpus with a very large N would want this to scale down.
const ε = 0.001

// IterateRank computes the PageRank of every page as the fixed point
// of the recurrence
//
//	rank[p] = (1-α)/N + α * Σ_{q links to p} rank[q]/degree(q)
//
// where a dangling q counts as linking to every page with degree N.
// Each pass recomputes all pages from the previous pass's snapshot;
// iteration stops once no page moved by more than ε in a pass.
func (graph *Graph) IterateRank(α float64) (Ranks, error) {
	if err := graph.validate(α); err != nil {
		return nil, err
	}

	N := float64(len(graph.pages))
	jump := (1 - α) / N

	ranks := make(Ranks, len(graph.pages))
	for id := range graph.pages {
		ranks[id] = 1 / N
	}

	for {
		next := make(Ranks, len(graph.pages))
		for p := range graph.pages {
			var sum float64
			for q := range graph.pages {
				if graph.linksTo(q, p) {
					sum += ranks[q] / float64(graph.effectiveDegree(q))
				}
			}
			next[p] = jump + α*sum
		}

		Δ := float64(0)
		for id, old := range ranks {
			if d := math.Abs(next[id] - old); d > Δ {
				Δ = d
			}
		}
		ranks = next

		if Δ <= ε {
			return ranks, nil
		}
	}
}
