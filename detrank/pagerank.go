package detrank

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// IterateRank computes the PageRank of every page as the fixed point of
// the iterative recurrence, entirely in fixed-point arithmetic.
// α (alpha) is the damping factor and ε (epsilon) the per-page
// convergence threshold, both scaled by graph.Precision (see FtoBD).
//
// This method will run as many iterations as needed, until the graph converges.
func (graph *Graph) IterateRank(α, ε sdk.Uint) (map[string]sdk.Uint, error) {
	if err := graph.validate(α); err != nil {
		return nil, err
	}

	one := graph.Precision
	N := sdk.NewUint(uint64(len(graph.Pages)))
	jump := one.Sub(α).Quo(N)

	ranks := make(map[string]sdk.Uint, len(graph.Pages))
	for id := range graph.Pages {
		ranks[id] = one.Quo(N)
	}

	Δ := one
	for Δ.GT(ε) {
		next := make(map[string]sdk.Uint, len(graph.Pages))
		for p := range graph.Pages {
			sum := sdk.ZeroUint()
			for q := range graph.Pages {
				if graph.linksTo(q, p) {
					sum = sum.Add(ranks[q].Quo(graph.effectiveDegree(q)))
				}
			}
			next[p] = jump.Add(α.Mul(sum).Quo(one))
		}

		Δ = sdk.ZeroUint()
		for id, old := range ranks {
			var diff sdk.Uint
			if next[id].LT(old) {
				diff = old.Sub(next[id])
			} else {
				diff = next[id].Sub(old)
			}
			if diff.GT(Δ) {
				Δ = diff
			}
		}
		ranks = next
	}

	return ranks, nil
}
