package rank

import (
	"fmt"
	"math/rand"
	"time"
)

// Source provides the randomness consumed by the sampling estimator.
// Injecting a seeded Source makes a whole walk reproducible.
type Source interface {
	// Uniform picks one of the candidates with equal probability.
	Uniform(candidates []string) string

	// Weighted picks candidates[i] with probability weights[i].
	// The weights are assumed to sum to 1.
	Weighted(candidates []string, weights []float64) string
}

type randSource struct {
	rng *rand.Rand
}

// NewSource returns a Source backed by math/rand with the given seed.
func NewSource(seed int64) Source {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Uniform(candidates []string) string {
	return candidates[s.rng.Intn(len(candidates))]
}

func (s *randSource) Weighted(candidates []string, weights []float64) string {
	r := s.rng.Float64()
	var cum float64
	for i, w := range weights {
		cum += w
		if r < cum {
			return candidates[i]
		}
	}
	// the weights summed to slightly under 1
	return candidates[len(candidates)-1]
}

// SampleRank estimates the PageRank of every page by simulating a
// random walk of n steps over the graph, starting from a uniformly
// chosen page and moving according to Transition. The rank of a page
// is the fraction of the n visits it received.
//
// As n grows the result converges to IterateRank's output.
func (graph *Graph) SampleRank(α float64, n int) (Ranks, error) {
	return graph.SampleRankFrom(NewSource(time.Now().UnixNano()), α, n)
}

// SampleRankFrom is SampleRank with an explicit randomness source.
func (graph *Graph) SampleRankFrom(src Source, α float64, n int) (Ranks, error) {
	if err := graph.validate(α); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrSampleCount, n)
	}

	pages := graph.Pages()
	weights := make([]float64, len(pages))
	visits := make(map[string]int, len(pages))

	current := src.Uniform(pages)
	visits[current]++

	for i := 1; i < n; i++ {
		dist, err := graph.Transition(current, α)
		if err != nil {
			return nil, err
		}
		for j, id := range pages {
			weights[j] = dist[id]
		}
		current = src.Weighted(pages, weights)
		visits[current]++
	}

	ranks := make(Ranks, len(pages))
	for _, id := range pages {
		ranks[id] = float64(visits[id]) / float64(n)
	}
	return ranks, nil
}
