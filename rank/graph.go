// Package rank estimates the relative importance of pages in a small
// hyperlink corpus with two independent PageRank estimators:
// a random-surfer sampler and a fixed-point iterative solver
// both share the same transition-probability model
// references:
// https://github.com/alixaxel/pagerank
// https://github.com/dcadenas/pagerank
// notes:
// Optimization - using int-indexed maps?
package rank

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultDamping is the usual probability that the surfer follows a
// real link instead of jumping to a random page.
const DefaultDamping = 0.85

// DefaultSamples is the usual walk length for the sampling estimator.
const DefaultSamples = 10000

// ErrEmptyGraph is returned when an estimator is run on a graph with no pages.
var ErrEmptyGraph = errors.New("empty graph")

// ErrDamping is returned when the damping factor is outside [0,1].
var ErrDamping = errors.New("damping factor outside [0,1]")

// ErrSampleCount is returned when the requested walk length is < 1.
var ErrSampleCount = errors.New("sample count must be positive")

// ErrUnknownPage is returned when a page is not part of the corpus.
var ErrUnknownPage = errors.New("page not in graph")

// Graph is the link graph of a corpus: every page maps to the set of
// other in-corpus pages it links to. A page never links to itself and
// never to a page outside the corpus (Finalize prunes those).
type Graph struct {
	pages map[string]map[string]bool
}

// Distribution is a one-step probability distribution over pages.
// Every page of the corpus is a key and the values sum to 1.
type Distribution map[string]float64

// Ranks maps every page of the corpus to its estimated PageRank in
// [0,1]. The values sum to 1.
type Ranks map[string]float64

// NewGraph initializes and returns a new empty graph.
func NewGraph() *Graph {
	return &Graph{
		pages: make(map[string]map[string]bool),
	}
}

// AddPage adds a page with no outbound links. Adding an existing page
// is a no-op.
func (graph *Graph) AddPage(id string) {
	if _, ok := graph.pages[id]; ok == false {
		graph.pages[id] = map[string]bool{}
	}
}

// Link records an outbound link from source to target. Self-links are
// dropped. The source page is created if it does not exist yet; a
// target outside the corpus is kept until Finalize prunes it.
func (graph *Graph) Link(source, target string) {
	if source == target {
		return
	}
	graph.AddPage(source)
	graph.pages[source][target] = true
}

// Finalize is the method that runs after all links are added and
// before ranking: it removes links whose target is not itself a page
// of the corpus. The graph must not be modified afterwards.
func (graph *Graph) Finalize() {
	for _, targets := range graph.pages {
		for target := range targets {
			if _, ok := graph.pages[target]; ok == false {
				delete(targets, target)
			}
		}
	}
}

// Len returns the number of pages in the corpus.
func (graph *Graph) Len() int {
	return len(graph.pages)
}

// Pages returns all page ids, sorted.
func (graph *Graph) Pages() []string {
	ids := make([]string, 0, len(graph.pages))
	for id := range graph.pages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Links returns the outbound links of a page, sorted. A dangling page
// yields an empty slice; see effectiveDegree for the ranking
// convention applied to it.
func (graph *Graph) Links(page string) []string {
	targets := make([]string, 0, len(graph.pages[page]))
	for id := range graph.pages[page] {
		targets = append(targets, id)
	}
	sort.Strings(targets)
	return targets
}

// validate rejects the inputs both estimators share before any math
// runs on them.
func (graph *Graph) validate(α float64) error {
	if len(graph.pages) == 0 {
		return ErrEmptyGraph
	}
	if α < 0 || α > 1 {
		return fmt.Errorf("%w: %v", ErrDamping, α)
	}
	return nil
}

// effectiveDegree returns the out-degree used by both estimators:
// a dangling page is treated as linking to every page in the corpus.
func (graph *Graph) effectiveDegree(page string) int {
	if d := len(graph.pages[page]); d > 0 {
		return d
	}
	return len(graph.pages)
}

// linksTo reports whether source links to target under the same
// convention: a dangling source links to everything, itself included.
func (graph *Graph) linksTo(source, target string) bool {
	targets := graph.pages[source]
	if len(targets) == 0 {
		return true
	}
	return targets[target]
}
