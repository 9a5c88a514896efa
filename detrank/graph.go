// Package detrank is a deterministic implementation of the iterative
// PageRank estimator: all math runs on fixed-point sdk.Uint values so
// the ranks are bit-identical across architectures and runs
// the float64 twin lives in package rank
// references:
// https://github.com/alixaxel/pagerank
// https://github.com/dcadenas/pagerank
// notes:
// Optimization - using int-indexed maps?
package detrank

import (
	"errors"
	"fmt"
	"sort"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Decimals is the default decimal precision used in computation
const Decimals = 18

// ErrEmptyGraph is returned when the estimator is run on a graph with no pages.
var ErrEmptyGraph = errors.New("empty graph")

// ErrDamping is returned when the damping factor is outside [0,1].
var ErrDamping = errors.New("damping factor outside [0,1]")

// Graph is the link graph of a corpus, mirroring rank.Graph but
// carrying the fixed-point precision used by the estimator.
type Graph struct {
	Pages     map[string]map[string]bool
	Precision sdk.Uint
}

// NewGraph initializes and returns a new empty graph.
func NewGraph() *Graph {
	return &Graph{
		Pages:     make(map[string]map[string]bool),
		Precision: sdk.NewUintFromBigInt(sdk.NewIntWithDecimal(1, Decimals).BigInt()),
	}
}

// AddPage adds a page with no outbound links. Adding an existing page
// is a no-op.
func (graph *Graph) AddPage(id string) {
	if _, ok := graph.Pages[id]; ok == false {
		graph.Pages[id] = map[string]bool{}
	}
}

// Link records an outbound link from source to target. Self-links are
// dropped; the source page is created if it does not exist yet.
func (graph *Graph) Link(source, target string) {
	if source == target {
		return
	}
	graph.AddPage(source)
	graph.Pages[source][target] = true
}

// Finalize removes links whose target is not itself a page of the
// corpus. It runs after all links are added and before ranking.
func (graph *Graph) Finalize() {
	for _, targets := range graph.Pages {
		for target := range targets {
			if _, ok := graph.Pages[target]; ok == false {
				delete(targets, target)
			}
		}
	}
}

// PageIDs returns all page ids, sorted.
func (graph *Graph) PageIDs() []string {
	ids := make([]string, 0, len(graph.Pages))
	for id := range graph.Pages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (graph *Graph) validate(α sdk.Uint) error {
	if len(graph.Pages) == 0 {
		return ErrEmptyGraph
	}
	if α.GT(graph.Precision) {
		return fmt.Errorf("%w: %s", ErrDamping, α.String())
	}
	return nil
}

// effectiveDegree returns the out-degree under the dangling-page
// convention: a page with no links counts as linking to every page.
func (graph *Graph) effectiveDegree(page string) sdk.Uint {
	if d := len(graph.Pages[page]); d > 0 {
		return sdk.NewUint(uint64(d))
	}
	return sdk.NewUint(uint64(len(graph.Pages)))
}

// linksTo applies the same convention as a predicate.
func (graph *Graph) linksTo(source, target string) bool {
	targets := graph.Pages[source]
	if len(targets) == 0 {
		return true
	}
	return targets[target]
}
