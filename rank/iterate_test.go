package rank

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestIterateTwoPageCycle(t *testing.T) {
	graph := NewGraph()
	graph.Link("1.html", "2.html")
	graph.Link("2.html", "1.html")
	graph.Finalize()

	actual, err := graph.IterateRank(0.85)
	if err != nil {
		t.Fatal(err)
	}

	expected := Ranks{
		"1.html": 0.5,
		"2.html": 0.5,
	}

	if diff := cmp.Diff(expected, actual, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Error("Expected", expected, "but got", actual, diff)
	}
}

func TestIterateDanglingSink(t *testing.T) {
	// 1 is a sink: it collects 2's whole link weight plus the random
	// jumps, and recycles its own rank back uniformly.
	graph := NewGraph()
	graph.AddPage("1.html")
	graph.Link("2.html", "1.html")
	graph.Finalize()

	ranks, err := graph.IterateRank(0.85)
	if err != nil {
		t.Fatal(err)
	}

	if ranks["1.html"] <= 0 || ranks["2.html"] <= 0 {
		t.Error("every page should have positive rank, got", ranks)
	}
	if ranks["1.html"] <= ranks["2.html"] {
		t.Errorf("sink rank %v is not > %v", ranks["1.html"], ranks["2.html"])
	}
}

func TestIterateSinglePage(t *testing.T) {
	graph := NewGraph()
	graph.AddPage("a.html")
	graph.Finalize()

	ranks, err := graph.IterateRank(0.85)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(ranks["a.html"]-1) > 1e-9 || len(ranks) != 1 {
		t.Error("Expected", Ranks{"a.html": 1}, "but got", ranks)
	}
}

func TestIterateSums(t *testing.T) {
	graph := corpus1()

	for _, α := range []float64{0, 0.5, 0.85, 1} {
		ranks, err := graph.IterateRank(α)
		if err != nil {
			t.Fatal(err)
		}
		var sum float64
		for _, r := range ranks {
			sum += r
		}
		if math.Abs(sum-1) > 1e-6 {
			t.Errorf("ranks at α=%v sum to %v", α, sum)
		}
	}
}

// TestIterateConverged re-applies the update rule once to the
// estimator's own output: at convergence no page may move by more
// than the ε threshold.
func TestIterateConverged(t *testing.T) {
	graph := corpus1()
	graph.AddPage("4.html") // dangling page for good measure
	graph.Finalize()

	const α = 0.85
	ranks, err := graph.IterateRank(α)
	if err != nil {
		t.Fatal(err)
	}

	N := float64(graph.Len())
	for p := range graph.pages {
		var sum float64
		for q := range graph.pages {
			if graph.linksTo(q, p) {
				sum += ranks[q] / float64(graph.effectiveDegree(q))
			}
		}
		next := (1-α)/N + α*sum
		if math.Abs(next-ranks[p]) > ε {
			t.Errorf("page %s moved by %v after convergence", p, math.Abs(next-ranks[p]))
		}
	}
}

func TestIterateErrors(t *testing.T) {
	empty := NewGraph()
	if _, err := empty.IterateRank(0.85); errors.Is(err, ErrEmptyGraph) != true {
		t.Error("Expected", ErrEmptyGraph, "but got", err)
	}

	graph := corpus1()
	if _, err := graph.IterateRank(-0.1); errors.Is(err, ErrDamping) != true {
		t.Error("Expected", ErrDamping, "but got", err)
	}
}
