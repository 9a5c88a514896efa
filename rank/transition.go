package rank

import "fmt"

// Transition returns the probability distribution over which page a
// random surfer visits next, given the current page.
//
// With probability α the surfer follows one of page's outbound links,
// chosen uniformly; with probability 1-α it jumps to a page chosen
// uniformly from the whole corpus. A dangling page (no outbound
// links) yields the uniform distribution over all pages.
func (graph *Graph) Transition(page string, α float64) (Distribution, error) {
	if err := graph.validate(α); err != nil {
		return nil, err
	}
	links, ok := graph.pages[page]
	if ok == false {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPage, page)
	}

	N := float64(len(graph.pages))
	dist := make(Distribution, len(graph.pages))

	if len(links) == 0 {
		for id := range graph.pages {
			dist[id] = 1 / N
		}
		return dist, nil
	}

	jump := (1 - α) / N
	for id := range graph.pages {
		dist[id] = jump
	}

	follow := α / float64(len(links))
	for id := range links {
		dist[id] += follow
	}

	return dist, nil
}
