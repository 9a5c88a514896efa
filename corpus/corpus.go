// Package corpus loads a directory of HTML pages into a link graph.
// Each .html file becomes a page keyed by its filename; the href of
// every anchor element becomes an outbound link. Self-references and
// links pointing outside the corpus are dropped.
package corpus

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/relevant-community/pagerank/rank"
)

// Crawl parses every .html file in dir and returns the finalized link
// graph of the corpus. Non-HTML entries and subdirectories are skipped.
func Crawl(dir string) (*rank.Graph, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading corpus %s: %w", dir, err)
	}

	graph := rank.NewGraph()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		f, err := os.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		links, err := extractLinks(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parsing %s as HTML: %w", entry.Name(), err)
		}

		graph.AddPage(entry.Name())
		for _, link := range links {
			graph.Link(entry.Name(), link)
		}
	}

	graph.Finalize()
	return graph, nil
}

// extractLinks returns the href target of every anchor element in the
// document, in document order.
func extractLinks(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var links []string
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, a := range n.Attr {
				if a.Key == "href" {
					links = append(links, a.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)

	return links, nil
}
