package corpus

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, contents := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestCrawl(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"1.html": `<html><body>
			<a href="2.html">two</a>
			<a href="1.html">self</a>
			<a href="https://example.com/out.html">external</a>
		</body></html>`,
		"2.html":    `<html><body><a href="1.html">one</a></body></html>`,
		"notes.txt": `<a href="1.html">not html, ignored</a>`,
	})

	graph, err := Crawl(dir)
	if err != nil {
		t.Fatal(err)
	}

	if actual := graph.Pages(); reflect.DeepEqual(actual, []string{"1.html", "2.html"}) != true {
		t.Error("Expected pages [1.html 2.html] but got", actual)
	}
	if actual := graph.Links("1.html"); reflect.DeepEqual(actual, []string{"2.html"}) != true {
		t.Error("Expected links [2.html] but got", actual)
	}
	if actual := graph.Links("2.html"); reflect.DeepEqual(actual, []string{"1.html"}) != true {
		t.Error("Expected links [1.html] but got", actual)
	}
}

func TestCrawlDanglingPage(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"1.html": `<html><body>no links here</body></html>`,
		"2.html": `<html><body><a href="1.html">one</a></body></html>`,
	})

	graph, err := Crawl(dir)
	if err != nil {
		t.Fatal(err)
	}

	if actual := graph.Links("1.html"); len(actual) != 0 {
		t.Error("Expected no links but got", actual)
	}

	// the whole pipeline still ranks: the sink collects the most weight
	ranks, err := graph.IterateRank(0.85)
	if err != nil {
		t.Fatal(err)
	}
	if ranks["1.html"] <= ranks["2.html"] {
		t.Errorf("sink rank %v is not > %v", ranks["1.html"], ranks["2.html"])
	}
}

func TestCrawlMissingDir(t *testing.T) {
	if _, err := Crawl(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Expected an error for a missing corpus directory")
	}
}
