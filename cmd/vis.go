package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/relevant-community/pagerank/corpus"
	"github.com/relevant-community/pagerank/rank"
)

var visCmd = &cobra.Command{
	Use:   "vis corpus_dir",
	Short: "Render the corpus link graph with iterated ranks",
	Long: "Vis crawls the corpus, runs the iterative estimator, renders the link\n" +
		"graph as a force-directed chart (node size follows rank) and serves it.",
	Args: cobra.ExactArgs(1),
	RunE: runVis,
}

func init() {
	rootCmd.AddCommand(visCmd)

	visCmd.Flags().Int("port", 7000, "port to serve the rendered chart on")
	_ = viper.BindPFlag("port", visCmd.Flags().Lookup("port"))
}

func runVis(cmd *cobra.Command, args []string) error {
	cfg := LoadConfig()

	graph, err := corpus.Crawl(args[0])
	if err != nil {
		return err
	}
	ranks, err := graph.IterateRank(cfg.Damping)
	if err != nil {
		return err
	}

	page := components.NewPage()
	page.AddCharts(rankGraph(graph, ranks, "PageRank: "+args[0]))

	f, err := os.Create("index.html")
	if err != nil {
		return err
	}
	if err := page.Render(io.MultiWriter(f)); err != nil {
		f.Close()
		return err
	}
	f.Close()

	addr := fmt.Sprintf(":%d", cfg.Port)
	fmt.Fprintf(cmd.OutOrStdout(), "serving http://localhost%s\n", addr)
	http.Handle("/", http.FileServer(http.Dir("./")))
	return http.ListenAndServe(addr, nil)
}

func rankGraph(g *rank.Graph, ranks rank.Ranks, title string) *charts.Graph {
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}))

	nodes := make([]opts.GraphNode, 0, g.Len())
	for _, id := range g.Pages() {
		nodes = append(nodes, opts.GraphNode{
			Name:       id,
			Value:      float32(ranks[id]),
			SymbolSize: 10 + 350*ranks[id],
		})
	}

	links := make([]opts.GraphLink, 0)
	for _, source := range g.Pages() {
		for _, target := range g.Links(source) {
			links = append(links, opts.GraphLink{Source: source, Target: target})
		}
	}

	graph.AddSeries("corpus", nodes, links).
		SetSeriesOptions(
			charts.WithGraphChartOpts(opts.GraphChart{
				Force:              &opts.GraphForce{Repulsion: 2000},
				Layout:             "force",
				Roam:               true,
				FocusNodeAdjacency: true,
			}),
			charts.WithLabelOpts(opts.Label{Show: true, Position: "right", Color: "black"}),
			charts.WithEmphasisOpts(opts.Emphasis{
				Label: &opts.Label{
					Formatter: "rank: {c}",
					Show:      true,
					Color:     "black",
				},
			}),
		)
	return graph
}
