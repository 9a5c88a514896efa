package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/relevant-community/pagerank/corpus"
	"github.com/relevant-community/pagerank/rank"
)

var rootCmd = &cobra.Command{
	Use:   "pagerank corpus_dir",
	Short: "Estimate the importance of pages in an HTML corpus",
	Long: "Pagerank crawls a directory of HTML pages and estimates every page's\n" +
		"importance twice: by sampling a long random-surfer walk and by iterating\n" +
		"the PageRank recurrence to its fixed point.",
	Args: cobra.ExactArgs(1),
	RunE: runRank,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .pagerank.yaml)")
	rootCmd.PersistentFlags().Float64("damping", rank.DefaultDamping, "probability of following a real link")
	rootCmd.PersistentFlags().Int("samples", rank.DefaultSamples, "walk length of the sampling estimator")

	_ = viper.BindPFlag("damping", rootCmd.PersistentFlags().Lookup("damping"))
	_ = viper.BindPFlag("samples", rootCmd.PersistentFlags().Lookup("samples"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".pagerank")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("PAGERANK")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

func runRank(cmd *cobra.Command, args []string) error {
	cfg := LoadConfig()

	graph, err := corpus.Crawl(args[0])
	if err != nil {
		return err
	}

	sampled, err := graph.SampleRank(cfg.Damping, cfg.Samples)
	if err != nil {
		return err
	}
	printRanks(cmd.OutOrStdout(), fmt.Sprintf("PageRank Results from Sampling (n = %d)", cfg.Samples), sampled)

	iterated, err := graph.IterateRank(cfg.Damping)
	if err != nil {
		return err
	}
	printRanks(cmd.OutOrStdout(), "PageRank Results from Iteration", iterated)

	return nil
}

// printRanks writes one title line and every page's rank, sorted by
// page id, four decimals.
func printRanks(w io.Writer, title string, ranks rank.Ranks) {
	fmt.Fprintln(w, title)

	pages := make([]string, 0, len(ranks))
	for id := range ranks {
		pages = append(pages, id)
	}
	sort.Strings(pages)

	for _, id := range pages {
		fmt.Fprintf(w, "  %s: %.4f\n", id, ranks[id])
	}
}
