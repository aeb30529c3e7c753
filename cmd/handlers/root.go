// Package handlers wires the command-line surface of PolicyRadar. The root
// command runs a full collection cycle; maintenance flows (search, feed
// testing, cache clearing) are selected through flags, mirroring how the
// aggregator is driven from cron and CI.
package handlers

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"policyradar/internal/config"
	"policyradar/internal/logger"
	"policyradar/internal/pipeline"
)

var cfgFile string

// NewRootCmd creates the root command with all flags attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "policyradar",
		Short: "PolicyRadar aggregates Indian public-policy news into a static site",
		Long: `PolicyRadar harvests Indian news and government sources, scores every
article for policy relevance, removes duplicates and renders a static HTML
site plus an optional JSON dump of the current edition.

Run without flags to perform a full collection cycle. Use --search, --test
or --clear-cache to run a maintenance flow instead.`,
		SilenceUsage: true,
		RunE:         runRoot,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./policyradar.yaml)")

	rootCmd.Flags().Int("workers", 0, "number of concurrent fetch workers")
	rootCmd.Flags().Int("max-feeds", 0, "cap on the number of feeds fetched this run")
	rootCmd.Flags().Int("max-articles", 0, "cap on articles taken per feed")
	rootCmd.Flags().String("output", "", "path of the rendered index page")
	rootCmd.Flags().String("filter", "", "render only articles in this category")
	rootCmd.Flags().Bool("export", false, "write the JSON API dump alongside the site")
	rootCmd.Flags().Bool("fresh", false, "disable duplicate suppression for this run")
	rootCmd.Flags().Bool("debug", false, "enable debug logging and the per-source debug report")

	rootCmd.Flags().String("search", "", "search stored articles instead of collecting")
	rootCmd.Flags().String("test", "", "fetch and score a single feed URL, then exit")
	rootCmd.Flags().Bool("clear-cache", false, "remove the article cache and prune old stored articles")

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger.Init(cfg.App.LogDir, cfg.App.Debug)

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := p.Close(); err != nil {
			logger.Error("failed to close store", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if query, _ := cmd.Flags().GetString("search"); query != "" {
		return runSearch(p, query)
	}
	if url, _ := cmd.Flags().GetString("test"); url != "" {
		return runTestFeed(ctx, p, url)
	}
	if clear, _ := cmd.Flags().GetBool("clear-cache"); clear {
		return runClearCache(p)
	}

	// A degraded run (few or no reachable sources) still exits zero: the
	// pipeline falls back to cached articles or a service notice, and only
	// failures to write the artifacts themselves surface here.
	return p.Run(ctx)
}

// loadConfig loads configuration and layers the command-line overrides on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if v, _ := cmd.Flags().GetInt("workers"); v > 0 {
		cfg.Fetch.Workers = v
	}
	if v, _ := cmd.Flags().GetInt("max-feeds"); v > 0 {
		cfg.Pipeline.MaxFeeds = v
	}
	if v, _ := cmd.Flags().GetInt("max-articles"); v > 0 {
		cfg.Pipeline.MaxPerFeed = v
	}
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		cfg.Output.IndexPath = v
	}
	if v, _ := cmd.Flags().GetString("filter"); v != "" {
		cfg.Output.Filter = v
	}
	if v, _ := cmd.Flags().GetBool("export"); v {
		cfg.Output.Export = true
	}
	if v, _ := cmd.Flags().GetBool("fresh"); v {
		cfg.Pipeline.Fresh = true
	}
	if v, _ := cmd.Flags().GetBool("debug"); v {
		cfg.App.Debug = true
	}
	return cfg, nil
}

func runSearch(p *pipeline.Pipeline, query string) error {
	articles, err := p.Search(query, 10)
	if err != nil {
		return err
	}
	if len(articles) == 0 {
		fmt.Printf("No stored articles match %q\n", query)
		return nil
	}

	fmt.Printf("Top %d matches for %q:\n\n", len(articles), query)
	for _, a := range articles {
		date := "undated"
		if a.PublishedDate != nil {
			date = a.PublishedDate.Format("2006-01-02")
		}
		fmt.Printf("  [%.2f] %s\n", a.Scores.Overall, a.Title)
		fmt.Printf("         %s | %s | %s\n", a.Source, date, a.URL)
	}
	return nil
}

func runTestFeed(ctx context.Context, p *pipeline.Pipeline, url string) error {
	fmt.Printf("Testing feed %s\n", url)

	articles, err := p.TestFeed(ctx, url)
	if err != nil {
		return fmt.Errorf("feed test failed: %w", err)
	}

	fmt.Printf("Extracted %d articles:\n\n", len(articles))
	for _, a := range articles {
		fmt.Printf("  [%.2f] %s\n", a.Scores.Overall, a.Title)
		if len(a.Tags) > 0 {
			fmt.Printf("         tags: %v\n", a.Tags)
		}
	}
	return nil
}

func runClearCache(p *pipeline.Pipeline) error {
	if err := p.ClearCache(); err != nil {
		return err
	}
	fmt.Println("Article cache cleared and old stored articles pruned")
	return nil
}
