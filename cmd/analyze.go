package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/marketscout/compete-cli/internal/analyzer"
	"github.com/marketscout/compete-cli/internal/fetcher"
	"github.com/marketscout/compete-cli/internal/model"
)

var (
	analyzeType   string
	analyzeAll    bool
	analyzeOutput string
	analyzeFormat string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <name>",
	Short: "Run analysis on a competitor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		reg, err := openRegistry(ctx)
		if err != nil {
			return err
		}
		defer reg.Close()

		c, err := reg.Get(ctx, args[0])
		if err != nil {
			return err
		}
		if c == nil {
			fmt.Printf("Competitor not found: %s\n", args[0])
			fmt.Println("Use 'compete list' to see tracked competitors.")
			return nil
		}

		kinds, err := requestedKinds()
		if err != nil {
			return err
		}
		if analyzeFormat != "json" && analyzeFormat != "csv" {
			return eris.Errorf("unknown output format %q (want json or csv)", analyzeFormat)
		}

		result, reports := newAnalysisRunner().Run(ctx, *c, kinds)
		printResult(result, reports)

		if analyzeOutput != "" {
			if err := exportResult(result, analyzeOutput, analyzeFormat); err != nil {
				return err
			}
			fmt.Printf("\nResults exported to: %s\n", analyzeOutput)
		}
		return nil
	},
}

func requestedKinds() ([]model.AnalysisKind, error) {
	if analyzeAll {
		return model.AllKinds(), nil
	}
	if analyzeType == "" {
		return nil, eris.New("specify --type or --all")
	}
	kind, err := model.ParseKind(analyzeType)
	if err != nil {
		return nil, err
	}
	return []model.AnalysisKind{kind}, nil
}

func newAnalysisRunner() *analyzer.Runner {
	f := fetcher.NewHTTPFetcher(fetcher.Options{
		UserAgent: cfg.Fetch.UserAgent,
		Timeout:   cfg.Fetch.Timeout(),
		MinDelay:  cfg.Fetch.RateLimitDelay(),
	})
	return analyzer.NewRunner(analyzer.Options{
		Fetcher:     f,
		NewsFeedURL: cfg.News.FeedBaseURL,
	})
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeType, "type", "t", "", "type of analysis to run (web, seo, news, social)")
	analyzeCmd.Flags().BoolVarP(&analyzeAll, "all", "a", false, "run all analysis types")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "output file path")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "json", "output format (json or csv)")
	rootCmd.AddCommand(analyzeCmd)
}
