package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/store"
	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	rankJDPath      string
	rankJDURL       string
	rankTopN        int
	rankConcurrency int
	rankConfigPath  string
	rankUseBrowser  bool
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank all stored candidates against a job description",
	Long:  `Load candidate records from the database, analyze each resume against the job description and print the top-N ranking as JSON.`,
	RunE:  runRank,
}

func init() {
	rankCmd.Flags().StringVar(&rankJDPath, "jd", "", "Path to a job description text file")
	rankCmd.Flags().StringVar(&rankJDURL, "jd-url", "", "URL of a job posting to scrape")
	rankCmd.Flags().IntVar(&rankTopN, "top-n", 0, "Ranking size (default 10)")
	rankCmd.Flags().IntVar(&rankConcurrency, "concurrency", 0, "Analysis worker pool size (default 4)")
	rankCmd.Flags().StringVar(&rankConfigPath, "config", "", "Path to a JSON config file")
	rankCmd.Flags().BoolVar(&rankUseBrowser, "use-browser", false, "Render SPA job postings in a headless browser")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(rankConfigPath)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable (or database_url config) is required")
	}

	jdText, err := loadJD(cmd, rankJDPath, rankJDURL, rankUseBrowser || cfg.UseBrowser)
	if err != nil {
		return err
	}

	comps, err := buildComponents(ctx, cfg)
	if err != nil {
		return err
	}
	defer comps.close()

	candidates, err := listStoredCandidates(cmd, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		fmt.Fprintln(os.Stderr, "no resumes available")
		return nil
	}

	topN := rankTopN
	if topN == 0 {
		topN = cfg.TopN
	}
	concurrency := rankConcurrency
	if concurrency == 0 {
		concurrency = cfg.Concurrency
	}

	aggregator := ranking.New(comps.analyzer,
		ranking.WithTopN(topN),
		ranking.WithConcurrency(concurrency),
		ranking.WithLogger(logger.Logger),
	)

	report, err := aggregator.Rank(ctx, jdText, candidates)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func listStoredCandidates(cmd *cobra.Command, databaseURL string) ([]types.CandidateRecord, error) {
	db, err := store.Connect(cmd.Context(), databaseURL)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return db.ListCandidates(cmd.Context())
}
