package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/server"
	"github.com/jonathan/resume-matcher/internal/store"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes /api/analyze and /api/rank endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return err
	}

	comps, err := buildComponents(ctx, cfg)
	if err != nil {
		return err
	}
	defer comps.close()

	var candidateStore store.CandidateStore
	if cfg.DatabaseURL != "" {
		db, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to candidate store: %w", err)
		}
		defer db.Close()
		candidateStore = db
	} else {
		logger.Logger.Warn().Msg("no database configured; /api/rank will report no data")
	}

	concurrency := cfg.Concurrency
	if concurrency == 0 {
		concurrency = ranking.DefaultConcurrency
	}

	srv, err := server.New(
		server.Config{Port: servePort, TopN: cfg.TopN, Concurrency: concurrency},
		server.Deps{
			Analyzer: comps.analyzer,
			NewRanker: func(topN int) server.Ranker {
				return ranking.New(comps.analyzer,
					ranking.WithTopN(topN),
					ranking.WithConcurrency(concurrency),
					ranking.WithLogger(logger.Logger),
				)
			},
			Store:    candidateStore,
			Feedback: comps.feedback,
			Logger:   logger.Logger,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
