// Package main provides the entry point for the resume matcher CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Resume-to-job-description matching service",
	Long:  "Resume Matcher scores resumes against job descriptions with a weighted mix of skill overlap, lexical and semantic similarity, and ranks candidate batches.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
