package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/ingestion"
)

var (
	analyzeResumeURL    string
	analyzeJDPath       string
	analyzeJDURL        string
	analyzeWithFeedback bool
	analyzeConfigPath   string
	analyzeUseBrowser   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one resume against a job description",
	Long:  `Fetch a resume PDF, compare it against a job description and print the analysis as JSON.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResumeURL, "resume-url", "", "URL of the resume PDF (required)")
	analyzeCmd.Flags().StringVar(&analyzeJDPath, "jd", "", "Path to a job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJDURL, "jd-url", "", "URL of a job posting to scrape")
	analyzeCmd.Flags().BoolVar(&analyzeWithFeedback, "feedback", false, "Attach reviewer feedback to the result")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Render SPA job postings in a headless browser")
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to a JSON config file")
	_ = analyzeCmd.MarkFlagRequired("resume-url")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(analyzeConfigPath)
	if err != nil {
		return err
	}

	jdText, err := loadJD(cmd, analyzeJDPath, analyzeJDURL, analyzeUseBrowser || cfg.UseBrowser)
	if err != nil {
		return err
	}

	comps, err := buildComponents(ctx, cfg)
	if err != nil {
		return err
	}
	defer comps.close()

	result, err := comps.analyzer.Analyze(ctx, analyzeResumeURL, jdText)
	if err != nil {
		return err
	}

	if analyzeWithFeedback {
		lines, err := comps.feedback.Generate(ctx, jdText, result)
		if err != nil {
			return fmt.Errorf("feedback generation failed: %w", err)
		}
		result.Feedback = lines
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// loadJD resolves the job description from a file path or a posting URL.
func loadJD(cmd *cobra.Command, path, url string, useBrowser bool) (string, error) {
	switch {
	case path != "" && url != "":
		return "", fmt.Errorf("--jd and --jd-url are mutually exclusive")
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read job description file: %w", err)
		}
		return ingestion.FromText(string(data)), nil
	case url != "":
		return ingestion.FromURL(cmd.Context(), url, &ingestion.Options{UseBrowser: useBrowser})
	default:
		return "", fmt.Errorf("either --jd or --jd-url is required")
	}
}
