// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-matcher/internal/scoring"
)

// Config is the application configuration, loadable from a JSON file. All
// fields are optional; missing values use defaults or come from CLI flags
// and environment variables.
type Config struct {
	// Credentials / endpoints
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key (enables embeddings + LLM feedback)
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for the candidate store

	// Ranking behavior
	TopN        int `json:"top_n,omitempty"`       // Ranking size (default 10)
	Concurrency int `json:"concurrency,omitempty"` // Analysis worker pool size (default 4)

	// Scoring mix; must sum to 1.0 when set.
	SkillWeight    float64 `json:"skill_weight,omitempty"`
	LexicalWeight  float64 `json:"lexical_weight,omitempty"`
	SemanticWeight float64 `json:"semantic_weight,omitempty"`

	// Fetching
	FetchTimeoutSeconds int  `json:"fetch_timeout_seconds,omitempty"` // Per-document timeout (default 30)
	UseBrowser          bool `json:"use_browser,omitempty"`           // Headless browser fallback for SPA job boards

	// Vocabulary extension on top of the built-in skill list.
	ExtraSkills []string `json:"extra_skills,omitempty"`

	// Logging
	LogLevel  string `json:"log_level,omitempty"`  // debug, info, warn, error
	LogFormat string `json:"log_format,omitempty"` // json or pretty
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks numeric ranges and the scoring mix.
func (c *Config) Validate() error {
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.FetchTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'fetch_timeout_seconds' must be non-negative")
	}

	if c.SkillWeight != 0 || c.LexicalWeight != 0 || c.SemanticWeight != 0 {
		if err := c.Weights().Validate(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	return nil
}

// Weights returns the configured scoring mix, or the default mix when no
// weight is set.
func (c *Config) Weights() scoring.Weights {
	if c.SkillWeight == 0 && c.LexicalWeight == 0 && c.SemanticWeight == 0 {
		return scoring.DefaultWeights
	}
	return scoring.Weights{
		Skill:    c.SkillWeight,
		Lexical:  c.LexicalWeight,
		Semantic: c.SemanticWeight,
	}
}

// MergeEnv fills credentials from environment variables when unset in the
// file. CLI flags still win over both.
func (c *Config) MergeEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}
