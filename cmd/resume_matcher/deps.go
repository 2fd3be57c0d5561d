package main

import (
	"context"
	"time"

	"github.com/jonathan/resume-matcher/internal/analyzer"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/feedback"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/similarity"
	"github.com/jonathan/resume-matcher/internal/skills"
)

// components bundles everything a command needs, built once per invocation.
type components struct {
	cfg       *config.Config
	analyzer  *analyzer.Analyzer
	feedback  feedback.Generator
	llmClient llm.Client // nil without an API key
}

// loadConfig reads the optional config file and merges environment values.
func loadConfig(path string) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.MergeEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildComponents wires the analyzer stack from configuration. With an API
// key the semantic scorer uses Gemini embeddings and feedback is generative;
// without one, both fall back to their offline variants.
func buildComponents(ctx context.Context, cfg *config.Config) (*components, error) {
	logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log := logger.Logger

	vocab := skills.DefaultVocabulary()
	if len(cfg.ExtraSkills) > 0 {
		vocab = skills.NewVocabulary(append(vocab.Terms(), cfg.ExtraSkills...))
	}

	var llmClient llm.Client
	var semantic similarity.Strategy
	var generator feedback.Generator = feedback.RuleBased{}

	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return nil, err
		}
		llmClient = client
		semantic = similarity.NewEmbeddingSimilarity(client, log)
		generator = feedback.NewLLMGenerator(client)
	} else {
		log.Info().Msg("no API key configured; using word-overlap semantic fallback and rule-based feedback")
		semantic = &similarity.LexicalOverlapFallback{}
	}

	timeout := extraction.DefaultTimeout
	if cfg.FetchTimeoutSeconds > 0 {
		timeout = time.Duration(cfg.FetchTimeoutSeconds) * time.Second
	}
	extractor := extraction.New(
		extraction.WithTimeout(timeout),
		extraction.WithLogger(log),
	)

	a, err := analyzer.New(analyzer.Config{
		Extractor:  extractor,
		Vocabulary: vocab,
		Semantic:   semantic,
		Weights:    cfg.Weights(),
		Logger:     log,
	})
	if err != nil {
		return nil, err
	}

	return &components{
		cfg:       cfg,
		analyzer:  a,
		feedback:  generator,
		llmClient: llmClient,
	}, nil
}

// close releases held resources.
func (c *components) close() {
	if c.llmClient != nil {
		_ = c.llmClient.Close()
	}
}
