// Package analyzer orchestrates one resume-vs-JD comparison: text
// extraction, skill and field extraction, similarity scoring and hybrid
// score assembly. An Analyzer holds no per-call state; every analysis is a
// pure function of its inputs and the injected read-only collaborators.
package analyzer

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-matcher/internal/fields"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/similarity"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// TextExtractor turns a resume location into plain text.
type TextExtractor interface {
	ExtractFromURL(ctx context.Context, resumeURL string) (string, error)
}

// Config wires an Analyzer. Vocabulary, Semantic and Weights fall back to
// defaults when unset; Extractor is required for URL-based analysis.
type Config struct {
	Extractor  TextExtractor
	Vocabulary *skills.Vocabulary
	Semantic   similarity.Strategy
	Weights    scoring.Weights
	Logger     zerolog.Logger
}

// Analyzer compares resumes against job descriptions. Safe for concurrent
// use: the vocabulary and the semantic strategy are shared read-only.
type Analyzer struct {
	extractor TextExtractor
	vocab     *skills.Vocabulary
	semantic  similarity.Strategy
	weights   scoring.Weights
	logger    zerolog.Logger
}

// New validates the configuration and builds an Analyzer.
func New(cfg Config) (*Analyzer, error) {
	if cfg.Vocabulary == nil {
		cfg.Vocabulary = skills.DefaultVocabulary()
	}
	if cfg.Semantic == nil {
		cfg.Semantic = &similarity.LexicalOverlapFallback{}
	}
	if cfg.Weights == (scoring.Weights{}) {
		cfg.Weights = scoring.DefaultWeights
	}
	if err := cfg.Weights.Validate(); err != nil {
		return nil, err
	}

	return &Analyzer{
		extractor: cfg.Extractor,
		vocab:     cfg.Vocabulary,
		semantic:  cfg.Semantic,
		weights:   cfg.Weights,
		logger:    cfg.Logger,
	}, nil
}

// Weights returns the configured scoring mix.
func (a *Analyzer) Weights() scoring.Weights {
	return a.weights
}

// ErrNoExtractor is returned by Analyze when the Analyzer was built without
// a text extractor. AnalyzeText remains usable in that configuration.
var ErrNoExtractor = errors.New("no text extractor configured")

// Analyze fetches the resume at resumeURL and compares it against jdText.
// Extraction failures (unreachable resource, empty document) propagate to
// the caller: without text there is nothing meaningful to score. Scorer
// faults past that point degrade to tagged zero sub-scores instead.
func (a *Analyzer) Analyze(ctx context.Context, resumeURL, jdText string) (*types.AnalysisResult, error) {
	if a.extractor == nil {
		return nil, ErrNoExtractor
	}
	resumeText, err := a.extractor.ExtractFromURL(ctx, resumeURL)
	if err != nil {
		return nil, err
	}
	return a.AnalyzeText(ctx, resumeText, jdText), nil
}

// AnalyzeText compares already-extracted resume text against jdText. It
// always produces a result: sub-score faults are absorbed into degraded
// zeroes per the similarity contract.
func (a *Analyzer) AnalyzeText(ctx context.Context, resumeText, jdText string) *types.AnalysisResult {
	resumeSkills := skills.Extract(resumeText, a.vocab)
	jdSkills := skills.Extract(jdText, a.vocab)

	skillScore := scoring.Round2(scoring.SkillScore(resumeSkills, jdSkills))
	lexicalScore := scoring.Round2(similarity.LexicalScore(resumeText, jdText))
	semantic := a.semantic.Score(ctx, resumeText, jdText)
	semanticScore := scoring.Round2(semantic.Value)

	hybridScore, err := scoring.Hybrid(a.weights, skillScore, lexicalScore, semanticScore)
	if err != nil {
		a.logger.Error().Err(err).Msg("hybrid scoring failed")
		hybridScore = 0.0
	}

	result := &types.AnalysisResult{
		ResumeSkills:        resumeSkills,
		JDSkills:            jdSkills,
		MatchedSkills:       skills.Intersect(resumeSkills, jdSkills),
		MissingSkills:       skills.Difference(jdSkills, resumeSkills),
		ResumeFields:        fields.Extract(resumeText),
		JDFields:            fields.Extract(jdText),
		SkillScore:          skillScore,
		LexicalScore:        lexicalScore,
		SemanticScore:       semanticScore,
		HybridScore:         hybridScore,
		SemanticApproximate: semantic.Approximate,
		SemanticDegraded:    semantic.Degraded,
	}

	a.logger.Debug().
		Float64("skill", skillScore).
		Float64("lexical", lexicalScore).
		Float64("semantic", semanticScore).
		Float64("hybrid", hybridScore).
		Str("strategy", a.semantic.Name()).
		Msg("analysis scored")

	return result
}
