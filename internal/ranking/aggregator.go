// Package ranking runs the single-candidate analyzer over a batch of
// candidates and produces a deduplicated, descending top-N ranking.
package ranking

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultTopN is the default ranking size.
const DefaultTopN = 10

// DefaultConcurrency bounds the analysis worker pool. Per-candidate analyses
// are independent, so they run in parallel against the shared read-only
// vocabulary and embedding model.
const DefaultConcurrency = 4

// CandidateAnalyzer analyzes one resume URL against a job description.
type CandidateAnalyzer interface {
	Analyze(ctx context.Context, resumeURL, jdText string) (*types.AnalysisResult, error)
}

// Aggregator ranks candidate batches. Batch-tolerant by design: a candidate
// whose resume cannot be fetched or read is skipped and counted, never
// aborting the batch.
type Aggregator struct {
	analyzer    CandidateAnalyzer
	topN        int
	concurrency int
	logger      zerolog.Logger
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithTopN sets the ranking size (values < 1 keep the default).
func WithTopN(n int) Option {
	return func(a *Aggregator) {
		if n >= 1 {
			a.topN = n
		}
	}
}

// WithConcurrency bounds the worker pool (values < 1 keep the default).
func WithConcurrency(n int) Option {
	return func(a *Aggregator) {
		if n >= 1 {
			a.concurrency = n
		}
	}
}

// WithLogger sets the logger used for batch progress and skip diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Aggregator) {
		a.logger = l
	}
}

// New creates an Aggregator around the given analyzer.
func New(analyzer CandidateAnalyzer, opts ...Option) *Aggregator {
	a := &Aggregator{
		analyzer:    analyzer,
		topN:        DefaultTopN,
		concurrency: DefaultConcurrency,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Rank analyzes every candidate against jdText and returns the top-N entries
// sorted descending by hybrid score. Candidates that fail analysis are
// skipped; ProcessedCount+SkippedCount always equals len(candidates).
// Duplicate emails keep only the best-scoring submission, ties going to the
// first seen in input order. Dedup happens before top-N truncation so the
// ranking always holds distinct candidates.
func (a *Aggregator) Rank(ctx context.Context, jdText string, candidates []types.CandidateRecord) (*types.RankingReport, error) {
	results := make([]*types.AnalysisResult, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for i, candidate := range candidates {
		g.Go(func() error {
			if candidate.ResumeURL == "" {
				a.logger.Warn().Str("candidate", candidate.ID).Msg("skipping candidate without resume URL")
				return nil
			}
			result, err := a.analyzer.Analyze(gCtx, candidate.ResumeURL, jdText)
			if err != nil {
				a.logger.Warn().
					Err(err).
					Str("candidate", candidate.ID).
					Str("email", candidate.Email).
					Msg("skipping candidate after failed analysis")
				return nil
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &types.RankingReport{RankedEntries: []types.RankedEntry{}}

	// Dedupe by email in input order, keeping the best score per email.
	// Candidates without an email are kept individually.
	bestByEmail := make(map[string]int)
	entries := []types.RankedEntry{}
	for i, candidate := range candidates {
		result := results[i]
		if result == nil {
			report.SkippedCount++
			continue
		}
		report.ProcessedCount++

		if candidate.Email == "" {
			entries = append(entries, types.RankedEntry{Candidate: candidate, Result: *result})
			continue
		}
		if idx, seen := bestByEmail[candidate.Email]; seen {
			if result.HybridScore > entries[idx].Result.HybridScore {
				entries[idx] = types.RankedEntry{Candidate: candidate, Result: *result}
			}
			continue
		}
		bestByEmail[candidate.Email] = len(entries)
		entries = append(entries, types.RankedEntry{Candidate: candidate, Result: *result})
	}

	// Stable sort keeps first-seen order for equal scores.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Result.HybridScore > entries[j].Result.HybridScore
	})

	if len(entries) > a.topN {
		entries = entries[:a.topN]
	}
	report.RankedEntries = entries

	a.logger.Info().
		Int("processed", report.ProcessedCount).
		Int("skipped", report.SkippedCount).
		Int("ranked", len(report.RankedEntries)).
		Msg("ranking complete")

	return report, nil
}
