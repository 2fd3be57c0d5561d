package ranking

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

// scriptedAnalyzer maps resume URLs to fixed hybrid scores; unknown URLs fail.
type scriptedAnalyzer struct {
	scores map[string]float64
}

func (s *scriptedAnalyzer) Analyze(_ context.Context, resumeURL, _ string) (*types.AnalysisResult, error) {
	score, ok := s.scores[resumeURL]
	if !ok {
		return nil, fmt.Errorf("resume unavailable: %s", resumeURL)
	}
	return &types.AnalysisResult{HybridScore: score}, nil
}

func candidate(id, email, url string) types.CandidateRecord {
	return types.CandidateRecord{ID: id, Email: email, ResumeURL: url}
}

func TestRank_SortsDescending(t *testing.T) {
	analyzer := &scriptedAnalyzer{scores: map[string]float64{
		"u/low": 20, "u/high": 90, "u/mid": 55,
	}}
	agg := New(analyzer)

	report, err := agg.Rank(context.Background(), "jd", []types.CandidateRecord{
		candidate("1", "a@x.com", "u/low"),
		candidate("2", "b@x.com", "u/high"),
		candidate("3", "c@x.com", "u/mid"),
	})
	require.NoError(t, err)

	require.Len(t, report.RankedEntries, 3)
	assert.Equal(t, "2", report.RankedEntries[0].Candidate.ID)
	assert.Equal(t, "3", report.RankedEntries[1].Candidate.ID)
	assert.Equal(t, "1", report.RankedEntries[2].Candidate.ID)
	assert.Equal(t, 3, report.ProcessedCount)
	assert.Zero(t, report.SkippedCount)
}

func TestRank_SkipsFailuresAndCounts(t *testing.T) {
	analyzer := &scriptedAnalyzer{scores: map[string]float64{"u/ok": 50}}
	agg := New(analyzer)

	candidates := []types.CandidateRecord{
		candidate("1", "a@x.com", "u/ok"),
		candidate("2", "b@x.com", "u/broken"),
		candidate("3", "c@x.com", ""),
		candidate("4", "d@x.com", "u/ok"),
	}

	report, err := agg.Rank(context.Background(), "jd", candidates)
	require.NoError(t, err)

	assert.Equal(t, 2, report.ProcessedCount)
	assert.Equal(t, 2, report.SkippedCount)
	assert.Equal(t, len(candidates), report.ProcessedCount+report.SkippedCount)
	assert.Len(t, report.RankedEntries, 2)
}

func TestRank_DedupesByEmailKeepingBestScore(t *testing.T) {
	analyzer := &scriptedAnalyzer{scores: map[string]float64{
		"u/v1": 40, "u/v2": 85, "u/other": 60,
	}}
	agg := New(analyzer)

	report, err := agg.Rank(context.Background(), "jd", []types.CandidateRecord{
		candidate("1", "dup@x.com", "u/v1"),
		candidate("2", "other@x.com", "u/other"),
		candidate("3", "dup@x.com", "u/v2"),
	})
	require.NoError(t, err)

	// Both submissions were processed, but only one survives dedup.
	assert.Equal(t, 3, report.ProcessedCount)
	require.Len(t, report.RankedEntries, 2)
	assert.Equal(t, "3", report.RankedEntries[0].Candidate.ID)
	assert.InDelta(t, 85.0, report.RankedEntries[0].Result.HybridScore, 1e-9)
	assert.Equal(t, "2", report.RankedEntries[1].Candidate.ID)
}

func TestRank_DedupeTieKeepsFirstSeen(t *testing.T) {
	analyzer := &scriptedAnalyzer{scores: map[string]float64{"u/v1": 70, "u/v2": 70}}
	agg := New(analyzer)

	report, err := agg.Rank(context.Background(), "jd", []types.CandidateRecord{
		candidate("first", "dup@x.com", "u/v1"),
		candidate("second", "dup@x.com", "u/v2"),
	})
	require.NoError(t, err)

	require.Len(t, report.RankedEntries, 1)
	assert.Equal(t, "first", report.RankedEntries[0].Candidate.ID)
}

func TestRank_EmptyEmailsAreNotDeduped(t *testing.T) {
	analyzer := &scriptedAnalyzer{scores: map[string]float64{"u/v1": 30, "u/v2": 60}}
	agg := New(analyzer)

	report, err := agg.Rank(context.Background(), "jd", []types.CandidateRecord{
		candidate("1", "", "u/v1"),
		candidate("2", "", "u/v2"),
	})
	require.NoError(t, err)
	assert.Len(t, report.RankedEntries, 2)
}

func TestRank_TruncatesToTopN(t *testing.T) {
	scores := make(map[string]float64)
	var candidates []types.CandidateRecord
	for i := 0; i < 15; i++ {
		url := fmt.Sprintf("u/%d", i)
		scores[url] = float64(i)
		candidates = append(candidates, candidate(fmt.Sprintf("%d", i), fmt.Sprintf("c%d@x.com", i), url))
	}
	agg := New(&scriptedAnalyzer{scores: scores}, WithTopN(5))

	report, err := agg.Rank(context.Background(), "jd", candidates)
	require.NoError(t, err)

	assert.Equal(t, 15, report.ProcessedCount)
	require.Len(t, report.RankedEntries, 5)
	assert.Equal(t, "14", report.RankedEntries[0].Candidate.ID)
	assert.Equal(t, "10", report.RankedEntries[4].Candidate.ID)
}

func TestRank_EqualScoresKeepInputOrder(t *testing.T) {
	analyzer := &scriptedAnalyzer{scores: map[string]float64{
		"u/a": 50, "u/b": 50, "u/c": 50,
	}}
	agg := New(analyzer, WithConcurrency(1))

	report, err := agg.Rank(context.Background(), "jd", []types.CandidateRecord{
		candidate("a", "a@x.com", "u/a"),
		candidate("b", "b@x.com", "u/b"),
		candidate("c", "c@x.com", "u/c"),
	})
	require.NoError(t, err)

	require.Len(t, report.RankedEntries, 3)
	assert.Equal(t, "a", report.RankedEntries[0].Candidate.ID)
	assert.Equal(t, "b", report.RankedEntries[1].Candidate.ID)
	assert.Equal(t, "c", report.RankedEntries[2].Candidate.ID)
}

func TestRank_EmptyBatch(t *testing.T) {
	agg := New(&scriptedAnalyzer{})

	report, err := agg.Rank(context.Background(), "jd", nil)
	require.NoError(t, err)
	assert.Zero(t, report.ProcessedCount)
	assert.Zero(t, report.SkippedCount)
	assert.NotNil(t, report.RankedEntries)
	assert.Empty(t, report.RankedEntries)
}

func TestRank_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	agg := New(&scriptedAnalyzer{scores: map[string]float64{"u/a": 10}})
	_, err := agg.Rank(ctx, "jd", []types.CandidateRecord{candidate("a", "a@x.com", "u/a")})
	assert.Error(t, err)
}

func TestOptions_IgnoreInvalidValues(t *testing.T) {
	agg := New(&scriptedAnalyzer{}, WithTopN(0), WithConcurrency(-1))
	assert.Equal(t, DefaultTopN, agg.topN)
	assert.Equal(t, DefaultConcurrency, agg.concurrency)
}
