package feedback

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestRuleBased_MissingSkills(t *testing.T) {
	result := &types.AnalysisResult{
		JDSkills:      []string{"python", "react", "sql"},
		MatchedSkills: []string{"python", "sql"},
		MissingSkills: []string{"react"},
		HybridScore:   66.67,
	}

	lines, err := RuleBased{}.Generate(context.Background(), "jd", result)
	require.NoError(t, err)
	require.NotEmpty(t, lines)

	assert.Contains(t, lines[0], "Missing skills: react.")
	assert.Contains(t, lines[1], "Matched skills: python, sql.")
}

func TestRuleBased_AllSkillsPresent(t *testing.T) {
	result := &types.AnalysisResult{
		JDSkills:      []string{"python"},
		MatchedSkills: []string{"python"},
		HybridScore:   90,
	}

	lines, err := RuleBased{}.Generate(context.Background(), "jd", result)
	require.NoError(t, err)
	assert.Contains(t, lines[0], "All skills requested")
}

func TestRuleBased_NoRecognizedJDSkills(t *testing.T) {
	lines, err := RuleBased{}.Generate(context.Background(), "jd", &types.AnalysisResult{})
	require.NoError(t, err)
	assert.Contains(t, lines[0], "no recognized skills")
}

func TestRuleBased_MatchTiers(t *testing.T) {
	cases := map[float64]string{
		80.0: "strong match",
		60.0: "moderate match",
		30.0: "weak match",
		10.0: "poor match",
	}
	for score, tier := range cases {
		lines, err := RuleBased{}.Generate(context.Background(), "jd",
			&types.AnalysisResult{HybridScore: score})
		require.NoError(t, err)

		joined := strings.Join(lines, "\n")
		assert.Contains(t, joined, tier, "score %.0f", score)
	}
}

func TestRuleBased_ApproximateSemanticNote(t *testing.T) {
	lines, err := RuleBased{}.Generate(context.Background(), "jd",
		&types.AnalysisResult{SemanticApproximate: true})
	require.NoError(t, err)
	assert.Contains(t, strings.Join(lines, "\n"), "approximation")
}

func TestRuleBased_FieldNotes(t *testing.T) {
	cgpa := 8.0
	years := 3
	result := &types.AnalysisResult{
		JDFields: types.ExtractedFields{
			CGPA:            &cgpa,
			ExperienceYears: &years,
			Degree:          "btech",
			Branch:          "computer science",
		},
	}

	lines, err := RuleBased{}.Generate(context.Background(), "jd", result)
	require.NoError(t, err)

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "CGPA")
	assert.Contains(t, joined, "years of experience")
	assert.Contains(t, joined, "degree")
	assert.Contains(t, joined, "academic branch")
}

func TestRuleBased_NoFieldNoteWhenResumeCovers(t *testing.T) {
	cgpa := 8.0
	result := &types.AnalysisResult{
		JDFields:     types.ExtractedFields{CGPA: &cgpa},
		ResumeFields: types.ExtractedFields{CGPA: &cgpa},
	}

	lines, err := RuleBased{}.Generate(context.Background(), "jd", result)
	require.NoError(t, err)
	assert.NotContains(t, strings.Join(lines, "\n"), "does not state")
}
