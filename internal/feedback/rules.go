package feedback

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// RuleBased generates feedback from static templates. It needs no network
// access and is the default when no generative model is configured.
type RuleBased struct{}

// Generate builds bullet lines covering skill gaps, score summary and
// eligibility field annotations. It never fails.
func (RuleBased) Generate(_ context.Context, _ string, result *types.AnalysisResult) ([]string, error) {
	var lines []string

	if len(result.MissingSkills) > 0 {
		lines = append(lines, fmt.Sprintf("Missing skills: %s.", strings.Join(result.MissingSkills, ", ")))
	} else if len(result.JDSkills) > 0 {
		lines = append(lines, "All skills requested by the job description are present.")
	} else {
		lines = append(lines, "The job description lists no recognized skills to compare against.")
	}

	if len(result.MatchedSkills) > 0 {
		lines = append(lines, fmt.Sprintf("Matched skills: %s.", strings.Join(result.MatchedSkills, ", ")))
	}

	lines = append(lines, fmt.Sprintf("Match summary: %s (hybrid score %.2f; skill %.2f, lexical %.2f, semantic %.2f).",
		matchTier(result.HybridScore), result.HybridScore,
		result.SkillScore, result.LexicalScore, result.SemanticScore))

	if result.SemanticApproximate {
		lines = append(lines, "Semantic score is an approximation (word overlap); no embedding model was available.")
	}

	if note := fieldNotes(result.ResumeFields, result.JDFields); note != "" {
		lines = append(lines, note)
	}

	return lines, nil
}

// matchTier maps a hybrid score to a coarse verdict.
func matchTier(score float64) string {
	switch {
	case score >= 75:
		return "strong match"
	case score >= 50:
		return "moderate match"
	case score >= 25:
		return "weak match"
	default:
		return "poor match"
	}
}

// fieldNotes annotates eligibility fields the JD asks for but the resume
// does not state. Field checks never gate the score; they only inform the
// reviewer.
func fieldNotes(resume, jd types.ExtractedFields) string {
	var missing []string

	if jd.HasCGPA() && !resume.HasCGPA() {
		missing = append(missing, "CGPA")
	}
	if jd.HasExperience() && !resume.HasExperience() {
		missing = append(missing, "years of experience")
	}
	if jd.Degree != "" && resume.Degree == "" {
		missing = append(missing, "degree")
	}
	if jd.Branch != "" && resume.Branch == "" {
		missing = append(missing, "academic branch")
	}

	if len(missing) == 0 {
		return ""
	}
	return fmt.Sprintf("The job description asks for %s, which the resume does not state.", strings.Join(missing, ", "))
}
