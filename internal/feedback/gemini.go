package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

// promptTemplate mirrors the reviewer prompt: four focused bullet areas.
const promptTemplate = `You are an expert AI resume reviewer.

## Job description:
%s

## Matching:
Matched skills: %s
Missing skills: %s
Skill: %.2f, Lexical: %.2f, Semantic: %.2f, Hybrid: %.2f

Give feedback as JSON {"feedback": ["...", ...]} with 4 concise bullet strings:
1. Missing Skills
2. Project Phrasing
3. Action Verbs & Metrics
4. Match Summary`

// LLMGenerator delegates feedback writing to a generative model and
// validates the returned JSON before trusting it.
type LLMGenerator struct {
	client llm.Client
}

// NewLLMGenerator wraps an LLM client as a feedback generator.
func NewLLMGenerator(client llm.Client) *LLMGenerator {
	return &LLMGenerator{client: client}
}

// Generate asks the model for feedback bullets. The response must pass the
// feedback JSON Schema; anything else is an error the caller may handle by
// falling back to rule-based feedback.
func (g *LLMGenerator) Generate(ctx context.Context, jdText string, result *types.AnalysisResult) ([]string, error) {
	prompt := fmt.Sprintf(promptTemplate,
		jdText,
		joinOrNone(result.MatchedSkills),
		joinOrNone(result.MissingSkills),
		result.SkillScore, result.LexicalScore, result.SemanticScore, result.HybridScore,
	)

	raw, err := g.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("feedback generation failed: %w", err)
	}

	if err := schemas.ValidateFeedback(raw); err != nil {
		return nil, fmt.Errorf("generated feedback failed schema validation: %w", err)
	}

	var payload struct {
		Feedback []string `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse generated feedback: %w", err)
	}

	return payload.Feedback, nil
}

func joinOrNone(skills []string) string {
	if len(skills) == 0 {
		return "(none)"
	}
	return strings.Join(skills, ", ")
}
