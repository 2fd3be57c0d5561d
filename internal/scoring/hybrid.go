// Package scoring combines the skill-overlap, lexical and semantic scores
// into one weighted hybrid score.
package scoring

import (
	"fmt"
	"math"
)

// weightTolerance is how far the weight sum may drift from 1.0.
const weightTolerance = 1e-9

// Weights holds the hybrid score mix. The three components must sum to 1.0.
type Weights struct {
	Skill    float64 `json:"skill"`
	Lexical  float64 `json:"lexical"`
	Semantic float64 `json:"semantic"`
}

// DefaultWeights is the production scoring mix.
var DefaultWeights = Weights{Skill: 0.4, Lexical: 0.3, Semantic: 0.3}

// InvalidWeightsError indicates a weight tuple that does not sum to 1.0
// within tolerance, or contains a negative component.
type InvalidWeightsError struct {
	Weights Weights
	Sum     float64
}

func (e *InvalidWeightsError) Error() string {
	return fmt.Sprintf("invalid hybrid weights %+v: components must be non-negative and sum to 1.0, got %v", e.Weights, e.Sum)
}

// Validate checks that the weights are a proper convex combination.
func (w Weights) Validate() error {
	sum := w.Skill + w.Lexical + w.Semantic
	if w.Skill < 0 || w.Lexical < 0 || w.Semantic < 0 || math.Abs(sum-1.0) > weightTolerance {
		return &InvalidWeightsError{Weights: w, Sum: sum}
	}
	return nil
}

// SkillScore is the share of JD skills present in the resume, in [0, 100].
// An empty JD skill set scores 0: no skill signal is neither a perfect nor a
// failing match, and dividing by zero is not an option.
func SkillScore(resumeSkills, jdSkills []string) float64 {
	if len(jdSkills) == 0 {
		return 0.0
	}

	jdSet := make(map[string]struct{}, len(jdSkills))
	for _, s := range jdSkills {
		jdSet[s] = struct{}{}
	}

	matched := 0
	seen := make(map[string]struct{}, len(resumeSkills))
	for _, s := range resumeSkills {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		if _, ok := jdSet[s]; ok {
			matched++
		}
	}

	return float64(matched) / float64(len(jdSet)) * 100.0
}

// Hybrid computes the weighted composite score, rounded to two decimals.
// Inputs are expected in [0, 100]; with valid weights the result stays there.
func Hybrid(w Weights, skillScore, lexicalScore, semanticScore float64) (float64, error) {
	if err := w.Validate(); err != nil {
		return 0, err
	}
	return Round2(w.Skill*skillScore + w.Lexical*lexicalScore + w.Semantic*semanticScore), nil
}

// Round2 rounds to two decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
