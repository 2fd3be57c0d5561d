// Package feedback turns an analysis result into reviewer-facing text,
// either with static rules or by delegating to a generative model. The core
// treats the output as opaque lines to attach to a result.
package feedback

import (
	"context"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Generator produces feedback bullet lines for an analysis.
type Generator interface {
	Generate(ctx context.Context, jdText string, result *types.AnalysisResult) ([]string, error)
}
