// Package types contains the shared value objects produced and consumed by
// the matching pipeline.
package types

// AnalysisResult is the outcome of comparing one resume against one job
// description. Skill slices are always sorted so output is deterministic.
// A result is assembled once and never mutated afterwards, except to attach
// generated feedback text.
type AnalysisResult struct {
	ResumeSkills  []string `json:"resumeSkills"`
	JDSkills      []string `json:"jdSkills"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`

	ResumeFields ExtractedFields `json:"resumeFields"`
	JDFields     ExtractedFields `json:"jdFields"`

	// All scores are in [0, 100].
	SkillScore    float64 `json:"skillScore"`
	LexicalScore  float64 `json:"lexicalScore"`
	SemanticScore float64 `json:"semanticScore"`
	HybridScore   float64 `json:"hybridScore"`

	// SemanticApproximate is true when the semantic score came from the
	// word-overlap fallback rather than an embedding model.
	SemanticApproximate bool `json:"semanticApproximate,omitempty"`
	// SemanticDegraded is true when an internal scorer fault was absorbed
	// and the semantic score was forced to zero.
	SemanticDegraded bool `json:"semanticDegraded,omitempty"`

	// Feedback holds reviewer-facing bullet lines attached after analysis.
	Feedback []string `json:"feedback,omitempty"`
}

// CandidateRecord identifies a stored resume submission. Records come from the
// storage collaborator; the core only reads them. Two records with the same
// email are treated as the same candidate during ranking.
type CandidateRecord struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	ResumeURL string `json:"resumeUrl"`
}

// RankedEntry pairs a candidate with its analysis inside a ranking.
type RankedEntry struct {
	Candidate CandidateRecord `json:"candidate"`
	Result    AnalysisResult  `json:"result"`
}

// RankingReport is the outcome of ranking a candidate batch against one job
// description. ProcessedCount+SkippedCount always equals the number of input
// candidates, so operators can tell "no good candidates" apart from "nothing
// could be processed".
type RankingReport struct {
	ProcessedCount int           `json:"processedCount"`
	SkippedCount   int           `json:"skippedCount"`
	RankedEntries  []RankedEntry `json:"rankedEntries"`
}
