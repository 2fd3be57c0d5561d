package similarity

import (
	"context"
	"math"
	"strings"

	"github.com/rs/zerolog"
)

// Score is a tagged similarity result. The flags let callers and tests tell
// "genuinely dissimilar" apart from "the scorer could not do its job".
type Score struct {
	Value       float64
	Approximate bool // produced by the word-overlap fallback, not an embedding model
	Degraded    bool // an internal scorer fault was absorbed and Value forced to 0
}

// Embedder encodes texts into dense vectors. The embedding model is loaded
// once per process and shared read-only across comparisons.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Strategy computes a semantic similarity score in [0, 100] for two texts.
// Implementations must never fail the pipeline: faults are absorbed into a
// degraded zero score.
type Strategy interface {
	Score(ctx context.Context, a, b string) Score
	Name() string
}

// NewStrategy selects the semantic strategy at construction time: embedding
// similarity when an embedder is available, the word-overlap fallback
// otherwise. Tests can force either path by passing or withholding an
// embedder.
func NewStrategy(embedder Embedder, logger zerolog.Logger) Strategy {
	if embedder == nil {
		return &LexicalOverlapFallback{}
	}
	return &EmbeddingSimilarity{embedder: embedder, logger: logger}
}

// EmbeddingSimilarity scores texts by cosine similarity of their embeddings.
type EmbeddingSimilarity struct {
	embedder Embedder
	logger   zerolog.Logger
}

// NewEmbeddingSimilarity creates an embedding-backed strategy.
func NewEmbeddingSimilarity(embedder Embedder, logger zerolog.Logger) *EmbeddingSimilarity {
	return &EmbeddingSimilarity{embedder: embedder, logger: logger}
}

// Name identifies the strategy in logs and diagnostics.
func (s *EmbeddingSimilarity) Name() string { return "embedding" }

// Score embeds both texts and returns cosine similarity scaled to [0, 100].
// Empty input scores 0; an embedding failure is logged and degraded to 0.
func (s *EmbeddingSimilarity) Score(ctx context.Context, a, b string) Score {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return Score{Value: 0.0}
	}

	vectors, err := s.embedder.EmbedTexts(ctx, []string{a, b})
	if err != nil || len(vectors) != 2 {
		s.logger.Warn().Err(err).Msg("embedding similarity failed, degrading to zero score")
		return Score{Value: 0.0, Degraded: true}
	}

	return Score{Value: clampScore(cosine32(vectors[0], vectors[1]) * 100.0)}
}

// LexicalOverlapFallback approximates semantic similarity with word-set
// Jaccard overlap when no embedding model is available. Results carry the
// Approximate flag so callers know this is not a true semantic score.
type LexicalOverlapFallback struct{}

// Name identifies the strategy in logs and diagnostics.
func (s *LexicalOverlapFallback) Name() string { return "lexical-overlap" }

// Score computes Jaccard similarity between the lower-cased,
// whitespace-tokenized word sets of the two texts, scaled to [0, 100].
func (s *LexicalOverlapFallback) Score(_ context.Context, a, b string) Score {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return Score{Value: 0.0, Approximate: true}
	}

	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return Score{Value: 0.0, Approximate: true}
	}

	intersection := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection

	return Score{
		Value:       clampScore(float64(intersection) / float64(union) * 100.0),
		Approximate: true,
	}
}

func wordSet(text string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func cosine32(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0.0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
