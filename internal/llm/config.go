// Package llm provides the Gemini client used for feedback generation and
// text embeddings.
package llm

// Config holds the model names used by the client.
type Config struct {
	// GenerationModel produces feedback text.
	GenerationModel string
	// EmbeddingModel produces dense vectors for semantic similarity.
	EmbeddingModel string
}

// DefaultConfig returns the default Gemini model configuration.
func DefaultConfig() *Config {
	return &Config{
		GenerationModel: "gemini-2.5-flash",
		EmbeddingModel:  "text-embedding-004",
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c *Config) withDefaults() *Config {
	out := *c
	defaults := DefaultConfig()
	if out.GenerationModel == "" {
		out.GenerationModel = defaults.GenerationModel
	}
	if out.EmbeddingModel == "" {
		out.EmbeddingModel = defaults.EmbeddingModel
	}
	return &out
}
