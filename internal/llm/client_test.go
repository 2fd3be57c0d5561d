package llm

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), nil, "")
	assert.Error(t, err)
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := (&Config{}).withDefaults()
	assert.Equal(t, "gemini-2.5-flash", cfg.GenerationModel)
	assert.Equal(t, "text-embedding-004", cfg.EmbeddingModel)

	cfg = (&Config{GenerationModel: "custom-model"}).withDefaults()
	assert.Equal(t, "custom-model", cfg.GenerationModel)
	assert.Equal(t, "text-embedding-004", cfg.EmbeddingModel)
}

func TestCleanJSONBlock(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\": 1}\n```": `{"a": 1}`,
		"```\n{\"a\": 1}\n```":     `{"a": 1}`,
		`{"a": 1}`:                 `{"a": 1}`,
		"  {\"a\": 1}  ":           `{"a": 1}`,
	}
	for input, want := range cases {
		assert.Equal(t, want, cleanJSONBlock(input))
	}
}

func TestExtractTextFromResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []genai.Part{genai.Text("hello "), genai.Text("world")},
			},
		}},
	}

	text, err := extractTextFromResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
}

func TestExtractTextFromResponse_NoCandidates(t *testing.T) {
	_, err := extractTextFromResponse(&genai.GenerateContentResponse{})
	assert.Error(t, err)
}

func TestExtractTextFromResponse_NoContent(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: nil}},
	}
	_, err := extractTextFromResponse(resp)
	assert.Error(t, err)
}
