package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/scoring"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, `{
		"api_key": "test-key",
		"top_n": 5,
		"concurrency": 2,
		"fetch_timeout_seconds": 10,
		"extra_skills": ["terraform", "ansible"],
		"log_level": "debug"
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, 2, cfg.Concurrency)
	assert.Equal(t, 10, cfg.FetchTimeoutSeconds)
	assert.Equal(t, []string{"terraform", "ansible"}, cfg.ExtraSkills)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_NegativeValues(t *testing.T) {
	assert.Error(t, (&Config{TopN: -1}).Validate())
	assert.Error(t, (&Config{Concurrency: -1}).Validate())
	assert.Error(t, (&Config{FetchTimeoutSeconds: -1}).Validate())
}

func TestValidate_ZeroConfigIsValid(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
}

func TestValidate_WeightsMustSumToOne(t *testing.T) {
	cfg := &Config{SkillWeight: 0.5, LexicalWeight: 0.5, SemanticWeight: 0.5}
	assert.Error(t, cfg.Validate())

	cfg = &Config{SkillWeight: 0.5, LexicalWeight: 0.25, SemanticWeight: 0.25}
	assert.NoError(t, cfg.Validate())
}

func TestWeights_DefaultWhenUnset(t *testing.T) {
	assert.Equal(t, scoring.DefaultWeights, (&Config{}).Weights())
}

func TestWeights_Explicit(t *testing.T) {
	cfg := &Config{SkillWeight: 0.6, LexicalWeight: 0.2, SemanticWeight: 0.2}
	assert.Equal(t, scoring.Weights{Skill: 0.6, Lexical: 0.2, Semantic: 0.2}, cfg.Weights())
}

func TestMergeEnv_FillsCredentials(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://env")

	cfg := &Config{}
	cfg.MergeEnv()
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "postgres://env", cfg.DatabaseURL)
}

func TestMergeEnv_FileValuesWin(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg := &Config{APIKey: "file-key"}
	cfg.MergeEnv()
	assert.Equal(t, "file-key", cfg.APIKey)
}
