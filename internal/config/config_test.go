package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0.3, cfg.Analysis.SimilarityThreshold)
	assert.Equal(t, 1000, cfg.Analysis.MaxFeatures)
	assert.Equal(t, 1, cfg.Analysis.NGramMin)
	assert.Equal(t, 2, cfg.Analysis.NGramMax)
	assert.Equal(t, 1, cfg.Analysis.MinDF)
	assert.Equal(t, 0.95, cfg.Analysis.MaxDF)
	assert.False(t, cfg.LLM.Configured())
	assert.NoError(t, cfg.Analysis.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[llm]
provider = "gemini"
model = "gemini-pro"

[analysis]
similarity_threshold = 0.5

[[taxonomy]]
domain = "Robotics"
keywords = ["robot", "actuator"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.True(t, cfg.LLM.Configured())
	assert.Equal(t, 0.5, cfg.Analysis.SimilarityThreshold)
	// Unset fields keep their defaults.
	assert.Equal(t, 1000, cfg.Analysis.MaxFeatures)
	require.Len(t, cfg.Taxonomy, 1)
	assert.Equal(t, "Robotics", cfg.Taxonomy[0].Domain)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("does/not/exist.toml")
	assert.Error(t, err)
}

func TestValidate_Failures(t *testing.T) {
	base := Default().Analysis

	cfg := base
	cfg.SimilarityThreshold = 1.5
	assert.Error(t, cfg.Validate())

	cfg = base
	cfg.SimilarityThreshold = -0.1
	assert.Error(t, cfg.Validate())

	cfg = base
	cfg.MaxFeatures = 0
	assert.Error(t, cfg.Validate())

	cfg = base
	cfg.NGramMin = 2
	cfg.NGramMax = 1
	assert.Error(t, cfg.Validate())

	cfg = base
	cfg.MinDF = 0
	assert.Error(t, cfg.Validate())

	cfg = base
	cfg.MaxDF = 1.2
	assert.Error(t, cfg.Validate())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("LLM_API_KEY", "sk-test")
	t.Setenv("SIMILARITY_THRESHOLD", "0.4")

	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, 0.4, cfg.Analysis.SimilarityThreshold)
}
