package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

// Configured reports whether an external classifier is set up at all.
// An empty provider means keyword-only mode.
func (c LLMConfig) Configured() bool {
	return c.Provider != ""
}

type AnalysisConfig struct {
	SimilarityThreshold float64 `toml:"similarity_threshold"`
	MaxFeatures         int     `toml:"max_features"`
	StopWords           string  `toml:"stop_words"`
	NGramMin            int     `toml:"ngram_min"`
	NGramMax            int     `toml:"ngram_max"`
	MinDF               int     `toml:"min_df"`
	MaxDF               float64 `toml:"max_df"`
	AITimeoutSeconds    int     `toml:"ai_timeout_seconds"`
}

type TaxonomyEntry struct {
	Domain   string   `toml:"domain"`
	Keywords []string `toml:"keywords"`
}

type Config struct {
	LLM      LLMConfig       `toml:"llm"`
	Analysis AnalysisConfig  `toml:"analysis"`
	Taxonomy []TaxonomyEntry `toml:"taxonomy"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			SimilarityThreshold: 0.3,
			MaxFeatures:         1000,
			StopWords:           "english",
			NGramMin:            1,
			NGramMax:            2,
			MinDF:               1,
			MaxDF:               0.95,
			AITimeoutSeconds:    30,
		},
	}
}

// Load reads a TOML config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides configuration from environment variables if present.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("SIMILARITY_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Analysis.SimilarityThreshold = f
		}
	}
}

// Validate fails fast on configuration values that would make the engines
// silently misbehave.
func (a AnalysisConfig) Validate() error {
	if a.SimilarityThreshold < 0 || a.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity_threshold must be in [0,1], got %v", a.SimilarityThreshold)
	}
	if a.MaxFeatures <= 0 {
		return fmt.Errorf("max_features must be positive, got %d", a.MaxFeatures)
	}
	if a.StopWords != "english" && a.StopWords != "none" {
		return fmt.Errorf("stop_words must be \"english\" or \"none\", got %q", a.StopWords)
	}
	if a.NGramMin < 1 || a.NGramMax < a.NGramMin {
		return fmt.Errorf("invalid ngram range [%d,%d]", a.NGramMin, a.NGramMax)
	}
	if a.MinDF < 1 {
		return fmt.Errorf("min_df must be at least 1, got %d", a.MinDF)
	}
	if a.MaxDF <= 0 || a.MaxDF > 1 {
		return fmt.Errorf("max_df must be in (0,1], got %v", a.MaxDF)
	}
	if a.AITimeoutSeconds < 0 {
		return fmt.Errorf("ai_timeout_seconds must not be negative, got %d", a.AITimeoutSeconds)
	}
	return nil
}
