// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jonathan/seo-agent/internal/llm"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Model selection
	Provider    string  `json:"provider,omitempty"`    // "openai" or "gemini"
	Model       string  `json:"model,omitempty"`       // explicit model, overrides the tier defaults
	Convention  string  `json:"convention,omitempty"`  // "tool_call" or "free_text"
	Temperature float64 `json:"temperature,omitempty"` // sampling temperature (0-2)

	// Behavior
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // per-call timeout
	OutputDir      string `json:"output_dir,omitempty"`      // where artifacts are written
	KeywordCount   int    `json:"keyword_count,omitempty"`   // keywords to request per run

	// Credentials / endpoints
	APIKey      string `json:"api_key,omitempty"`      // provider API key; env vars usually supply this
	BaseURL     string `json:"base_url,omitempty"`     // OpenAI-compatible endpoint override
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL history store URL
}

// DefaultConfig returns the baseline configuration: OpenAI with the tool-call
// convention, default sampling temperature, artifacts in the working
// directory.
func DefaultConfig() Config {
	return Config{
		Provider:       string(llm.ProviderOpenAI),
		Convention:     string(llm.ConventionToolCall),
		Temperature:    llm.DefaultTemperature,
		TimeoutSeconds: 120,
		OutputDir:      ".",
		KeywordCount:   15,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns configuration drawn from the environment for the given
// provider. Unset variables leave their fields empty so later merges can
// fill them. OPENAI_MODEL and OPENAI_BASE_URL apply only when the provider
// is openai.
func FromEnv(provider string) Config {
	cfg := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	if raw := os.Getenv("TEMPERATURE"); raw != "" {
		if temp, err := strconv.ParseFloat(raw, 64); err == nil {
			cfg.Temperature = temp
		}
	}
	if llm.Provider(provider) == llm.ProviderOpenAI {
		cfg.Model = os.Getenv("OPENAI_MODEL")
		cfg.BaseURL = os.Getenv("OPENAI_BASE_URL")
	}
	return cfg
}

// APIKeyFromEnv returns the credential for a provider from its conventional
// environment variable.
func APIKeyFromEnv(provider string) string {
	if llm.Provider(provider) == llm.ProviderGemini {
		return os.Getenv("GEMINI_API_KEY")
	}
	return os.Getenv("OPENAI_API_KEY")
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	switch llm.Provider(c.Provider) {
	case "", llm.ProviderOpenAI, llm.ProviderGemini:
	default:
		return fmt.Errorf("config error: unsupported provider %q (valid providers: %s, %s)",
			c.Provider, llm.ProviderOpenAI, llm.ProviderGemini)
	}

	if c.Convention != "" {
		if _, err := llm.ParseConvention(c.Convention); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("config error: 'temperature' must be between 0 and 2")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.KeywordCount < 0 || c.KeywordCount > 50 {
		return fmt.Errorf("config error: 'keyword_count' must be between 0 and 50")
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. This is used to layer config sources: file over environment over
// baseline defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Convention == "" {
		result.Convention = defaults.Convention
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Numeric fields: use default if zero
	if result.Temperature == 0 {
		result.Temperature = defaults.Temperature
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.KeywordCount == 0 {
		result.KeywordCount = defaults.KeywordCount
	}

	return result
}

// LLMConfig converts the CLI configuration into a model client
// configuration: provider tier defaults, then the explicit model override
// and transport settings.
func (c *Config) LLMConfig() *llm.Config {
	base := llm.DefaultConfigFor(llm.Provider(c.Provider))

	if c.Model != "" {
		for _, tier := range []llm.ModelTier{llm.TierLite, llm.TierStandard, llm.TierAdvanced} {
			base = base.WithModel(tier, c.Model)
		}
	}

	base.BaseURL = c.BaseURL
	if c.TimeoutSeconds > 0 {
		base.Timeout = time.Duration(c.TimeoutSeconds) * time.Second
	}
	return base
}
