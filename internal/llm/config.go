// Package llm provides centralized LLM configuration and client abstractions.
// This package enables easy switching between providers, model tiers, and
// response conventions.
package llm

import "time"

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: keyword generation, classification
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: long-form article generation
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning tasks
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider
	ProviderOpenAI Provider = "openai"
)

// DefaultTemperature is the sampling temperature used when a request leaves
// it unset.
const DefaultTemperature = 0.7

// Token budget constants for output clamping. Requested output tokens are
// clamped to [MinOutputTokens, context_limit - ReservedOverheadTokens].
const (
	// ReservedOverheadTokens is the margin held back from the context window
	// for the prompt and provider bookkeeping.
	ReservedOverheadTokens = 1500
	// MinOutputTokens is the floor below which output budgets are never clamped.
	MinOutputTokens = 256
	// DefaultContextLimit is the conservative window assumed for unknown models.
	DefaultContextLimit = 8192
)

// contextLimits maps known model identifiers to context window sizes in tokens.
var contextLimits = map[string]int{
	"gpt-3.5-turbo":         16385,
	"gpt-4":                 8192,
	"gpt-4-turbo":           128000,
	"gpt-4o":                128000,
	"gpt-4o-mini":           128000,
	"gemini-2.5-flash-lite": 1048576,
	"gemini-2.5-flash":      1048576,
	"gemini-2.5-pro":        1048576,
}

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
	// BaseURL overrides the provider endpoint (OpenAI-compatible servers only).
	BaseURL string
	// Timeout bounds each model call; zero means the transport default.
	// Expiry surfaces as a timeout-kind TransportError.
	Timeout time.Duration
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultConfigFor returns the default configuration for a provider.
func DefaultConfigFor(provider Provider) *Config {
	if provider == ProviderOpenAI {
		return DefaultOpenAIConfig()
	}
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// DefaultOpenAIConfig returns the default OpenAI configuration. Keyword
// generation runs on the lite tier, article generation on standard.
func DefaultOpenAIConfig() *Config {
	return &Config{
		Provider: ProviderOpenAI,
		Models: map[ModelTier]string{
			TierLite:     "gpt-3.5-turbo",
			TierStandard: "gpt-4",
			TierAdvanced: "gpt-4o",
		},
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return "" // No model configured
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider: c.Provider,
		Models:   make(map[ModelTier]string),
		BaseURL:  c.BaseURL,
		Timeout:  c.Timeout,
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}

// ContextLimit returns the context window size for a model, falling back to
// a conservative default for unknown models.
func ContextLimit(model string) int {
	if limit, ok := contextLimits[model]; ok {
		return limit
	}
	return DefaultContextLimit
}

// MaxOutputTokens clamps a requested output budget to what the model can
// actually emit: available = context_limit - reserved_overhead, bounded below
// by MinOutputTokens.
func MaxOutputTokens(model string, requested int) int {
	available := ContextLimit(model) - ReservedOverheadTokens
	if available < MinOutputTokens {
		available = MinOutputTokens
	}
	if requested < MinOutputTokens {
		return MinOutputTokens
	}
	if requested > available {
		return available
	}
	return requested
}
