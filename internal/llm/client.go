package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// Request carries one fully built model invocation: the prompt, optional
// system instruction, the tool schema when the tool-call convention is in
// use, and sampling parameters.
type Request struct {
	// System is the system/role instruction; empty means none.
	System string
	// Prompt is the built task prompt.
	Prompt string
	// Tier selects the model via the client configuration.
	Tier ModelTier
	// Schema is the structured operation for tool-call requests; ignored by
	// plain text generation.
	Schema *ToolSchema
	// Temperature is the sampling temperature; zero means DefaultTemperature.
	Temperature float64
	// MaxTokens is the requested output budget before clamping against the
	// model's context window; zero means no explicit budget.
	MaxTokens int
}

// temperature returns the effective sampling temperature.
func (r Request) temperature() float64 {
	if r.Temperature == 0 {
		return DefaultTemperature
	}
	return r.Temperature
}

// ToolCall is a structured call returned by a model: the operation name it
// invoked and the argument payload as JSON.
type ToolCall struct {
	Name string
	Args json.RawMessage
}

// Client is an abstraction over LLM providers
type Client interface {
	// GenerateText submits the request and returns the model's message text
	GenerateText(ctx context.Context, req Request) (string, error)
	// GenerateToolCall submits the request with its schema attached, forcing
	// the model to answer through the named operation, and returns the first
	// structured call
	GenerateToolCall(ctx context.Context, req Request) (*ToolCall, error)
	// GetModel returns the underlying provider model for a tier (for direct access if needed)
	GetModel(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderOpenAI:
		return NewOpenAIClient(config, apiKey)
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return nil, fmt.Errorf("unsupported provider %q", config.Provider)
	}
}
