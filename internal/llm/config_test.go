package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))
}

func TestGetModel_Fallback(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite: "fallback-model",
		},
	}

	// Unknown tier should fallback to TierStandard, then TierLite
	assert.Equal(t, "fallback-model", config.GetModel("unknown"))
}

func TestGetModel_EmptyConfig(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{},
	}

	// Empty config should return empty string
	assert.Equal(t, "", config.GetModel(TierAdvanced))
}

func TestWithModel(t *testing.T) {
	config := DefaultConfig()
	newConfig := config.WithModel(TierAdvanced, "custom-model")

	// Original should be unchanged
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))

	// New config should have custom model
	assert.Equal(t, "custom-model", newConfig.GetModel(TierAdvanced))

	// Other tiers should be copied
	assert.Equal(t, "gemini-2.5-flash-lite", newConfig.GetModel(TierLite))
}

func TestModelTierConstants(t *testing.T) {
	assert.Equal(t, ModelTier("lite"), TierLite)
	assert.Equal(t, ModelTier("standard"), TierStandard)
	assert.Equal(t, ModelTier("advanced"), TierAdvanced)
}

func TestProviderConstants(t *testing.T) {
	assert.Equal(t, Provider("gemini"), ProviderGemini)
	assert.Equal(t, Provider("openai"), ProviderOpenAI)
}

func TestDefaultOpenAIConfig(t *testing.T) {
	config := DefaultOpenAIConfig()

	assert.Equal(t, ProviderOpenAI, config.Provider)
	assert.Equal(t, "gpt-3.5-turbo", config.GetModel(TierLite))
	assert.Equal(t, "gpt-4", config.GetModel(TierStandard))
	assert.Equal(t, "gpt-4o", config.GetModel(TierAdvanced))
}

func TestDefaultConfigFor(t *testing.T) {
	assert.Equal(t, ProviderOpenAI, DefaultConfigFor(ProviderOpenAI).Provider)
	assert.Equal(t, ProviderGemini, DefaultConfigFor(ProviderGemini).Provider)

	// Unknown providers fall back to the default provider.
	assert.Equal(t, ProviderGemini, DefaultConfigFor("unknown").Provider)
}

func TestWithModel_PreservesTransportSettings(t *testing.T) {
	config := &Config{
		Provider: ProviderOpenAI,
		Models:   map[ModelTier]string{TierLite: "gpt-3.5-turbo"},
		BaseURL:  "http://localhost:8080/v1",
		Timeout:  30 * time.Second,
	}

	newConfig := config.WithModel(TierStandard, "gpt-4")

	assert.Equal(t, "http://localhost:8080/v1", newConfig.BaseURL)
	assert.Equal(t, 30*time.Second, newConfig.Timeout)
	assert.Equal(t, "gpt-4", newConfig.GetModel(TierStandard))
	assert.Equal(t, "gpt-3.5-turbo", newConfig.GetModel(TierLite))
}

func TestContextLimit(t *testing.T) {
	assert.Equal(t, 16385, ContextLimit("gpt-3.5-turbo"))
	assert.Equal(t, 8192, ContextLimit("gpt-4"))
	assert.Equal(t, 1048576, ContextLimit("gemini-2.5-flash"))

	// Unknown models get the conservative default.
	assert.Equal(t, DefaultContextLimit, ContextLimit("some-future-model"))
}

func TestMaxOutputTokens(t *testing.T) {
	tests := []struct {
		name      string
		model     string
		requested int
		want      int
	}{
		{
			name:      "within budget",
			model:     "gpt-3.5-turbo",
			requested: 4000,
			want:      4000,
		},
		{
			name:      "clamped to available window",
			model:     "gpt-4",
			requested: 8000,
			want:      8192 - ReservedOverheadTokens,
		},
		{
			name:      "raised to minimum floor",
			model:     "gpt-4",
			requested: 10,
			want:      MinOutputTokens,
		},
		{
			name:      "unknown model uses default window",
			model:     "some-future-model",
			requested: 100000,
			want:      DefaultContextLimit - ReservedOverheadTokens,
		},
		{
			name:      "huge window passes request through",
			model:     "gemini-2.5-flash",
			requested: 100000,
			want:      100000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxOutputTokens(tt.model, tt.requested))
		})
	}
}
