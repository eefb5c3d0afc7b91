package keywords

import (
	"context"
	"testing"

	"github.com/jonathan/seo-agent/internal/llm"
	"github.com/jonathan/seo-agent/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockInvoker implements llm.Invoker for testing
type mockInvoker struct {
	InvokeFunc func(ctx context.Context, req llm.Request) (string, error)
}

func (m *mockInvoker) Invoke(ctx context.Context, req llm.Request) (string, error) {
	if m.InvokeFunc != nil {
		return m.InvokeFunc(ctx, req)
	}
	return "{}", nil
}

const keywordPayload = `{
  "topic": "home brewing",
  "total_keywords": 6,
  "keywords": {
    "primary": ["home brewing", "homebrew beer"],
    "long_tail": ["how to start home brewing on a budget"],
    "question": ["what equipment do I need for home brewing"],
    "local": ["home brewing supplies near me"],
    "related": ["fermentation", "craft beer"]
  },
  "seo_insights": {
    "search_volume_estimate": "medium",
    "competition_level": "low",
    "recommended_focus": "home brewing"
  }
}`

func TestGenerate_RequestShape(t *testing.T) {
	var seen llm.Request
	invoker := &mockInvoker{
		InvokeFunc: func(_ context.Context, req llm.Request) (string, error) {
			seen = req
			return keywordPayload, nil
		},
	}

	_, err := Generate(context.Background(), invoker, testRequest())
	require.NoError(t, err)

	assert.Equal(t, llm.TierLite, seen.Tier)
	assert.Equal(t, MaxOutputTokens, seen.MaxTokens)
	assert.Contains(t, seen.System, "SEO specialist")
	require.NotNil(t, seen.Schema)
	assert.Equal(t, ToolName, seen.Schema.Name)
	assert.Contains(t, seen.Prompt, "home brewing")
}

func TestGenerate_Success(t *testing.T) {
	invoker := &mockInvoker{
		InvokeFunc: func(_ context.Context, _ llm.Request) (string, error) {
			return keywordPayload, nil
		},
	}

	result, err := Generate(context.Background(), invoker, testRequest())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "home brewing", result.Set.Topic)
	assert.Equal(t, 6, result.Set.TotalKeywords)
	assert.Equal(t, []string{"home brewing", "homebrew beer"}, result.Set.Keywords[types.KeywordTypePrimary])
	assert.Equal(t, 7, result.Set.CountKeywords())

	first, ok := result.Set.FirstPrimary()
	require.True(t, ok)
	assert.Equal(t, "home brewing", first)

	require.NotNil(t, result.Set.SEOInsights)
	assert.Equal(t, "medium", result.Set.SEOInsights.SearchVolumeEstimate)
}

func TestGenerate_ProseWrappedPayload(t *testing.T) {
	// Free-text responses often carry prose around the JSON block.
	payload := "Here are your keywords for home brewing:\n\n" + keywordPayload +
		"\n\nGood luck with the article!"
	invoker := &mockInvoker{
		InvokeFunc: func(_ context.Context, _ llm.Request) (string, error) {
			return payload, nil
		},
	}

	result, err := Generate(context.Background(), invoker, testRequest())
	require.NoError(t, err)

	assert.Equal(t, "home brewing", result.Set.Topic)
	assert.Len(t, result.Set.Flatten(), 7)
}

func TestGenerate_ParseError(t *testing.T) {
	raw := "I could not generate keywords for that topic."
	invoker := &mockInvoker{
		InvokeFunc: func(_ context.Context, _ llm.Request) (string, error) {
			return raw, nil
		},
	}

	result, err := Generate(context.Background(), invoker, testRequest())
	assert.Nil(t, result)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, raw, parseErr.Raw)
}

func TestGenerate_APIError(t *testing.T) {
	invoker := &mockInvoker{
		InvokeFunc: func(_ context.Context, _ llm.Request) (string, error) {
			return "", &llm.TransportError{Kind: llm.TransportKindAuth, Message: "bad key"}
		},
	}

	result, err := Generate(context.Background(), invoker, testRequest())
	assert.Nil(t, result)

	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, llm.IsAuthError(err))
}

func TestGenerate_NoPrimaryGroup(t *testing.T) {
	invoker := &mockInvoker{
		InvokeFunc: func(_ context.Context, _ llm.Request) (string, error) {
			return `{"topic": "home brewing", "total_keywords": 1, "keywords": {"related": ["craft beer"]}}`, nil
		},
	}

	result, err := Generate(context.Background(), invoker, testRequest())
	require.NoError(t, err)

	_, ok := result.Set.FirstPrimary()
	assert.False(t, ok)
	assert.Nil(t, result.Set.SEOInsights)
}
