package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient implements Client for testing
type mockClient struct {
	GenerateTextFunc     func(ctx context.Context, req Request) (string, error)
	GenerateToolCallFunc func(ctx context.Context, req Request) (*ToolCall, error)
	GetModelFunc         func(tier ModelTier) string
	CloseFunc            func() error
}

func (m *mockClient) GenerateText(ctx context.Context, req Request) (string, error) {
	if m.GenerateTextFunc != nil {
		return m.GenerateTextFunc(ctx, req)
	}
	return "", nil
}

func (m *mockClient) GenerateToolCall(ctx context.Context, req Request) (*ToolCall, error) {
	if m.GenerateToolCallFunc != nil {
		return m.GenerateToolCallFunc(ctx, req)
	}
	return &ToolCall{Name: "mock_tool", Args: json.RawMessage(`{}`)}, nil
}

func (m *mockClient) GetModel(tier ModelTier) string {
	if m.GetModelFunc != nil {
		return m.GetModelFunc(tier)
	}
	return "mock-model"
}

func (m *mockClient) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

func TestParseConvention(t *testing.T) {
	tests := []struct {
		input   string
		want    Convention
		wantErr bool
	}{
		{input: "", want: ConventionToolCall},
		{input: "tool_call", want: ConventionToolCall},
		{input: "free_text", want: ConventionFreeText},
		{input: "  TOOL_CALL  ", want: ConventionToolCall},
		{input: "Free_Text", want: ConventionFreeText},
		{input: "json_mode", wantErr: true},
		{input: "toolcall", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseConvention(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "valid conventions")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewInvoker_UnknownConvention(t *testing.T) {
	_, err := NewInvoker(&mockClient{}, Convention("grpc"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported convention")
}

func TestFreeTextInvoker_AppendsSchemaInstructions(t *testing.T) {
	var seenPrompt string
	client := &mockClient{
		GenerateTextFunc: func(_ context.Context, req Request) (string, error) {
			seenPrompt = req.Prompt
			return `{"title": "ok"}`, nil
		},
	}

	invoker, err := NewInvoker(client, ConventionFreeText)
	require.NoError(t, err)

	payload, err := invoker.Invoke(context.Background(), Request{
		Prompt: "Summarize the topic.",
		Schema: testSchema(),
	})

	require.NoError(t, err)
	assert.Equal(t, `{"title": "ok"}`, payload)
	assert.Contains(t, seenPrompt, "Summarize the topic.")
	assert.Contains(t, seenPrompt, "Return ONLY valid JSON matching this exact structure:")
	assert.Contains(t, seenPrompt, `"title"`)
}

func TestFreeTextInvoker_NoSchema(t *testing.T) {
	var seenPrompt string
	client := &mockClient{
		GenerateTextFunc: func(_ context.Context, req Request) (string, error) {
			seenPrompt = req.Prompt
			return "plain text answer", nil
		},
	}

	invoker, err := NewInvoker(client, ConventionFreeText)
	require.NoError(t, err)

	payload, err := invoker.Invoke(context.Background(), Request{Prompt: "Say hi."})

	require.NoError(t, err)
	assert.Equal(t, "plain text answer", payload)
	assert.Equal(t, "Say hi.", seenPrompt)
}

func TestToolCallInvoker_ReturnsArguments(t *testing.T) {
	client := &mockClient{
		GenerateToolCallFunc: func(_ context.Context, req Request) (*ToolCall, error) {
			return &ToolCall{
				Name: req.Schema.Name,
				Args: json.RawMessage(`{"title": "Generated"}`),
			}, nil
		},
	}

	invoker, err := NewInvoker(client, ConventionToolCall)
	require.NoError(t, err)

	payload, err := invoker.Invoke(context.Background(), Request{
		Prompt: "Summarize the topic.",
		Schema: testSchema(),
	})

	require.NoError(t, err)
	assert.Equal(t, `{"title": "Generated"}`, payload)
}

func TestToolCallInvoker_UnexpectedTool(t *testing.T) {
	client := &mockClient{
		GenerateToolCallFunc: func(_ context.Context, _ Request) (*ToolCall, error) {
			return &ToolCall{Name: "something_else", Args: json.RawMessage(`{}`)}, nil
		},
	}

	invoker, err := NewInvoker(client, ConventionToolCall)
	require.NoError(t, err)

	_, err = invoker.Invoke(context.Background(), Request{
		Prompt: "Summarize the topic.",
		Schema: testSchema(),
	})

	var toolErr *UnexpectedToolCallError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "something_else", toolErr.Got)
	assert.Equal(t, "generate_summary", toolErr.Want)
}

func TestToolCallInvoker_RequiresSchema(t *testing.T) {
	invoker, err := NewInvoker(&mockClient{}, ConventionToolCall)
	require.NoError(t, err)

	_, err = invoker.Invoke(context.Background(), Request{Prompt: "Summarize."})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a schema")
}

func TestToolCallInvoker_PropagatesClientError(t *testing.T) {
	transportErr := &TransportError{Kind: TransportKindRateLimit, Message: "slow down"}
	client := &mockClient{
		GenerateToolCallFunc: func(_ context.Context, _ Request) (*ToolCall, error) {
			return nil, transportErr
		},
	}

	invoker, err := NewInvoker(client, ConventionToolCall)
	require.NoError(t, err)

	_, err = invoker.Invoke(context.Background(), Request{Schema: testSchema()})
	assert.True(t, IsRateLimitError(err))
}

func TestRequest_TemperatureDefault(t *testing.T) {
	assert.InDelta(t, DefaultTemperature, Request{}.temperature(), 0.001)
	assert.InDelta(t, 0.2, Request{Temperature: 0.2}.temperature(), 0.001)
}
