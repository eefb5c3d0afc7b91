package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIClient implements Client for the OpenAI chat completions API and any
// OpenAI-compatible endpoint reachable through a base URL override.
type OpenAIClient struct {
	client openai.Client
	config *Config
}

// NewOpenAIClient creates a new OpenAI client
func NewOpenAIClient(config *Config, apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	return &OpenAIClient{
		client: openai.NewClient(opts...),
		config: config,
	}, nil
}

// GenerateText submits the request and returns the model's message text.
func (c *OpenAIClient) GenerateText(ctx context.Context, req Request) (string, error) {
	params, modelName, err := c.completionParams(req)
	if err != nil {
		return "", err
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", mapOpenAIError(modelName, err)
	}

	if len(resp.Choices) == 0 {
		return "", &EmptyResponseError{Model: modelName}
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", &EmptyResponseError{Model: modelName}
	}
	return content, nil
}

// GenerateToolCall submits the request with its schema attached, forcing the
// model to answer through the named operation.
func (c *OpenAIClient) GenerateToolCall(ctx context.Context, req Request) (*ToolCall, error) {
	if req.Schema == nil {
		return nil, fmt.Errorf("tool-call request requires a schema")
	}

	params, modelName, err := c.completionParams(req)
	if err != nil {
		return nil, err
	}

	params.Tools = []openai.ChatCompletionToolUnionParam{
		openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
			Name:        req.Schema.Name,
			Description: openai.String(req.Schema.Description),
			Parameters:  openai.FunctionParameters(req.Schema.FunctionParameters()),
		}),
	}
	params.ToolChoice = openai.ChatCompletionToolChoiceOptionUnionParam{
		OfFunctionToolChoice: &openai.ChatCompletionNamedToolChoiceParam{
			Function: openai.ChatCompletionNamedToolChoiceFunctionParam{
				Name: req.Schema.Name,
			},
		},
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, mapOpenAIError(modelName, err)
	}

	if len(resp.Choices) == 0 || len(resp.Choices[0].Message.ToolCalls) == 0 {
		return nil, &EmptyResponseError{Model: modelName}
	}

	call := resp.Choices[0].Message.ToolCalls[0]
	return &ToolCall{
		Name: call.Function.Name,
		Args: []byte(call.Function.Arguments),
	}, nil
}

// GetModel returns the model name for a tier
func (c *OpenAIClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client. The OpenAI client is a
// stateless HTTP wrapper, so there is nothing to tear down.
func (c *OpenAIClient) Close() error {
	return nil
}

// completionParams builds the shared chat completion parameters for a request.
func (c *OpenAIClient) completionParams(req Request) (openai.ChatCompletionNewParams, string, error) {
	modelName := c.config.GetModel(req.Tier)
	if modelName == "" {
		return openai.ChatCompletionNewParams{}, "", fmt.Errorf("no model configured for tier %s", req.Tier)
	}

	var msgs []openai.ChatCompletionMessageParamUnion
	if req.System != "" {
		msgs = append(msgs, openai.SystemMessage(req.System))
	}
	msgs = append(msgs, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(modelName),
		Messages:    msgs,
		Temperature: openai.Float(req.temperature()),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(MaxOutputTokens(modelName, req.MaxTokens)))
	}
	return params, modelName, nil
}

// callContext applies the configured per-call timeout.
func (c *OpenAIClient) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.config.Timeout > 0 {
		return context.WithTimeout(ctx, c.config.Timeout)
	}
	return ctx, func() {}
}

// mapOpenAIError converts provider failures into the transport taxonomy,
// distinguishing authentication and rate-limit rejections by status code.
func mapOpenAIError(modelName string, err error) error {
	if isDeadline(err) {
		return timeoutError(modelName, err)
	}

	var apierr *openai.Error
	if errors.As(err, &apierr) {
		return &TransportError{
			Kind:    classifyStatus(apierr.StatusCode),
			Message: fmt.Sprintf("OpenAI call to %s failed", modelName),
			Cause:   err,
		}
	}

	return &TransportError{
		Kind:    TransportKindAPI,
		Message: fmt.Sprintf("OpenAI call to %s failed", modelName),
		Cause:   err,
	}
}
