package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// GenerateText submits the request and returns the model's message text.
func (c *GeminiClient) GenerateText(ctx context.Context, req Request) (string, error) {
	model, modelName, err := c.generativeModel(req)
	if err != nil {
		return "", err
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", mapGeminiError(modelName, err)
	}

	return extractTextFromResponse(modelName, resp)
}

// GenerateToolCall submits the request with its schema attached, forcing the
// model to answer through the named operation.
func (c *GeminiClient) GenerateToolCall(ctx context.Context, req Request) (*ToolCall, error) {
	if req.Schema == nil {
		return nil, fmt.Errorf("tool-call request requires a schema")
	}

	model, modelName, err := c.generativeModel(req)
	if err != nil {
		return nil, err
	}

	model.Tools = []*genai.Tool{
		{FunctionDeclarations: []*genai.FunctionDeclaration{req.Schema.GeminiDeclaration()}},
	}
	model.ToolConfig = &genai.ToolConfig{
		FunctionCallingConfig: &genai.FunctionCallingConfig{
			Mode:                 genai.FunctionCallingAny,
			AllowedFunctionNames: []string{req.Schema.Name},
		},
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return nil, mapGeminiError(modelName, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, &EmptyResponseError{Model: modelName}
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		fc, ok := part.(genai.FunctionCall)
		if !ok {
			continue
		}
		args, err := json.Marshal(fc.Args)
		if err != nil {
			return nil, fmt.Errorf("failed to encode function call arguments: %w", err)
		}
		return &ToolCall{Name: fc.Name, Args: args}, nil
	}

	return nil, &EmptyResponseError{Model: modelName}
}

// GetModel returns the model name for a tier
func (c *GeminiClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// generativeModel resolves and configures the tier's model for one request.
func (c *GeminiClient) generativeModel(req Request) (*genai.GenerativeModel, string, error) {
	modelName := c.config.GetModel(req.Tier)
	if modelName == "" {
		return nil, "", fmt.Errorf("no model configured for tier %s", req.Tier)
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(float32(req.temperature()))
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(MaxOutputTokens(modelName, req.MaxTokens)))
	}
	if req.System != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	}
	return model, modelName, nil
}

// callContext applies the configured per-call timeout.
func (c *GeminiClient) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.config.Timeout > 0 {
		return context.WithTimeout(ctx, c.config.Timeout)
	}
	return ctx, func() {}
}

// extractTextFromResponse extracts text from Gemini API response
func extractTextFromResponse(modelName string, resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &EmptyResponseError{Model: modelName}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &EmptyResponseError{Model: modelName}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", &EmptyResponseError{Model: modelName}
	}

	return strings.Join(parts, ""), nil
}

// mapGeminiError converts provider failures into the transport taxonomy.
// HTTP-transported calls surface googleapi errors with a status code; other
// failures stay generic API-kind transport errors.
func mapGeminiError(modelName string, err error) error {
	if isDeadline(err) {
		return timeoutError(modelName, err)
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &TransportError{
			Kind:    classifyStatus(gerr.Code),
			Message: fmt.Sprintf("Gemini call to %s failed", modelName),
			Cause:   err,
		}
	}

	return &TransportError{
		Kind:    TransportKindAPI,
		Message: fmt.Sprintf("Gemini call to %s failed", modelName),
		Cause:   err,
	}
}
