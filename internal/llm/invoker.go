package llm

import (
	"context"
	"fmt"
	"strings"
)

// Convention selects how structured output is requested from the model.
type Convention string

const (
	// ConventionToolCall asks the model to answer through a declared
	// function, so the arguments arrive as JSON without surrounding prose.
	ConventionToolCall Convention = "tool_call"
	// ConventionFreeText asks for a plain completion and relies on the
	// prompt to describe the expected JSON shape.
	ConventionFreeText Convention = "free_text"
)

// ParseConvention normalizes a user-supplied convention name. An empty value
// selects tool calling.
func ParseConvention(value string) (Convention, error) {
	switch Convention(strings.ToLower(strings.TrimSpace(value))) {
	case "", ConventionToolCall:
		return ConventionToolCall, nil
	case ConventionFreeText:
		return ConventionFreeText, nil
	default:
		return "", fmt.Errorf("invalid convention %q (valid conventions: tool_call, free_text)", value)
	}
}

// Invoker hides the difference between the two response conventions behind a
// single call that yields the model's JSON payload as text.
type Invoker interface {
	Invoke(ctx context.Context, req Request) (string, error)
}

// NewInvoker returns the invoker for the given convention.
func NewInvoker(client Client, convention Convention) (Invoker, error) {
	switch convention {
	case ConventionFreeText:
		return &freeTextInvoker{client: client}, nil
	case ConventionToolCall:
		return &toolCallInvoker{client: client}, nil
	default:
		return nil, fmt.Errorf("unsupported convention %q", convention)
	}
}

type freeTextInvoker struct {
	client Client
}

func (i *freeTextInvoker) Invoke(ctx context.Context, req Request) (string, error) {
	// The schema still shapes the answer here, only inline instead of as a
	// declared tool.
	if req.Schema != nil {
		req.Prompt = req.Prompt + "\n\n" + req.Schema.PromptInstructions()
	}
	return i.client.GenerateText(ctx, req)
}

type toolCallInvoker struct {
	client Client
}

func (i *toolCallInvoker) Invoke(ctx context.Context, req Request) (string, error) {
	if req.Schema == nil {
		return "", fmt.Errorf("tool-call invocation requires a schema")
	}

	call, err := i.client.GenerateToolCall(ctx, req)
	if err != nil {
		return "", err
	}
	if call.Name != req.Schema.Name {
		return "", &UnexpectedToolCallError{Got: call.Name, Want: req.Schema.Name}
	}
	return string(call.Args), nil
}
