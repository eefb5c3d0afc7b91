// Package keywords provides SEO keyword set generation: prompt and schema
// construction, model invocation through either response convention, and
// extraction of the returned keyword groups.
package keywords

import (
	"context"
	"encoding/json"

	"github.com/jonathan/seo-agent/internal/llm"
	"github.com/jonathan/seo-agent/internal/types"
)

// MaxOutputTokens is the requested output budget for keyword generation.
const MaxOutputTokens = 1000

// Result is an extracted keyword set. Beyond what the schema guarantees in
// the tool-calling path there is no required-field policy for keywords.
type Result struct {
	Set types.KeywordSet
}

// Generate runs the keyword stage end to end: build the prompt and schema,
// invoke the model once on the lite tier, and extract the keyword set.
func Generate(ctx context.Context, invoker llm.Invoker, req *types.KeywordRequest) (*Result, error) {
	payload, err := invoker.Invoke(ctx, llm.Request{
		System:    SystemPrompt(),
		Prompt:    BuildPrompt(req),
		Tier:      llm.TierLite,
		Schema:    Schema(req),
		MaxTokens: MaxOutputTokens,
	})
	if err != nil {
		return nil, &APICallError{Message: "failed to generate keywords", Cause: err}
	}

	raw, err := llm.ExtractJSONObject(payload)
	if err != nil {
		return nil, &ParseError{Message: "no JSON object in model response", Raw: payload, Cause: err}
	}

	var set types.KeywordSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, &ParseError{Message: "failed to parse keyword JSON", Raw: payload, Cause: err}
	}

	return &Result{Set: set}, nil
}
