// Package article provides SEO article generation: prompt and schema
// construction, model invocation through either response convention, and the
// acceptance policy applied to extracted articles.
package article

import (
	"context"
	"encoding/json"

	"github.com/jonathan/seo-agent/internal/llm"
	"github.com/jonathan/seo-agent/internal/types"
)

// MaxOutputTokens is the requested output budget for article generation. The
// llm layer clamps it against the resolved model's context window.
const MaxOutputTokens = 4000

// Result is an accepted article together with its acceptance metadata.
type Result struct {
	Article           types.Article
	RealizedWordCount int
	// OverLength marks articles beyond 1.2x the requested word count.
	// Over-length results are accepted and surfaced as a warning.
	OverLength bool
}

// Generate runs the article stage end to end: build the prompt and schema,
// invoke the model once, extract the JSON payload, and apply the acceptance
// policy. No retries; a failure means the caller asks again from scratch.
func Generate(ctx context.Context, invoker llm.Invoker, req *types.ArticleRequest) (*Result, error) {
	payload, err := invoker.Invoke(ctx, llm.Request{
		Prompt:    BuildPrompt(req),
		Tier:      llm.TierStandard,
		Schema:    Schema(),
		MaxTokens: MaxOutputTokens,
	})
	if err != nil {
		return nil, &APICallError{Message: "failed to generate article", Cause: err}
	}

	raw, err := llm.ExtractJSONObject(payload)
	if err != nil {
		return nil, &ParseError{Message: "no JSON object in model response", Raw: payload, Cause: err}
	}

	var art types.Article
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, &ParseError{Message: "failed to parse article JSON", Raw: payload, Cause: err}
	}

	return Validate(&art, req.WordCount)
}
