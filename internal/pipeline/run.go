// Package pipeline provides the high-level orchestration for keyword and
// article generation: keyword set first, then the article targeting the best
// primary keyword, with optional history persistence.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/jonathan/seo-agent/internal/article"
	"github.com/jonathan/seo-agent/internal/artifacts"
	"github.com/jonathan/seo-agent/internal/db"
	"github.com/jonathan/seo-agent/internal/keywords"
	"github.com/jonathan/seo-agent/internal/llm"
	"github.com/jonathan/seo-agent/internal/types"
)

// ClientFactory constructs the model client for a run. Tests inject a
// factory to keep runs offline; the default is llm.NewClient.
type ClientFactory func(ctx context.Context, config *llm.Config, apiKey string) (llm.Client, error)

// Options holds configuration for a full generation run.
type Options struct {
	KeywordRequest *types.KeywordRequest
	ArticleRequest *types.ArticleRequest

	APIKey     string
	LLMConfig  *llm.Config
	Convention llm.Convention

	// DatabaseURL enables the Postgres history store when non-empty.
	// Connection failures degrade to a warning, never an error.
	DatabaseURL string

	// Out receives step progress output. Defaults to io.Discard.
	Out io.Writer

	// Factory overrides model client construction.
	Factory ClientFactory
}

// Outcome carries the results of a completed generation run.
type Outcome struct {
	// RunID identifies the history record; uuid.Nil when no store was
	// configured or the connection failed.
	RunID    uuid.UUID
	Keywords *keywords.Result
	Article  *article.Result
	Warnings []string
}

// Run executes the full generation pipeline. All options are checked before
// any client is constructed, so a misconfigured run never reaches the
// network.
func Run(ctx context.Context, opts Options) (*Outcome, error) {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	convention, err := validateOptions(&opts)
	if err != nil {
		return nil, err
	}

	factory := opts.Factory
	if factory == nil {
		factory = llm.NewClient
	}

	client, err := factory(ctx, opts.LLMConfig, opts.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct model client: %w", err)
	}
	defer func() { _ = client.Close() }()

	invoker, err := llm.NewInvoker(client, convention)
	if err != nil {
		return nil, &ConfigurationError{Message: "invalid convention", Cause: err}
	}

	database := connectHistory(ctx, opts.DatabaseURL, out)
	if database != nil {
		defer database.Close()
	}

	var runID uuid.UUID
	if database != nil {
		cfg := opts.LLMConfig
		if cfg == nil {
			cfg = llm.DefaultConfig()
		}
		runID, err = database.CreateRun(ctx,
			opts.KeywordRequest.Topic,
			string(opts.ArticleRequest.ArticleType),
			cfg.GetModel(llm.TierStandard),
		)
		if err != nil {
			fmt.Fprintf(out, "⚠️ Warning: failed to record run: %v\n", err)
			runID = uuid.Nil
		}
	}

	outcome, err := generate(ctx, invoker, &opts, out)

	if database != nil && runID != uuid.Nil {
		if err != nil {
			_ = database.CompleteRun(ctx, runID, db.StatusFailed)
		} else {
			outcome.RunID = runID
			_ = database.SaveArtifact(ctx, runID, db.StepKeywordSet, outcome.Keywords.Set)
			_ = database.SaveArtifact(ctx, runID, db.StepArticle, outcome.Article.Article)
			_ = database.SaveTextArtifact(ctx, runID, db.StepArticleMarkdown,
				artifacts.RenderMarkdown(&outcome.Article.Article))
			_ = database.CompleteRun(ctx, runID, db.StatusCompleted)
		}
	}

	return outcome, err
}

// validateOptions checks everything a run needs before any client exists.
func validateOptions(opts *Options) (llm.Convention, error) {
	if opts.KeywordRequest == nil {
		return "", &ConfigurationError{Message: "keyword request is required"}
	}
	if opts.ArticleRequest == nil {
		return "", &ConfigurationError{Message: "article request is required"}
	}
	if err := opts.KeywordRequest.Validate(); err != nil {
		return "", &ConfigurationError{Message: "invalid keyword request", Cause: err}
	}

	// The target keyword is chosen from the generated set, so callers may
	// leave it empty. Validate the rest against the topic as a stand-in.
	articleReq := *opts.ArticleRequest
	if articleReq.Keyword == "" {
		articleReq.Keyword = opts.KeywordRequest.Topic
	}
	if err := articleReq.Validate(); err != nil {
		return "", &ConfigurationError{Message: "invalid article request", Cause: err}
	}

	convention, err := llm.ParseConvention(string(opts.Convention))
	if err != nil {
		return "", &ConfigurationError{Message: "invalid convention", Cause: err}
	}

	if opts.APIKey == "" {
		return "", &ConfigurationError{Message: "API key is required (set OPENAI_API_KEY or GEMINI_API_KEY)"}
	}

	return convention, nil
}

// connectHistory opens the optional history store. Failures are reported as
// warnings and the run continues without persistence.
func connectHistory(ctx context.Context, databaseURL string, out io.Writer) *db.DB {
	if databaseURL == "" {
		return nil
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		fmt.Fprintf(out, "⚠️ Warning: failed to connect to database: %v\n", err)
		fmt.Fprintf(out, "Continuing without history persistence...\n")
		return nil
	}

	if err := database.EnsureSchema(ctx); err != nil {
		fmt.Fprintf(out, "⚠️ Warning: failed to ensure database schema: %v\n", err)
		fmt.Fprintf(out, "Continuing without history persistence...\n")
		database.Close()
		return nil
	}

	return database
}

// generate runs the two model stages and applies the target-keyword policy.
func generate(ctx context.Context, invoker llm.Invoker, opts *Options, out io.Writer) (*Outcome, error) {
	fmt.Fprintf(out, "Step 1/2: Generating keyword set for %q...\n", opts.KeywordRequest.Topic)
	kwResult, err := keywords.Generate(ctx, invoker, opts.KeywordRequest)
	if err != nil {
		return nil, fmt.Errorf("keyword generation failed: %w", err)
	}
	fmt.Fprintf(out, "✅ Generated %d keywords\n", kwResult.Set.CountKeywords())

	// The article targets the first primary keyword; the topic itself is
	// the fallback when the model returned no primary group.
	target, ok := kwResult.Set.FirstPrimary()
	if !ok {
		target = opts.KeywordRequest.Topic
	}

	articleReq := *opts.ArticleRequest
	articleReq.Keyword = target
	articleReq.Keywords = kwResult.Set.Flatten()

	fmt.Fprintf(out, "Step 2/2: Generating %d-word %s article for %q...\n",
		articleReq.WordCount, articleReq.ArticleType, target)
	artResult, err := article.Generate(ctx, invoker, &articleReq)
	if err != nil {
		return nil, fmt.Errorf("article generation failed: %w", err)
	}

	outcome := &Outcome{Keywords: kwResult, Article: artResult}
	if artResult.OverLength {
		warning := fmt.Sprintf("article runs long: ~%d words against a %d-word target",
			artResult.RealizedWordCount, articleReq.WordCount)
		outcome.Warnings = append(outcome.Warnings, warning)
		fmt.Fprintf(out, "⚠️ %s\n", warning)
	}
	fmt.Fprintf(out, "✅ Generated article: %s (~%d words)\n",
		artResult.Article.ArticleTitle, artResult.RealizedWordCount)

	return outcome, nil
}
