package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/seo-agent/internal/artifacts"
	"github.com/jonathan/seo-agent/internal/llm"
	"github.com/jonathan/seo-agent/internal/observability"
	"github.com/jonathan/seo-agent/internal/pipeline"
	"github.com/jonathan/seo-agent/internal/schemas"
	"github.com/jonathan/seo-agent/internal/types"
)

var articleCommand = &cobra.Command{
	Use:   "article",
	Short: "Generate an SEO-optimized article for a target keyword",
	Long: `Generates a keyword set for the target keyword, then a full article weaving
the generated keywords in naturally. Writes article-<slug>.json and
article-<slug>.md to the output directory.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runArticleCmd,
}

var (
	articleFlags     modelFlags
	articleKeyword   string
	articleTone      string
	articleWordCount int
	articleTypeName  string
	articleVerbose   bool
)

func init() {
	registerModelFlags(articleCommand, &articleFlags)
	articleCommand.Flags().StringVarP(&articleKeyword, "keyword", "k", "", "Target keyword or topic (required)")
	articleCommand.Flags().StringVarP(&articleTone, "tone", "t", "informal", "Tone of the article: formal, informal, conversational or professional")
	articleCommand.Flags().IntVarP(&articleWordCount, "word-count", "w", 1000, "Target word count (300-5000)")
	articleCommand.Flags().StringVarP(&articleTypeName, "article-type", "a", "guide", "Type of article: guide, review, how-to, list or comparison")
	articleCommand.Flags().BoolVarP(&articleVerbose, "verbose", "v", false, "Print detailed progress information")

	if err := articleCommand.MarkFlagRequired("keyword"); err != nil {
		panic(fmt.Sprintf("failed to mark keyword flag as required: %v", err))
	}

	rootCmd.AddCommand(articleCommand)
}

func runArticleCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, &articleFlags)
	if err != nil {
		return err
	}
	if articleVerbose && articleFlags.configPath != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", articleFlags.configPath)
	}

	tone, err := types.ParseTone(articleTone)
	if err != nil {
		return err
	}
	articleType, err := types.ParseArticleType(articleTypeName)
	if err != nil {
		return err
	}
	if articleWordCount < 300 || articleWordCount > 5000 {
		return fmt.Errorf("word count must be between 300 and 5000, got %d", articleWordCount)
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("API key is required (set OPENAI_API_KEY or GEMINI_API_KEY, or use --api-key)")
	}

	llmConfig := cfg.LLMConfig()
	_, _ = fmt.Fprintf(os.Stdout, "\n🚀 Generating SEO article...\n")
	_, _ = fmt.Fprintf(os.Stdout, "Topic: %s\n", articleKeyword)
	_, _ = fmt.Fprintf(os.Stdout, "Tone: %s\n", tone)
	_, _ = fmt.Fprintf(os.Stdout, "Article type: %s\n", articleType)
	_, _ = fmt.Fprintf(os.Stdout, "Model: %s\n", llmConfig.GetModel(llm.TierStandard))
	_, _ = fmt.Fprintln(os.Stdout, strings.Repeat("-", 50))

	ctx := context.Background()
	outcome, err := pipeline.Run(ctx, pipeline.Options{
		KeywordRequest: &types.KeywordRequest{Topic: articleKeyword, Count: cfg.KeywordCount},
		ArticleRequest: &types.ArticleRequest{
			Tone:        tone,
			WordCount:   articleWordCount,
			ArticleType: articleType,
		},
		APIKey:      cfg.APIKey,
		LLMConfig:   llmConfig,
		Convention:  llm.Convention(cfg.Convention),
		DatabaseURL: cfg.DatabaseURL,
		Out:         os.Stdout,
	})
	if err != nil {
		printRawResponse(err)
		return err
	}

	observability.NewPrinter(os.Stdout).PrintArticleSummary(&outcome.Article.Article, articleWordCount)

	paths, err := artifacts.WriteArticle(cfg.OutputDir, articleKeyword, &outcome.Article.Article)
	if err != nil {
		return fmt.Errorf("failed to save article: %w", err)
	}

	// Validate against schema (if schema file exists)
	schemaPath := schemas.ResolveSchemaPath("schemas/article.schema.json")
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, paths.ArticleJSON); err != nil {
			// Distinguish between validation errors (data doesn't match schema) and schema load errors
			var validationErr *schemas.ValidationError
			var schemaLoadErr *schemas.SchemaLoadError
			if errors.As(err, &validationErr) {
				// Actual validation failure - return error
				return fmt.Errorf("generated JSON does not validate against schema: %w", err)
			} else if errors.As(err, &schemaLoadErr) {
				// Schema loading issue - log warning and continue
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema (schema loading failed): %v\n", err)
			} else {
				// Other errors - log warning and continue
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
			}
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "\n✅ Article generated successfully!\n")
	_, _ = fmt.Fprintf(os.Stdout, "📄 JSON: %s\n", paths.ArticleJSON)
	_, _ = fmt.Fprintf(os.Stdout, "📝 Markdown: %s\n", paths.ArticleMD)

	return nil
}
