package main

import (
	"bufio"
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

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Interactive end-to-end article generation session",
	Long: `Walks through topic, tone, word count, and article type prompts, then
generates a keyword set and a full article using it, saving all three
artifacts: article JSON, article Markdown, and keywords JSON.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runInteractiveCmd,
}

var (
	runFlags   modelFlags
	runVerbose bool
)

func init() {
	registerModelFlags(runCommand, &runFlags)
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(runCommand)
}

func runInteractiveCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, &runFlags)
	if err != nil {
		return err
	}
	if runVerbose && runFlags.configPath != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runFlags.configPath)
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("API key is required (set OPENAI_API_KEY or GEMINI_API_KEY, or use --api-key)")
	}

	in := bufio.NewReader(os.Stdin)
	out := os.Stdout

	_, _ = fmt.Fprintln(out, "🚀 SEO Article Generator")
	_, _ = fmt.Fprintln(out, strings.Repeat("=", 40))

	topic, err := promptRequired(in, out, "Enter your topic: ", "❌ Topic is required!")
	if err != nil {
		return err
	}

	toneName, err := promptChoice(in, out, "📝 Available tones:",
		"Enter tone (formal/informal/conversational/professional): ", []choice{
			{value: "formal", description: "Professional and authoritative"},
			{value: "informal", description: "Casual and friendly"},
			{value: "conversational", description: "Chatty and engaging"},
			{value: "professional", description: "Business-like and polished"},
		})
	if err != nil {
		return err
	}
	tone, err := types.ParseTone(toneName)
	if err != nil {
		return err
	}

	wordCount, err := promptIntInRange(in, out,
		"Enter target word count (e.g. 800, 1200, 1500): ", 300, 5000)
	if err != nil {
		return err
	}

	typeName, err := promptChoice(in, out, "📄 Available article types:",
		"Enter article type (guide/review/how-to/list/comparison): ", []choice{
			{value: "guide", description: "How-to guide or tutorial"},
			{value: "review", description: "Product or service review"},
			{value: "how-to", description: "Step-by-step instructions"},
			{value: "list", description: "Listicle or numbered content"},
			{value: "comparison", description: "Compare different options"},
		})
	if err != nil {
		return err
	}
	articleType, err := types.ParseArticleType(typeName)
	if err != nil {
		return err
	}

	llmConfig := cfg.LLMConfig()
	_, _ = fmt.Fprintf(out, "\n🎯 Topic: %s\n", topic)
	_, _ = fmt.Fprintf(out, "📝 Tone: %s\n", tone)
	_, _ = fmt.Fprintf(out, "📄 Article type: %s\n", articleType)
	_, _ = fmt.Fprintf(out, "🤖 Model: %s\n\n", llmConfig.GetModel(llm.TierStandard))

	ctx := context.Background()
	outcome, err := pipeline.Run(ctx, pipeline.Options{
		KeywordRequest: &types.KeywordRequest{Topic: topic, Count: cfg.KeywordCount},
		ArticleRequest: &types.ArticleRequest{
			Tone:        tone,
			WordCount:   wordCount,
			ArticleType: articleType,
		},
		APIKey:      cfg.APIKey,
		LLMConfig:   llmConfig,
		Convention:  llm.Convention(cfg.Convention),
		DatabaseURL: cfg.DatabaseURL,
		Out:         out,
	})
	if err != nil {
		printRawResponse(err)
		return err
	}

	printer := observability.NewPrinter(out)
	printer.PrintKeywordSet(&outcome.Keywords.Set)
	printer.PrintArticleSummary(&outcome.Article.Article, wordCount)

	paths, err := artifacts.WriteAll(cfg.OutputDir, topic, &outcome.Article.Article, &outcome.Keywords.Set)
	if err != nil {
		return fmt.Errorf("failed to save artifacts: %w", err)
	}

	// Validate against schemas (if schema files exist)
	written := []struct {
		schemaRel string
		jsonPath  string
	}{
		{"schemas/article.schema.json", paths.ArticleJSON},
		{"schemas/keywords.schema.json", paths.KeywordsJSON},
	}
	for _, w := range written {
		schemaPath := schemas.ResolveSchemaPath(w.schemaRel)
		if schemaPath == "" {
			continue
		}
		if err := schemas.ValidateJSON(schemaPath, w.jsonPath); err != nil {
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

	_, _ = fmt.Fprintf(out, "\n✅ Files saved to:\n")
	_, _ = fmt.Fprintf(out, "   📄 Article JSON: %s\n", paths.ArticleJSON)
	_, _ = fmt.Fprintf(out, "   📝 Article Markdown: %s\n", paths.ArticleMD)
	_, _ = fmt.Fprintf(out, "   🔍 Keywords JSON: %s\n", paths.KeywordsJSON)
	_, _ = fmt.Fprintln(out, "✅ Article generated successfully!")

	return nil
}
