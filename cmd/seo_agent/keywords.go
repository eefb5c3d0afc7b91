package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/seo-agent/internal/artifacts"
	"github.com/jonathan/seo-agent/internal/keywords"
	"github.com/jonathan/seo-agent/internal/llm"
	"github.com/jonathan/seo-agent/internal/observability"
	"github.com/jonathan/seo-agent/internal/schemas"
	"github.com/jonathan/seo-agent/internal/types"
)

var keywordsCommand = &cobra.Command{
	Use:   "keywords",
	Short: "Generate an SEO keyword set for a topic",
	Long: `Generates a categorized SEO keyword set for a topic, prints it, and writes
keywords-<slug>.json to the output directory.`,
	RunE: runKeywordsCmd,
}

var (
	keywordsFlags     modelFlags
	keywordsTopic     string
	keywordsCount     int
	keywordsTypeNames []string
)

func init() {
	registerModelFlags(keywordsCommand, &keywordsFlags)
	keywordsCommand.Flags().StringVarP(&keywordsTopic, "topic", "t", "", "Topic to generate keywords for (required)")
	keywordsCommand.Flags().IntVarP(&keywordsCount, "count", "c", 0, "Number of keywords to generate (default 15)")
	keywordsCommand.Flags().StringSliceVarP(&keywordsTypeNames, "types", "y", nil, "Keyword types to generate: primary, long_tail, question, local, related (default all)")

	if err := keywordsCommand.MarkFlagRequired("topic"); err != nil {
		panic(fmt.Sprintf("failed to mark topic flag as required: %v", err))
	}

	rootCmd.AddCommand(keywordsCommand)
}

func runKeywordsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, &keywordsFlags)
	if err != nil {
		return err
	}

	count := cfg.KeywordCount
	if cmd.Flags().Changed("count") {
		count = keywordsCount
	}
	if count < 1 || count > 50 {
		return fmt.Errorf("keyword count must be between 1 and 50, got %d", count)
	}

	var keywordTypes []types.KeywordType
	for _, name := range keywordsTypeNames {
		kt, err := types.ParseKeywordType(name)
		if err != nil {
			return err
		}
		keywordTypes = append(keywordTypes, kt)
	}

	if cfg.APIKey == "" {
		return fmt.Errorf("API key is required (set OPENAI_API_KEY or GEMINI_API_KEY, or use --api-key)")
	}

	convention, err := llm.ParseConvention(cfg.Convention)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "\n🔍 Generating SEO keywords...\n")
	_, _ = fmt.Fprintf(os.Stdout, "Topic: %s\n", keywordsTopic)
	_, _ = fmt.Fprintf(os.Stdout, "Keyword count: %d\n", count)
	if len(keywordTypes) > 0 {
		names := make([]string, len(keywordTypes))
		for i, kt := range keywordTypes {
			names[i] = string(kt)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Keyword types: %s\n", strings.Join(names, ", "))
	} else {
		_, _ = fmt.Fprintln(os.Stdout, "Keyword types: All types")
	}
	_, _ = fmt.Fprintln(os.Stdout, strings.Repeat("-", 50))

	ctx := context.Background()
	client, err := llm.NewClient(ctx, cfg.LLMConfig(), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to construct model client: %w", err)
	}
	defer func() { _ = client.Close() }()

	invoker, err := llm.NewInvoker(client, convention)
	if err != nil {
		return err
	}

	result, err := keywords.Generate(ctx, invoker, &types.KeywordRequest{
		Topic: keywordsTopic,
		Count: count,
		Types: keywordTypes,
	})
	if err != nil {
		printRawResponse(err)
		return err
	}

	observability.NewPrinter(os.Stdout).PrintKeywordSet(&result.Set)

	path, err := artifacts.WriteKeywords(cfg.OutputDir, keywordsTopic, &result.Set)
	if err != nil {
		return fmt.Errorf("failed to save keywords: %w", err)
	}

	// Validate against schema (if schema file exists)
	schemaPath := schemas.ResolveSchemaPath("schemas/keywords.schema.json")
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
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

	_, _ = fmt.Fprintf(os.Stdout, "\n✅ Keywords saved to: %s\n", path)
	_, _ = fmt.Fprintf(os.Stdout, "📊 Total keywords generated: %d\n", result.Set.CountKeywords())

	return nil
}
