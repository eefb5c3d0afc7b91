// Package main provides the entry point for the SEO agent CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/seo-agent/internal/article"
	"github.com/jonathan/seo-agent/internal/config"
	"github.com/jonathan/seo-agent/internal/keywords"
)

var rootCmd = &cobra.Command{
	Use:   "seo-agent",
	Short: "SEO keyword and article generator",
	Long:  "SEO Agent generates keyword sets and long-form SEO-optimized articles through hosted language models, saving results as JSON and Markdown artifacts.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// modelFlags holds the provider and output options shared by the generation
// commands. Each command registers its own copy so flag state never leaks
// between subcommands.
type modelFlags struct {
	configPath  string
	provider    string
	model       string
	temperature float64
	convention  string
	outputDir   string
	apiKey      string
	databaseURL string
}

func registerModelFlags(cmd *cobra.Command, f *modelFlags) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	cmd.Flags().StringVarP(&f.provider, "provider", "p", "", "Model provider: openai or gemini")
	cmd.Flags().StringVarP(&f.model, "model", "m", "", "Model name applied to every tier (defaults per provider)")
	cmd.Flags().Float64Var(&f.temperature, "temperature", 0, "Sampling temperature between 0 and 2")
	cmd.Flags().StringVar(&f.convention, "convention", "", "Response convention: tool_call or free_text")
	cmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", "", "Directory for generated artifact files")
	cmd.Flags().StringVar(&f.apiKey, "api-key", "", "Provider API key (overrides OPENAI_API_KEY / GEMINI_API_KEY)")
	cmd.Flags().StringVar(&f.databaseURL, "db-url", "", "PostgreSQL connection URL for run history (optional, defaults to DATABASE_URL env var)")
}

// resolveConfig layers the effective configuration: explicit flags over the
// config file over environment variables over defaults.
func resolveConfig(cmd *cobra.Command, f *modelFlags) (config.Config, error) {
	var cfg config.Config
	if f.configPath != "" {
		loaded, err := config.LoadConfig(f.configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("provider") {
		cfg.Provider = f.provider
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = f.model
	}
	if cmd.Flags().Changed("temperature") {
		cfg.Temperature = f.temperature
	}
	if cmd.Flags().Changed("convention") {
		cfg.Convention = f.convention
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = f.outputDir
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = f.apiKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = f.databaseURL
	}

	// Provider-scoped env vars need the effective provider before merging.
	provider := cfg.Provider
	if provider == "" {
		provider = config.DefaultConfig().Provider
	}
	cfg = cfg.MergeWithDefaults(config.FromEnv(provider))
	cfg = cfg.MergeWithDefaults(config.DefaultConfig())

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	if cfg.APIKey == "" {
		cfg.APIKey = config.APIKeyFromEnv(cfg.Provider)
	}

	return cfg, nil
}

// printRawResponse surfaces the raw model output when extraction failed, so
// the user can see what the model actually returned.
func printRawResponse(err error) {
	var articleParse *article.ParseError
	if errors.As(err, &articleParse) && articleParse.Raw != "" {
		fmt.Fprintf(os.Stderr, "\nRaw model response:\n%s\n", articleParse.Raw)
		return
	}
	var keywordParse *keywords.ParseError
	if errors.As(err, &keywordParse) && keywordParse.Raw != "" {
		fmt.Fprintf(os.Stderr, "\nRaw model response:\n%s\n", keywordParse.Raw)
	}
}
