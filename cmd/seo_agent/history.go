package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/seo-agent/internal/db"
	"github.com/jonathan/seo-agent/internal/observability"
)

var historyCommand = &cobra.Command{
	Use:   "history",
	Short: "List recent generation runs from the history store",
	Long:  "Lists recent generation runs recorded in PostgreSQL, newest first, with status, article type, model, and timestamp.",
	RunE:  runHistoryCmd,
}

var (
	historyDatabaseURL string
	historyLimit       int
)

func init() {
	historyCommand.Flags().StringVar(&historyDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	historyCommand.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs to list")

	rootCmd.AddCommand(historyCommand)
}

func runHistoryCmd(_ *cobra.Command, _ []string) error {
	databaseURL := historyDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	// A fresh database shows an empty history instead of a missing-table error.
	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	runs, err := database.ListRuns(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintRunHistory(runs)
	return nil
}
