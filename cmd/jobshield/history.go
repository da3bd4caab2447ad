package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/jobshield/internal/db"
	"github.com/jonathan/jobshield/internal/observability"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently stored analyses or show one by ID",
	RunE:  runHistory,
}

var (
	historyDatabaseURL string
	historyLimit       int
	historyID          string
)

func init() {
	historyCmd.Flags().StringVar(&historyDatabaseURL, "db", "", "PostgreSQL URL (or DATABASE_URL)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum number of analyses to list")
	historyCmd.Flags().StringVar(&historyID, "id", "", "Show the full report for one stored analysis")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	databaseURL := historyDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("a database URL is required: pass --db or set DATABASE_URL")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if historyID != "" {
		return showAnalysis(ctx, database, historyID)
	}

	records, err := database.ListRecentAnalyses(ctx, historyLimit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No stored analyses.")
		return nil
	}

	for _, record := range records {
		excerpt := record.JobText
		if len(excerpt) > 60 {
			excerpt = excerpt[:57] + "..."
		}
		excerpt = strings.ReplaceAll(excerpt, "\n", " ")
		fmt.Printf("%s  %s  %6.2f  %-22s  %s\n",
			record.ID, record.CreatedAt.Format("2006-01-02 15:04"), record.RiskScore, record.RiskTier, excerpt)
	}
	return nil
}

func showAnalysis(ctx context.Context, database *db.DB, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid analysis id %s: %w", rawID, err)
	}

	record, err := database.GetAnalysis(ctx, id)
	if err != nil {
		return err
	}
	if record == nil {
		return fmt.Errorf("no stored analysis with id %s", id)
	}

	fmt.Printf("Analyzed %s\n", record.CreatedAt.Format("2006-01-02 15:04"))
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAnalysisReport(&record.Report)
	return nil
}
