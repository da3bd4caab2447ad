package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobshield/internal/db"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Manage the stored training corpus",
}

var sampleAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Store a labeled posting for future retraining",
	Long:  "Adds one labeled posting (1 for scam, 0 for legitimate) to the database corpus. Stored samples are appended to the training set when train runs with --db.",
	RunE:  runSampleAdd,
}

var (
	sampleAddText        string
	sampleAddFile        string
	sampleAddLabel       int
	sampleAddDatabaseURL string
)

func init() {
	sampleAddCmd.Flags().StringVarP(&sampleAddText, "text", "t", "", "Posting text to store")
	sampleAddCmd.Flags().StringVarP(&sampleAddFile, "file", "f", "", "Path to a file holding the posting text")
	sampleAddCmd.Flags().IntVarP(&sampleAddLabel, "label", "l", -1, "Label: 1 for scam, 0 for legitimate (required)")
	sampleAddCmd.Flags().StringVar(&sampleAddDatabaseURL, "db", "", "PostgreSQL URL (or DATABASE_URL)")

	if err := sampleAddCmd.MarkFlagRequired("label"); err != nil {
		panic(fmt.Sprintf("failed to mark label flag as required: %v", err))
	}

	sampleCmd.AddCommand(sampleAddCmd)
	rootCmd.AddCommand(sampleCmd)
}

func runSampleAdd(_ *cobra.Command, _ []string) error {
	if sampleAddText == "" && sampleAddFile == "" {
		return fmt.Errorf("either --text or --file is required")
	}
	if sampleAddText != "" && sampleAddFile != "" {
		return fmt.Errorf("--text and --file are mutually exclusive")
	}
	if sampleAddLabel != 0 && sampleAddLabel != 1 {
		return fmt.Errorf("invalid label %d: must be 0 or 1", sampleAddLabel)
	}

	text := sampleAddText
	if sampleAddFile != "" {
		content, err := os.ReadFile(sampleAddFile)
		if err != nil {
			return fmt.Errorf("failed to read posting file %s: %w", sampleAddFile, err)
		}
		text = string(content)
	}

	databaseURL := sampleAddDatabaseURL
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

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}
	id, err := database.AddTrainingSample(ctx, text, sampleAddLabel)
	if err != nil {
		return err
	}

	fmt.Printf("Stored sample %s (label %d)\n", id, sampleAddLabel)
	return nil
}
