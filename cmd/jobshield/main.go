// Package main provides the entry point for the jobshield CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobshield",
	Short: "Job posting fraud detector",
	Long:  "jobshield scores job postings and recruiter messages for fraud by combining an ML text classifier, a rule engine, salary anomaly detection and recruiter trust scoring into a single risk tier.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
