package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jonathan/jobshield/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the active fraud rule table",
	Long:  "Lists every rule category with its severity weight and matching patterns, either from the built-in table or a YAML override.",
	RunE:  runRules,
}

var rulesFile string

func init() {
	rulesCmd.Flags().StringVar(&rulesFile, "rules", "", "Path to a YAML rule table overriding the built-in rules")

	rootCmd.AddCommand(rulesCmd)
}

func runRules(_ *cobra.Command, _ []string) error {
	engine := rules.NewEngine()
	if rulesFile != "" {
		loaded, err := rules.LoadEngine(rulesFile)
		if err != nil {
			return fmt.Errorf("failed to load rule table: %w", err)
		}
		engine = loaded
	}

	category := color.New(color.FgCyan, color.Bold)
	for _, rule := range engine.Rules() {
		fmt.Printf("%s (severity %d)\n", category.Sprint(rule.Category), rule.Severity)
		for _, pattern := range rule.Patterns {
			fmt.Printf("  - %s\n", pattern)
		}
	}
	return nil
}
