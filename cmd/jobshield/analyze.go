package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobshield/internal/config"
	"github.com/jonathan/jobshield/internal/db"
	"github.com/jonathan/jobshield/internal/observability"
	"github.com/jonathan/jobshield/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job posting for fraud signals",
	Long:  "Scores a job posting or recruiter message by fusing the ML classifier, rule engine, salary anomaly detector and recruiter trust scorer into a single risk tier with a recommendation.",
	RunE:  runAnalyze,
}

var (
	analyzeText              string
	analyzeFile              string
	analyzeEmail             string
	analyzeContact           string
	analyzeProfile           string
	analyzeCompany           string
	analyzeSalary            float64
	analyzeCompanyConfidence float64
	analyzeModelDir          string
	analyzeRulesFile         string
	analyzeBenchmarksFile    string
	analyzeLexiconFile       string
	analyzeConfigFile        string
	analyzeDatabaseURL       string
	analyzeJSON              bool
	analyzeVerbose           bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeText, "text", "t", "", "Job posting text to analyze")
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to a file holding the job posting text")
	analyzeCmd.Flags().StringVar(&analyzeEmail, "email", "", "Recruiter email address")
	analyzeCmd.Flags().StringVar(&analyzeContact, "contact", "", "Stated contact method (email, phone, whatsapp, ...)")
	analyzeCmd.Flags().StringVar(&analyzeProfile, "profile", "", "Recruiter profile URL")
	analyzeCmd.Flags().StringVar(&analyzeCompany, "company", "", "Company name")
	analyzeCmd.Flags().Float64Var(&analyzeSalary, "salary", 0, "Offered salary in thousands per year (overrides extraction from text)")
	analyzeCmd.Flags().Float64Var(&analyzeCompanyConfidence, "company-confidence", 0, "Externally verified company confidence (0-100)")
	analyzeCmd.Flags().StringVar(&analyzeModelDir, "model-dir", "", "Directory holding the trained classifier artifact")
	analyzeCmd.Flags().StringVar(&analyzeRulesFile, "rules", "", "Path to a YAML rule table overriding the built-in rules")
	analyzeCmd.Flags().StringVar(&analyzeBenchmarksFile, "benchmarks", "", "Path to a YAML salary benchmark table")
	analyzeCmd.Flags().StringVar(&analyzeLexiconFile, "lexicon", "", "Path to a YAML keyword lexicon")
	analyzeCmd.Flags().StringVarP(&analyzeConfigFile, "config", "c", "", "Path to a JSON config file")
	analyzeCmd.Flags().StringVar(&analyzeDatabaseURL, "db", "", "PostgreSQL URL for persisting the analysis (or DATABASE_URL)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit the full report as JSON")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed component output")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if analyzeText == "" && analyzeFile == "" {
		return fmt.Errorf("either --text or --file is required")
	}
	if analyzeText != "" && analyzeFile != "" {
		return fmt.Errorf("--text and --file are mutually exclusive")
	}

	text := analyzeText
	if analyzeFile != "" {
		content, err := os.ReadFile(analyzeFile)
		if err != nil {
			return fmt.Errorf("failed to read posting file %s: %w", analyzeFile, err)
		}
		text = string(content)
	}

	cfg, err := resolveConfig(analyzeConfigFile, config.Config{
		ModelDir:       analyzeModelDir,
		RulesFile:      analyzeRulesFile,
		BenchmarksFile: analyzeBenchmarksFile,
		LexiconFile:    analyzeLexiconFile,
		DatabaseURL:    analyzeDatabaseURL,
		Verbose:        analyzeVerbose,
	})
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	analyzer, err := buildAnalyzer(cfg)
	if err != nil {
		return err
	}

	req := &types.AnalyzeRequest{
		JobText:        text,
		CompanyName:    analyzeCompany,
		RecruiterEmail: analyzeEmail,
		ContactMethod:  analyzeContact,
		ProfileURL:     analyzeProfile,
	}
	if cmd.Flags().Changed("salary") {
		salary := analyzeSalary
		req.OfferedSalary = &salary
	}
	if cmd.Flags().Changed("company-confidence") {
		confidence := analyzeCompanyConfidence
		req.CompanyConfidence = &confidence
	}

	ctx := context.Background()
	report, err := analyzer.Analyze(ctx, req)
	if err != nil {
		return err
	}

	if cfg.DatabaseURL != "" {
		if err := persistAnalysis(ctx, cfg.DatabaseURL, text, report); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to persist analysis: %v\n", err)
		}
	}

	if analyzeJSON {
		output, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAnalysisReport(report)
	if cfg.Verbose {
		printer.PrintSuspiciousLines(report.MLResult.SuspiciousLines)
	}
	return nil
}

func persistAnalysis(ctx context.Context, databaseURL, text string, report *types.AnalysisReport) error {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}
	id, err := database.SaveAnalysis(ctx, text, report)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Saved analysis %s\n", id)
	return nil
}
