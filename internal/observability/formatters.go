// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/jonathan/jobshield/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for analysis and training results
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// tierColor maps each risk tier to its terminal color.
func tierColor(tier types.RiskTier) *color.Color {
	switch tier {
	case types.TierCriticalFraud:
		return color.New(color.FgRed, color.Bold)
	case types.TierHighScamLikelihood:
		return color.New(color.FgRed)
	case types.TierModerateRisk:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

// PrintAnalysisReport outputs a human-readable summary of one analysis.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintAnalysisReport(report *types.AnalysisReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Risk Score:      %.2f / 100\n", report.RiskScore))
	sb.WriteString(fmt.Sprintf("Risk Tier:       %s\n", report.RiskTier))
	sb.WriteString("\n")
	sb.WriteString("Component Breakdown:\n")
	sb.WriteString(fmt.Sprintf("  ML Probability:  %6.2f\n", report.ComponentScores.MLProbability))
	sb.WriteString(fmt.Sprintf("  Rule Score:      %6.2f\n", report.ComponentScores.RuleScore))
	sb.WriteString(fmt.Sprintf("  Company Risk:    %6.2f\n", report.ComponentScores.CompanyRisk))
	sb.WriteString(fmt.Sprintf("  Salary Anomaly:  %6.2f\n", report.ComponentScores.SalaryAnomaly))
	sb.WriteString(fmt.Sprintf("  Recruiter Risk:  %6.2f\n", report.ComponentScores.RecruiterRisk))

	if len(report.RuleResult.Triggered) > 0 {
		sb.WriteString("\nTriggered Rules:\n")
		count := min(len(report.RuleResult.Triggered), maxItemsToShow)
		for i := 0; i < count; i++ {
			match := report.RuleResult.Triggered[i]
			sb.WriteString(fmt.Sprintf("  • %s (+%d): %s\n", match.Category, match.Severity, match.Pattern))
		}
		if len(report.RuleResult.Triggered) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.RuleResult.Triggered)-maxItemsToShow))
		}
	}

	if len(report.Explanations) > 0 {
		sb.WriteString("\nKey Factors:\n")
		for _, exp := range report.Explanations {
			sb.WriteString(fmt.Sprintf("  • [%s] %s\n", exp.Severity, exp.Detail))
		}
	}

	p.printBox("FRAUD ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))

	tier := tierColor(report.RiskTier)
	fmt.Fprintf(p.out, "Verdict: %s (%.2f)\n", tier.Sprint(string(report.RiskTier)), report.RiskScore)
	fmt.Fprintf(p.out, "Recommendation: %s\n", report.Recommendation)
}

// PrintSuspiciousLines outputs the flagged input lines with their categories.
func (p *Printer) PrintSuspiciousLines(lines []types.SuspiciousLine) {
	if len(lines) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(lines), maxItemsToShow)
	for i := 0; i < count; i++ {
		line := lines[i]
		text := line.Text
		if len(text) > 44 {
			text = text[:41] + "..."
		}
		sb.WriteString(fmt.Sprintf("L%d: %s\n", line.LineNumber, text))
		sb.WriteString(fmt.Sprintf("    [%s]\n", strings.Join(line.Categories, ", ")))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(lines) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more lines", len(lines)-maxItemsToShow))
	}

	p.printBox("SUSPICIOUS LINES", sb.String())
}

// PrintTrainingReport outputs the candidate evaluation table and the
// selected model.
func (p *Printer) PrintTrainingReport(report *types.TrainingReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Samples:  %d (%d scam, %d legitimate)\n\n",
		report.Samples, report.ScamSamples, report.Samples-report.ScamSamples))

	sb.WriteString("Candidates (CV F1 mean ± std, holdout F1):\n")
	for _, candidate := range report.Candidates {
		sb.WriteString(fmt.Sprintf("  %-20s %.3f ± %.3f  %.3f\n",
			candidate.Name, candidate.CVF1Mean, candidate.CVF1Std, candidate.HoldoutF1))
	}

	sb.WriteString(fmt.Sprintf("\nBest model: %s (CV F1 %.3f)\n", report.BestModel, report.BestCVF1))
	if report.EnsembleSelected {
		sb.WriteString(fmt.Sprintf("Ensemble selected: holdout F1 %.3f\n", report.EnsembleF1))
	}

	p.printBox("TRAINING RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}
