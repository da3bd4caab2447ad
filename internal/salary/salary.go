// Package salary detects anomalous salary offers by comparing an extracted
// or supplied figure against level-specific market benchmark bands.
package salary

import (
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/jobshield/internal/types"
)

// Job levels recognized by the detector.
const (
	LevelEntry  = "entry"
	LevelJunior = "junior"
	LevelMid    = "mid"
	LevelSenior = "senior"
	LevelLead   = "lead"
)

// Benchmark is the min/max/median salary band for one job level, in
// thousands per year.
type Benchmark struct {
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Median float64 `yaml:"median"`
}

// Analyzer holds the benchmark bands and runs salary anomaly detection.
type Analyzer struct {
	benchmarks map[string]Benchmark
}

// defaultBenchmarks are the built-in market bands (thousands per year).
func defaultBenchmarks() map[string]Benchmark {
	return map[string]Benchmark{
		LevelEntry:  {Min: 300, Max: 600, Median: 400},
		LevelJunior: {Min: 400, Max: 800, Median: 600},
		LevelMid:    {Min: 600, Max: 1500, Median: 1000},
		LevelSenior: {Min: 1200, Max: 3000, Median: 2000},
		LevelLead:   {Min: 2000, Max: 5000, Median: 3000},
	}
}

// NewAnalyzer creates an analyzer with the built-in benchmarks.
func NewAnalyzer() *Analyzer {
	return &Analyzer{benchmarks: defaultBenchmarks()}
}

// LoadAnalyzer creates an analyzer from a YAML benchmark file. Every level
// must be present with a valid band.
func LoadAnalyzer(path string) (*Analyzer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read benchmarks file %s: %w", path, err)
	}

	var benchmarks map[string]Benchmark
	if err := yaml.Unmarshal(data, &benchmarks); err != nil {
		return nil, fmt.Errorf("failed to parse benchmarks YAML: %w", err)
	}
	for _, level := range []string{LevelEntry, LevelJunior, LevelMid, LevelSenior, LevelLead} {
		band, ok := benchmarks[level]
		if !ok {
			return nil, fmt.Errorf("benchmarks file %s is missing level %q", path, level)
		}
		if band.Min <= 0 || band.Max <= band.Min || band.Median < band.Min || band.Median > band.Max {
			return nil, fmt.Errorf("benchmarks file %s has an invalid band for level %q", path, level)
		}
	}

	return &Analyzer{benchmarks: benchmarks}, nil
}

// Salary extraction patterns, tried in order; the first parse wins.
var salaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*(?:k|thousand)\b`),
	regexp.MustCompile(`(?:rs|inr|₹)\.?\s*(\d+(?:,\d+)*)`),
	regexp.MustCompile(`(\d+)\s*(?:lpa|lakh|lakhs)\b`),
	regexp.MustCompile(`salary\s*(?:of|:)?\s*(?:rs|inr|₹)?\.?\s*(\d+(?:,\d+)*)`),
}

// levelKeywords map level-indicating words to job levels, checked in order.
var levelKeywords = []struct {
	level    string
	keywords []string
}{
	{LevelEntry, []string{"entry", "fresher", "graduate", "trainee"}},
	{LevelJunior, []string{"junior", "associate"}},
	{LevelSenior, []string{"senior", "sr."}},
	{LevelLead, []string{"lead", "principal", "architect"}},
}

// DetectLevel classifies the job level from level-indicating keywords,
// defaulting to mid when none match.
func (a *Analyzer) DetectLevel(text string) string {
	lower := strings.ToLower(text)
	for _, entry := range levelKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.level
			}
		}
	}
	return LevelMid
}

// ExtractSalary applies the ordered salary patterns and returns the first
// successfully parsed figure (thousands per year).
func (a *Analyzer) ExtractSalary(text string) (float64, bool) {
	lower := strings.ToLower(text)
	for _, pattern := range salaryPatterns {
		match := pattern.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		figure, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64)
		if err != nil {
			continue
		}
		return figure, true
	}
	return 0, false
}

// Analyze assesses the posting's salary. An explicit figure takes priority
// over extraction; when neither exists the assessment reports no anomaly
// with an informational message rather than failing.
func (a *Analyzer) Analyze(text string, explicit *float64) types.SalaryAssessment {
	var offered float64
	switch {
	case explicit != nil:
		offered = *explicit
	default:
		extracted, ok := a.ExtractSalary(text)
		if !ok {
			return types.SalaryAssessment{
				Message: "No salary information found",
			}
		}
		offered = extracted
	}

	level := a.DetectLevel(text)
	band := a.benchmarks[level]

	stdDev := (band.Max - band.Min) / 4
	zScore := math.Abs((offered - band.Median) / stdDev)

	assessment := types.SalaryAssessment{
		OfferedSalary:  offered,
		JobLevel:       level,
		BenchmarkRange: fmt.Sprintf("%.0f-%.0fk", band.Min, band.Max),
		ZScore:         math.Round(zScore*100) / 100,
	}

	switch {
	case offered > band.Max*1.5:
		assessment.AnomalyDetected = true
		assessment.AnomalyScore = capScore(int(zScore*20), 100)
		assessment.Message = fmt.Sprintf("Salary significantly above market rate for %s level", level)
	case offered < band.Min*0.5:
		assessment.AnomalyDetected = true
		assessment.AnomalyScore = capScore(int(zScore*15), 100)
		assessment.Message = fmt.Sprintf("Salary significantly below market rate for %s level", level)
	case offered > band.Max:
		assessment.AnomalyScore = capScore(int(zScore*10), 50)
		assessment.Message = fmt.Sprintf("Salary above typical range for %s level", level)
	}

	return assessment
}

func capScore(score, limit int) int {
	if score > limit {
		return limit
	}
	return score
}
