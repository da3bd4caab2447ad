package salary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectLevel(t *testing.T) {
	a := NewAnalyzer()

	cases := map[string]string{
		"Hiring freshers for our graduate program": LevelEntry,
		"Junior developer position":                LevelJunior,
		"Senior backend engineer":                  LevelSenior,
		"Principal architect role":                 LevelLead,
		"Backend engineer position":                LevelMid,
	}
	for text, want := range cases {
		assert.Equal(t, want, a.DetectLevel(text), text)
	}
}

func TestExtractSalary_Patterns(t *testing.T) {
	a := NewAnalyzer()

	cases := map[string]float64{
		"Salary up to 800k per year":    800,
		"Compensation Rs 1,200 monthly": 1200,
		"Package of 25 LPA":             25,
		"salary: 900":                   900,
	}
	for text, want := range cases {
		got, ok := a.ExtractSalary(text)
		require.True(t, ok, text)
		assert.Equal(t, want, got, text)
	}
}

func TestExtractSalary_NoFigure(t *testing.T) {
	a := NewAnalyzer()
	_, ok := a.ExtractSalary("Competitive salary and benefits package")
	assert.False(t, ok)
}

func TestAnalyze_NoSalaryInformation(t *testing.T) {
	a := NewAnalyzer()
	assessment := a.Analyze("Join our engineering team", nil)

	assert.False(t, assessment.AnomalyDetected)
	assert.Zero(t, assessment.AnomalyScore)
	assert.Equal(t, "No salary information found", assessment.Message)
}

func TestAnalyze_ExplicitSalaryOverridesExtraction(t *testing.T) {
	a := NewAnalyzer()
	explicit := 5000.0
	assessment := a.Analyze("Backend engineer position, salary 700k", &explicit)

	assert.Equal(t, 5000.0, assessment.OfferedSalary)
}

func TestAnalyze_MidLevelStrongHighAnomaly(t *testing.T) {
	a := NewAnalyzer()
	explicit := 5000.0
	assessment := a.Analyze("Backend engineer position with no salary stated", &explicit)

	assert.Equal(t, LevelMid, assessment.JobLevel)
	assert.True(t, assessment.AnomalyDetected)
	assert.Greater(t, assessment.AnomalyScore, 0)
	assert.Equal(t, 100, assessment.AnomalyScore)
	assert.Equal(t, "600-1500k", assessment.BenchmarkRange)
}

func TestAnalyze_StrongLowAnomaly(t *testing.T) {
	a := NewAnalyzer()
	explicit := 100.0 // below 0.5 * 600 for mid level
	assessment := a.Analyze("Backend engineer position", &explicit)

	assert.True(t, assessment.AnomalyDetected)
	assert.Greater(t, assessment.AnomalyScore, 0)
	assert.Contains(t, assessment.Message, "below market rate")
}

func TestAnalyze_SoftAnomalyAboveBandMax(t *testing.T) {
	a := NewAnalyzer()
	explicit := 1600.0 // above mid max 1500 but under 1.5x
	assessment := a.Analyze("Backend engineer position", &explicit)

	assert.False(t, assessment.AnomalyDetected)
	assert.Greater(t, assessment.AnomalyScore, 0)
	assert.LessOrEqual(t, assessment.AnomalyScore, 50)
	assert.Contains(t, assessment.Message, "above typical range")
}

func TestAnalyze_WithinBandIsClean(t *testing.T) {
	a := NewAnalyzer()
	explicit := 1000.0
	assessment := a.Analyze("Backend engineer position", &explicit)

	assert.False(t, assessment.AnomalyDetected)
	assert.Zero(t, assessment.AnomalyScore)
	assert.Empty(t, assessment.Message)
}

func TestLoadAnalyzer_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "benchmarks.yaml")
	content := `entry: {min: 100, max: 200, median: 150}
junior: {min: 200, max: 400, median: 300}
mid: {min: 400, max: 800, median: 600}
senior: {min: 800, max: 1600, median: 1200}
lead: {min: 1600, max: 3200, median: 2400}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	a, err := LoadAnalyzer(path)
	require.NoError(t, err)

	explicit := 600.0
	assessment := a.Analyze("Backend engineer position", &explicit)
	assert.Equal(t, "400-800k", assessment.BenchmarkRange)
}

func TestLoadAnalyzer_RejectsMissingLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "benchmarks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`entry: {min: 100, max: 200, median: 150}`), 0o644))

	_, err := LoadAnalyzer(path)
	assert.Error(t, err)
}
