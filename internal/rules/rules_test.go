package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_CleanTextScoresZero(t *testing.T) {
	engine := NewEngine()
	result := engine.Check("We invite you for an interview at our Bangalore office next Monday.")

	assert.Empty(t, result.Triggered)
	assert.Zero(t, result.Score)
	assert.False(t, result.HighConfidenceScam)
}

func TestCheck_MatchesAreCaseInsensitive(t *testing.T) {
	engine := NewEngine()
	result := engine.Check("PAY REGISTRATION FEE immediately")

	require.NotEmpty(t, result.Triggered)
	assert.Equal(t, "payment_request", result.Triggered[0].Category)
}

func TestCheck_ScamScenarioFlagsHighConfidence(t *testing.T) {
	engine := NewEngine()
	text := "Pay Rs 5000 registration fee to confirm. Contact via WhatsApp only. " +
		"Congratulations, selected without interview!"

	result := engine.Check(text)

	categories := map[string]bool{}
	for _, match := range result.Triggered {
		categories[match.Category] = true
	}
	assert.True(t, categories["payment_request"])
	assert.True(t, categories["instant_offer"])
	assert.True(t, categories["suspicious_contact"])
	assert.GreaterOrEqual(t, result.Score, 50)
	assert.True(t, result.HighConfidenceScam)
}

func TestCheck_ScoreIsClampedAt100(t *testing.T) {
	engine := NewEngine()
	text := "pay registration fee, interview fee, processing fee, deposit required, " +
		"send money, wallet transfer, verification fee, training fee, onboarding fee"

	result := engine.Check(text)
	assert.Equal(t, 100, result.Score)
	assert.True(t, result.HighConfidenceScam)
}

func TestCheck_ScoreIsMonotonicInMatches(t *testing.T) {
	engine := NewEngine()
	one := engine.Check("pay registration fee")
	two := engine.Check("pay registration fee and join within 24 hours")

	assert.Greater(t, two.Score, one.Score)
	assert.Greater(t, len(two.Triggered), len(one.Triggered))
}

func TestCheck_RepeatedPatternsAreNotDeduplicated(t *testing.T) {
	engine := NewEngine()
	// "pay registration fee" also contains "registration fee"; both rules count.
	result := engine.Check("pay registration fee now")
	assert.GreaterOrEqual(t, len(result.Triggered), 2)
	assert.Equal(t, 60, result.Score)
}

func TestEvidence_QuotesMatchedPhrases(t *testing.T) {
	engine := NewEngine()
	text := "Contact via WhatsApp only and pay registration fee"
	result := engine.Check(text)

	evidence := engine.Evidence(text, result.Triggered)
	require.NotEmpty(t, evidence)
	phrases := map[string]bool{}
	for _, e := range evidence {
		phrases[e.Phrase] = true
	}
	assert.True(t, phrases["whatsapp only"])
	assert.True(t, phrases["pay registration fee"])
}

func TestCheck_IsDeterministic(t *testing.T) {
	engine := NewEngine()
	text := "urgent joining, easy money, whatsapp only, pay registration fee"

	first := engine.Check(text)
	second := engine.Check(text)
	assert.Equal(t, first, second)
}

func TestLoadEngine_OverridesTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	custom := `rules:
  - category: crypto_payment
    severity: 40
    patterns:
      - pay in bitcoin
`
	require.NoError(t, os.WriteFile(path, []byte(custom), 0o644))

	engine, err := LoadEngine(path)
	require.NoError(t, err)

	result := engine.Check("Please pay in bitcoin to secure the role")
	require.Len(t, result.Triggered, 1)
	assert.Equal(t, "crypto_payment", result.Triggered[0].Category)
	assert.Equal(t, 40, result.Score)

	// The built-in categories are gone.
	assert.Empty(t, engine.Check("pay registration fee").Triggered)
}

func TestLoadEngine_MixedCasePatternsMatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	custom := `rules:
  - category: payment_request
    severity: 30
    patterns:
      - Registration Fee
`
	require.NoError(t, os.WriteFile(path, []byte(custom), 0o644))

	engine, err := LoadEngine(path)
	require.NoError(t, err)

	result := engine.Check("Pay the REGISTRATION FEE now")
	require.Len(t, result.Triggered, 1)
	assert.Equal(t, "registration fee", result.Triggered[0].Pattern)
	assert.Equal(t, 30, result.Score)
}

func TestLoadEngine_RejectsInvalidTables(t *testing.T) {
	dir := t.TempDir()

	for name, content := range map[string]string{
		"empty.yaml":    "rules: []",
		"severity.yaml": "rules:\n  - category: x\n    severity: 0\n    patterns: [a]",
		"patterns.yaml": "rules:\n  - category: x\n    severity: 10\n    patterns: []",
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		_, err := LoadEngine(path)
		assert.Error(t, err, name)
	}
}
