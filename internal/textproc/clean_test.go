package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_Lowercases(t *testing.T) {
	assert.Equal(t, "urgent hiring now", CleanText("URGENT Hiring NOW"))
}

func TestCleanText_StripsURLs(t *testing.T) {
	cleaned := CleanText("Apply at https://example.com/jobs or www.jobs.example now")
	assert.NotContains(t, cleaned, "http")
	assert.NotContains(t, cleaned, "www")
	assert.Contains(t, cleaned, "apply")
}

func TestCleanText_StripsEmailsAndPhones(t *testing.T) {
	cleaned := CleanText("Contact hr@scam.example or call +91 98765 43210 today")
	assert.NotContains(t, cleaned, "@")
	assert.NotContains(t, cleaned, "98765")
	assert.Contains(t, cleaned, "contact")
	assert.Contains(t, cleaned, "today")
}

func TestCleanText_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "pay fee now", CleanText("  pay   fee!!!   now  "))
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
}

func TestTokenize_DropsStopwordsAndShortTokens(t *testing.T) {
	tokens := Tokenize("we are hiring for the role of a senior engineer")
	assert.Equal(t, []string{"hiring", "role", "senior", "engineer"}, tokens)
}

func TestTokenize_Empty(t *testing.T) {
	assert.Nil(t, Tokenize(""))
}

func TestNormalize_FullPipeline(t *testing.T) {
	got := Normalize("URGENT! Pay the registration fee at https://scam.example NOW!")
	assert.Equal(t, "urgent pay registration fee", got)
}
