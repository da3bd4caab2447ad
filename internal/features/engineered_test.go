package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEngineered_CategoryHits(t *testing.T) {
	text := "Pay Rs 5000 registration fee. Contact via WhatsApp only. Urgent joining!"
	f := ExtractEngineered(text, DefaultLexicon())

	assert.GreaterOrEqual(t, f.CategoryHits[CategoryPayment], 2) // "pay", "registration", "fee"
	assert.GreaterOrEqual(t, f.CategoryHits[CategorySuspiciousContact], 1)
	assert.GreaterOrEqual(t, f.CategoryHits[CategoryUrgency], 1)
	assert.Zero(t, f.CategoryHits[CategoryNoInterview])
}

func TestExtractEngineered_TextStatistics(t *testing.T) {
	f := ExtractEngineered("Earn NOW!! Why wait?", DefaultLexicon())

	assert.Equal(t, 20, f.TextLength)
	assert.Equal(t, 4, f.WordCount)
	assert.Equal(t, 2, f.ExclamationCount)
	assert.Equal(t, 1, f.QuestionCount)
	assert.Greater(t, f.UppercaseRatio, 0.2)
}

func TestExtractEngineered_Flags(t *testing.T) {
	f := ExtractEngineered("Salary 25 LPA, range 20k to 30k. Call +91 98765 43210. Pay Rs 500.", DefaultLexicon())

	assert.True(t, f.HasCurrency)
	assert.True(t, f.HasPhoneShape)
	assert.True(t, f.HasLPAMention)
	assert.True(t, f.HasSalaryRange)
}

func TestExtractEngineered_NoFlagsOnPlainText(t *testing.T) {
	f := ExtractEngineered("We invite you to an interview at our office next Monday.", DefaultLexicon())

	assert.False(t, f.HasCurrency)
	assert.False(t, f.HasPhoneShape)
	assert.False(t, f.HasLPAMention)
	assert.False(t, f.HasSalaryRange)
}

func TestEngineeredVector_FixedWidth(t *testing.T) {
	lexicon := DefaultLexicon()
	categories := lexicon.Categories()

	a := ExtractEngineered("short text", lexicon).Vector(categories)
	b := ExtractEngineered("a much longer text with Pay Rs 500 fee and WhatsApp contact!!", lexicon).Vector(categories)

	assert.Len(t, a, len(categories)+11)
	assert.Len(t, b, len(a))
}

func TestExtractor_VectorConcatenatesFamilies(t *testing.T) {
	e := NewExtractor(DefaultLexicon())
	e.Fit([]string{
		"pay registration fee immediately",
		"interview scheduled next week",
	})

	vec, err := e.Vector("pay registration fee")
	assert.NoError(t, err)
	assert.Len(t, vec, e.Dim())
}

func TestExtractor_VectorBeforeFit(t *testing.T) {
	e := NewExtractor(DefaultLexicon())
	_, err := e.Vector("pay registration fee")
	assert.ErrorIs(t, err, ErrVectorizerNotFitted)
}
