package features

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLexicon_CoversFixedCategories(t *testing.T) {
	lexicon := DefaultLexicon()

	for _, category := range []string{
		CategoryPayment, CategoryUrgency, CategorySuspiciousContact,
		CategoryNoInterview, CategoryUnrealisticMoney, CategoryGeneric,
	} {
		assert.NotEmpty(t, lexicon[category], "category %s should have phrases", category)
	}
}

func TestLoadLexicon_MixedCasePhrasesMatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	custom := `payment:
  - Registration Fee
  - Processing FEE
urgency:
  - act now
`
	require.NoError(t, os.WriteFile(path, []byte(custom), 0o644))

	lexicon, err := LoadLexicon(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"registration fee", "processing fee"}, lexicon["payment"])

	f := ExtractEngineered("Pay the REGISTRATION FEE now", lexicon)
	assert.Equal(t, 1, f.CategoryHits["payment"])
}

func TestLoadLexicon_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadLexicon(filepath.Join(dir, "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("empty lexicon", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
		_, err := LoadLexicon(path)
		assert.ErrorContains(t, err, "defines no categories")
	})
}
