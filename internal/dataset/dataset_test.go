package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltInCorpus(t *testing.T) {
	samples := BuiltIn()
	require.NotEmpty(t, samples)

	var scam, legit int
	for _, sample := range samples {
		require.NotEmpty(t, sample.Text)
		require.Contains(t, []int{0, 1}, sample.Label)
		if sample.Label == 1 {
			scam++
		} else {
			legit++
		}
	}
	assert.GreaterOrEqual(t, scam, 10, "expected a substantial scam class")
	assert.GreaterOrEqual(t, legit, 10, "expected a substantial legitimate class")
}

func TestBuiltInReturnsCopy(t *testing.T) {
	first := BuiltIn()
	first[0].Text = "mutated"
	second := BuiltIn()
	assert.NotEqual(t, "mutated", second[0].Text)
}

func TestSplit(t *testing.T) {
	samples := []Sample{
		{Text: "pay registration fee now", Label: 1},
		{Text: "interview scheduled for monday", Label: 0},
	}
	texts, labels := Split(samples)
	assert.Equal(t, []string{"pay registration fee now", "interview scheduled for monday"}, texts)
	assert.Equal(t, []int{1, 0}, labels)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.json")
	content := `[{"text":"pay fee via whatsapp","label":1},{"text":"please attend the interview","label":0}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	samples, err := Load(path)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, 1, samples[0].Label)
	assert.Equal(t, "please attend the interview", samples[1].Text)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "absent.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		_, err := Load(path)
		assert.ErrorContains(t, err, "failed to parse corpus JSON")
	})

	t.Run("empty corpus", func(t *testing.T) {
		path := filepath.Join(dir, "empty.json")
		require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))
		_, err := Load(path)
		assert.ErrorContains(t, err, "contains no samples")
	})

	t.Run("invalid label", func(t *testing.T) {
		path := filepath.Join(dir, "label.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"text":"hello there","label":3}]`), 0o644))
		_, err := Load(path)
		assert.ErrorContains(t, err, "invalid label")
	})

	t.Run("empty text", func(t *testing.T) {
		path := filepath.Join(dir, "text.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"text":"","label":0}]`), 0o644))
		_, err := Load(path)
		assert.ErrorContains(t, err, "empty text")
	})
}
