package modelstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/jobshield/internal/classifier"
	"github.com/jonathan/jobshield/internal/features"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trainedState builds a small real trained state for round-trip tests.
func trainedState(t *testing.T) *classifier.ClassifierState {
	t.Helper()

	texts := []string{
		"Congratulations! Pay Rs 5000 registration fee to confirm joining. WhatsApp only.",
		"Urgent hiring! Send processing fee of Rs 3000 to start immediately. Easy money.",
		"Selected without interview. Pay Rs 2000 deposit. Offer expires today. Telegram only.",
		"Work from home and earn lakhs. Pay Rs 1500 registration. No experience needed.",
		"Instant offer! Pay wallet transfer Rs 4000. Urgent joining within 24 hours.",
		"We invite you for an interview at our Bangalore office next Monday at 10am.",
		"Your application has been reviewed. Please attend the technical round next week.",
		"We are hiring a senior engineer. Competitive salary and benefits. Apply online.",
		"Thank you for applying. Our HR team will contact you to schedule an interview.",
		"Please bring your documents for verification during the onsite interview.",
	}
	labels := []int{1, 1, 1, 1, 1, 0, 0, 0, 0, 0}

	c := classifier.New(features.DefaultLexicon())
	_, err := c.Train(texts, labels)
	require.NoError(t, err)
	return c.State()
}

func TestStore_LoadMissingArtifactIsNotAnError(t *testing.T) {
	store := NewStore(t.TempDir())
	artifact, err := store.Load()
	assert.NoError(t, err)
	assert.Nil(t, artifact)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	state := trainedState(t)
	store := NewStore(t.TempDir())

	artifact, err := FromState(state)
	require.NoError(t, err)
	require.NoError(t, store.Save(artifact))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, ArtifactVersion, loaded.Version)
	assert.Equal(t, state.BestName, loaded.BestName)

	restored, err := loaded.State()
	require.NoError(t, err)
	assert.Equal(t, state.Dim, restored.Dim)
	assert.Equal(t, state.BestName, restored.BestName)

	// The restored model predicts identically to the original.
	vec, err := state.Extractor.Vector("Pay Rs 5000 registration fee via WhatsApp today")
	require.NoError(t, err)
	assert.InDelta(t, state.Best.PredictProba(vec), restored.Best.PredictProba(vec), 1e-12)
}

func TestStore_SaveIsAtomic(t *testing.T) {
	state := trainedState(t)
	dir := t.TempDir()
	store := NewStore(dir)

	artifact, err := FromState(state)
	require.NoError(t, err)
	require.NoError(t, store.Save(artifact))
	require.NoError(t, store.Save(artifact))

	// No temporary files are left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ArtifactFileName, entries[0].Name())
}

func TestStore_RejectsCorruptArtifact(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ArtifactFileName), []byte(`{"version": "not-a-number"}`), 0o644))

	_, err := store.Load()
	assert.Error(t, err)
}

func TestFromState_RejectsNilState(t *testing.T) {
	_, err := FromState(nil)
	assert.Error(t, err)
}

func TestEncodeDecode_EnsembleRoundTrip(t *testing.T) {
	state := trainedState(t)
	require.NotNil(t, state.Ensemble)

	encoded, err := encodeModel(classifier.NameVotingEnsemble, state.Ensemble)
	require.NoError(t, err)
	assert.Equal(t, classifier.KindVotingEnsemble, encoded.Kind)

	decoded, err := decodeModel(encoded)
	require.NoError(t, err)
	ensemble, ok := decoded.(*classifier.VotingEnsemble)
	require.True(t, ok)
	assert.Len(t, ensemble.Members, len(state.Ensemble.Members))
}

func TestDecodeModel_UnknownKind(t *testing.T) {
	_, err := decodeModel(NamedModel{Kind: "perceptron", Params: []byte(`{}`)})
	assert.Error(t, err)
}
