package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, expected := range []string{"analyze", "train", "rules", "history", "sample"} {
		assert.True(t, names[expected], "command %s should be registered", expected)
	}
}

func TestSampleAddFlags(t *testing.T) {
	for _, name := range []string{"text", "file", "label", "db"} {
		assert.NotNil(t, sampleAddCmd.Flags().Lookup(name), "sample add should define --%s", name)
	}
}

func TestSampleAddRejectsBadLabel(t *testing.T) {
	rootCmd.SetArgs([]string{"sample", "add", "--text", "pay fee now", "--label", "2"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid label")
}

func TestHistoryIDFlagRegistered(t *testing.T) {
	assert.NotNil(t, historyCmd.Flags().Lookup("id"))
	assert.NotNil(t, historyCmd.Flags().Lookup("limit"))
}

func TestAnalyzeFlags(t *testing.T) {
	for _, name := range []string{
		"text", "file", "email", "contact", "profile", "salary",
		"company-confidence", "model-dir", "rules", "benchmarks",
		"lexicon", "config", "db", "json", "verbose",
	} {
		assert.NotNil(t, analyzeCmd.Flags().Lookup(name), "analyze should define --%s", name)
	}
}

func TestTrainRequiresModelDir(t *testing.T) {
	rootCmd.SetArgs([]string{"train"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model-dir")
}

func TestAnalyzeRequiresTextOrFile(t *testing.T) {
	rootCmd.SetArgs([]string{"analyze"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "either --text or --file is required")
}
