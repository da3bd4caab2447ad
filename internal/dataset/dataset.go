// Package dataset provides the built-in labeled training corpus and corpus
// file loading for the classifier training command.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
)

// Sample is one labeled posting: Label 1 for scam, 0 for legitimate.
type Sample struct {
	Text  string `json:"text"`
	Label int    `json:"label"`
}

// Split separates a corpus into its text and label slices.
func Split(samples []Sample) (texts []string, labels []int) {
	texts = make([]string, len(samples))
	labels = make([]int, len(samples))
	for i, sample := range samples {
		texts[i] = sample.Text
		labels[i] = sample.Label
	}
	return texts, labels
}

// Load reads a corpus from a JSON file holding an array of samples.
func Load(path string) ([]Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file %s: %w", path, err)
	}
	var samples []Sample
	if err := json.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("failed to parse corpus JSON: %w", err)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("corpus file %s contains no samples", path)
	}
	for i, sample := range samples {
		if sample.Text == "" {
			return nil, fmt.Errorf("corpus sample %d has empty text", i)
		}
		if sample.Label != 0 && sample.Label != 1 {
			return nil, fmt.Errorf("corpus sample %d has invalid label %d", i, sample.Label)
		}
	}
	return samples, nil
}

// BuiltIn returns the embedded training corpus.
func BuiltIn() []Sample {
	out := make([]Sample, len(builtInSamples))
	copy(out, builtInSamples)
	return out
}
