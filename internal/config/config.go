// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	ModelDir       string `json:"model_dir,omitempty"`       // Directory holding the persisted classifier artifact
	RulesFile      string `json:"rules_file,omitempty"`      // Path to a YAML rule table overriding the built-in rules
	BenchmarksFile string `json:"benchmarks_file,omitempty"` // Path to a YAML salary benchmark table
	LexiconFile    string `json:"lexicon_file,omitempty"`    // Path to a YAML keyword lexicon
	CorpusFile     string `json:"corpus_file,omitempty"`     // Path to a JSON training corpus

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	for name, path := range map[string]string{
		"rules_file":      c.RulesFile,
		"benchmarks_file": c.BenchmarksFile,
		"lexicon_file":    c.LexiconFile,
		"corpus_file":     c.CorpusFile,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s not found: %s", name, path)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ModelDir == "" {
		result.ModelDir = defaults.ModelDir
	}
	if result.RulesFile == "" {
		result.RulesFile = defaults.RulesFile
	}
	if result.BenchmarksFile == "" {
		result.BenchmarksFile = defaults.BenchmarksFile
	}
	if result.LexiconFile == "" {
		result.LexiconFile = defaults.LexiconFile
	}
	if result.CorpusFile == "" {
		result.CorpusFile = defaults.CorpusFile
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
