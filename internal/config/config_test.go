package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"model_dir": "/var/lib/jobshield",
		"database_url": "postgres://localhost:5432/jobshield",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/var/lib/jobshield", cfg.ModelDir)
	assert.Equal(t, "postgres://localhost:5432/jobshield", cfg.DatabaseURL)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MissingFiles(t *testing.T) {
	cfg := &Config{
		RulesFile: "/nonexistent/rules.yaml",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rules_file not found")
}

func TestValidate_ExistingFiles(t *testing.T) {
	rulesPath := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(rulesPath, []byte("rules: []"), 0644))

	cfg := &Config{RulesFile: rulesPath}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{ModelDir: "/custom/models"}
	defaults := Config{
		ModelDir:    "/default/models",
		DatabaseURL: "postgres://localhost:5432/jobshield",
		Verbose:     true,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "/custom/models", merged.ModelDir)
	assert.Equal(t, "postgres://localhost:5432/jobshield", merged.DatabaseURL)
	assert.True(t, merged.Verbose)
}
