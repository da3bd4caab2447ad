package modelstore

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
)

// ArtifactFileName is the artifact file name inside the model directory.
const ArtifactFileName = "classifier.json"

//go:embed artifact_schema.json
var artifactSchema string

// Store reads and writes the classifier artifact under a model directory.
type Store struct {
	Dir string
}

// NewStore creates a store rooted at the given directory.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// Path returns the artifact file path.
func (s *Store) Path() string {
	return filepath.Join(s.Dir, ArtifactFileName)
}

// Save writes the artifact atomically: the JSON is written to a temporary
// file in the same directory and renamed over the target, so readers never
// observe a partially written artifact.
func (s *Store) Save(artifact *Artifact) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create model directory %s: %w", s.Dir, err)
	}

	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}

	tmp, err := os.CreateTemp(s.Dir, ArtifactFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary artifact file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close artifact file: %w", err)
	}
	if err := os.Rename(tmpName, s.Path()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace artifact: %w", err)
	}

	return nil
}

// Load reads and validates the artifact. A missing artifact is not an
// error: Load returns (nil, nil) and callers fall back to the untrained
// neutral prediction.
func (s *Store) Load() (*Artifact, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read artifact %s: %w", s.Path(), err)
	}

	if err := validateArtifact(data); err != nil {
		return nil, fmt.Errorf("artifact %s is invalid: %w", s.Path(), err)
	}

	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", s.Path(), err)
	}
	if artifact.Version != ArtifactVersion {
		return nil, fmt.Errorf("artifact %s has version %d, expected %d", s.Path(), artifact.Version, ArtifactVersion)
	}

	return &artifact, nil
}

// validateArtifact checks the raw JSON against the embedded artifact schema.
func validateArtifact(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(artifactSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return fmt.Errorf("schema violation at %s: %s", first.Field(), first.Description())
	}
	return nil
}
