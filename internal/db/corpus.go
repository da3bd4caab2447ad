package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/jobshield/internal/dataset"
)

// AddTrainingSample stores one labeled posting for future retraining
func (db *DB) AddTrainingSample(ctx context.Context, text string, label int) (uuid.UUID, error) {
	if label != 0 && label != 1 {
		return uuid.Nil, fmt.Errorf("invalid label %d: must be 0 or 1", label)
	}

	id := uuid.New()
	_, err := db.pool.Exec(ctx,
		`INSERT INTO training_samples (id, sample_text, label) VALUES ($1, $2, $3)`,
		id, text, label,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to add training sample: %w", err)
	}
	return id, nil
}

// LoadCorpus retrieves every stored training sample, oldest first
func (db *DB) LoadCorpus(ctx context.Context) ([]dataset.Sample, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT sample_text, label FROM training_samples ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}
	defer rows.Close()

	var samples []dataset.Sample
	for rows.Next() {
		var sample dataset.Sample
		if err := rows.Scan(&sample.Text, &sample.Label); err != nil {
			return nil, fmt.Errorf("failed to scan training sample: %w", err)
		}
		samples = append(samples, sample)
	}
	return samples, rows.Err()
}
