package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/jobshield/internal/types"
)

// AnalysisRecord is one persisted analysis row.
type AnalysisRecord struct {
	ID        uuid.UUID            `json:"id"`
	JobText   string               `json:"job_text"`
	RiskScore float64              `json:"risk_score"`
	RiskTier  types.RiskTier       `json:"risk_tier"`
	Report    types.AnalysisReport `json:"report"`
	CreatedAt time.Time            `json:"created_at"`
}

// SaveAnalysis stores a completed analysis and returns its ID
func (db *DB) SaveAnalysis(ctx context.Context, jobText string, report *types.AnalysisReport) (uuid.UUID, error) {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis report: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO analyses (id, job_text, risk_score, risk_tier, report)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, jobText, report.RiskScore, string(report.RiskTier), reportJSON,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves a stored analysis by ID. A missing row returns
// (nil, nil).
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*AnalysisRecord, error) {
	var record AnalysisRecord
	var tier string
	var reportJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, job_text, risk_score, risk_tier, report, created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&record.ID, &record.JobText, &record.RiskScore, &tier, &reportJSON, &record.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	record.RiskTier = types.RiskTier(tier)
	if err := json.Unmarshal(reportJSON, &record.Report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis report: %w", err)
	}
	return &record, nil
}

// ListRecentAnalyses retrieves the most recent analyses, newest first
func (db *DB) ListRecentAnalyses(ctx context.Context, limit int) ([]AnalysisRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, job_text, risk_score, risk_tier, report, created_at
		 FROM analyses ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var record AnalysisRecord
		var tier string
		var reportJSON []byte
		if err := rows.Scan(&record.ID, &record.JobText, &record.RiskScore, &tier, &reportJSON, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		record.RiskTier = types.RiskTier(tier)
		if err := json.Unmarshal(reportJSON, &record.Report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis report: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
