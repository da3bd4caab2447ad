package db

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobshield/internal/types"
)

func TestAnalysisRecordType(t *testing.T) {
	record := AnalysisRecord{
		JobText:   "Pay Rs 5000 registration fee. WhatsApp only.",
		RiskScore: 82.35,
		RiskTier:  types.TierCriticalFraud,
	}

	assert.Equal(t, types.TierCriticalFraud, record.RiskTier)
	assert.Equal(t, 82.35, record.RiskScore)
	assert.True(t, record.CreatedAt.IsZero())
}
