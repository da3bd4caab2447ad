package recruiter

import (
	"testing"

	"github.com/jonathan/jobshield/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestScore_NoMetadata(t *testing.T) {
	s := NewScorer()
	assessment := s.Score("", "", "")

	// No inputs means no adjustments: the base score stands.
	assert.Equal(t, 50, assessment.TrustScore)
	assert.Equal(t, types.TrustModerate, assessment.TrustLevel)
	assert.Empty(t, assessment.Factors)
}

func TestScore_CorporateEmailWithEmailContact(t *testing.T) {
	s := NewScorer()
	assessment := s.Score("priya.sharma@infosys.com", "email", "")

	// 50 + 10 (custom domain) + 15 (email contact) = 75; the absent
	// profile contributes nothing.
	assert.Equal(t, 75, assessment.TrustScore)
	assert.Equal(t, types.TrustHigh, assessment.TrustLevel)
	assert.Len(t, assessment.Factors, 2)
}

func TestScore_CorporateRecruiterIsHighTrust(t *testing.T) {
	s := NewScorer()
	assessment := s.Score("jane@acmetech.io", "email", "https://linkedin.com/in/jane")

	// 50 + 10 (custom domain) + 15 (email) + 20 (profile) = 95.
	assert.Equal(t, 95, assessment.TrustScore)
	assert.Equal(t, types.TrustHigh, assessment.TrustLevel)
}

func TestScore_CorporateStyleDomain(t *testing.T) {
	s := NewScorer()
	assessment := s.Score("hr@bigcompany.com", "", "")

	// 50 + 20 (corporate marker) = 70.
	assert.Equal(t, 70, assessment.TrustScore)
	assert.Equal(t, types.TrustHigh, assessment.TrustLevel)
}

func TestScore_MessagingOnlyRecruiterIsUntrusted(t *testing.T) {
	s := NewScorer()
	assessment := s.Score("recruiter99@gmail.com", "WhatsApp only", "")

	// 50 - 20 (free provider) - 25 (messaging) = 5.
	assert.Equal(t, 5, assessment.TrustScore)
	assert.Equal(t, types.TrustNone, assessment.TrustLevel)
}

func TestScore_InvalidEmail(t *testing.T) {
	s := NewScorer()
	assessment := s.Score("not-an-email", "", "")

	// 50 - 10 (invalid email) = 40.
	assert.Equal(t, 40, assessment.TrustScore)
	assert.Equal(t, types.TrustLow, assessment.TrustLevel)
}

func TestScore_MalformedProfileURL(t *testing.T) {
	s := NewScorer()
	assessment := s.Score("", "", "https://example.com/profile")

	// 50 - 5 (malformed profile) = 45.
	assert.Equal(t, 45, assessment.TrustScore)
}

func TestScore_PhoneContact(t *testing.T) {
	s := NewScorer()
	assessment := s.Score("", "phone call", "")

	// 50 + 10 (phone) = 60.
	assert.Equal(t, 60, assessment.TrustScore)
	assert.Equal(t, types.TrustModerate, assessment.TrustLevel)
}

func TestScore_RecordsFactorsWithPolarity(t *testing.T) {
	s := NewScorer()
	assessment := s.Score("recruiter99@gmail.com", "telegram", "https://linkedin.com/in/someone")

	impacts := map[string]string{}
	for _, factor := range assessment.Factors {
		impacts[factor.Factor] = factor.Impact
	}
	assert.Equal(t, types.ImpactNegative, impacts["Email Domain"])
	assert.Equal(t, types.ImpactNegative, impacts["Contact Method"])
	assert.Equal(t, types.ImpactPositive, impacts["Professional Profile"])
}

func TestScore_IsClampedTo100(t *testing.T) {
	s := NewScorer()
	assessment := s.Score("hr@company.com", "email us", "https://linkedin.com/in/hr")

	// 50 + 20 + 15 + 20 = 105 -> 100.
	assert.Equal(t, 100, assessment.TrustScore)
}

func TestScore_ClampedToZero(t *testing.T) {
	s := NewScorer()
	assessment := s.Score("scam@tempmail.com", "telegram only", "javascript:alert(1)")

	// 50 - 20 - 25 - 5 = 0.
	assert.Equal(t, 0, assessment.TrustScore)
	assert.Equal(t, types.TrustNone, assessment.TrustLevel)
}

func TestTrustLevel_Boundaries(t *testing.T) {
	assert.Equal(t, types.TrustHigh, trustLevel(70))
	assert.Equal(t, types.TrustModerate, trustLevel(50))
	assert.Equal(t, types.TrustLow, trustLevel(30))
	assert.Equal(t, types.TrustNone, trustLevel(29))
}
