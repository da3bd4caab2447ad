package types

// Trust levels for recruiter assessments, from most to least trusted.
const (
	TrustHigh     = "HIGH_TRUST"
	TrustModerate = "MODERATE_TRUST"
	TrustLow      = "LOW_TRUST"
	TrustNone     = "UNTRUSTED"
)

// Impact polarity of a trust factor.
const (
	ImpactPositive = "positive"
	ImpactNegative = "negative"
	ImpactNeutral  = "neutral"
)

// TrustFactor records one scoring adjustment with its polarity and reason.
type TrustFactor struct {
	Factor string `json:"factor"`
	Impact string `json:"impact"`
	Detail string `json:"detail"`
}

// RecruiterAssessment is the output of the recruiter trust scorer.
type RecruiterAssessment struct {
	TrustScore int           `json:"trust_score"` // 0-100
	TrustLevel string        `json:"trust_level"`
	Factors    []TrustFactor `json:"factors,omitempty"`
}
