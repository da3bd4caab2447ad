package types

// RiskTier is the ordinal classification of a fused risk score.
type RiskTier string

// Risk tiers, from most to least severe.
const (
	TierCriticalFraud      RiskTier = "CRITICAL_FRAUD"
	TierHighScamLikelihood RiskTier = "HIGH_SCAM_LIKELIHOOD"
	TierModerateRisk       RiskTier = "MODERATE_RISK"
	TierLowRisk            RiskTier = "LOW_RISK"
)

// RiskSignals holds the five normalized inputs to risk fusion.
// All values are on a 0-100 scale.
type RiskSignals struct {
	MLProbability       float64 `json:"ml_probability"`
	RuleScore           float64 `json:"rule_score"`
	CompanyConfidence   float64 `json:"company_confidence"`
	SalaryAnomalyScore  float64 `json:"salary_anomaly_score"`
	RecruiterTrustScore float64 `json:"recruiter_trust_score"`
}

// ComponentScores is the per-component breakdown of a fused risk score.
// Confidence and trust appear here already inverted to risk-space.
type ComponentScores struct {
	MLProbability float64 `json:"ml_probability"`
	RuleScore     float64 `json:"rule_score"`
	CompanyRisk   float64 `json:"company_risk"`
	SalaryAnomaly float64 `json:"salary_anomaly"`
	RecruiterRisk float64 `json:"recruiter_risk"`
}

// Explanation is a threshold-gated, severity-tagged justification for a
// component's contribution to the fused score.
type Explanation struct {
	Factor   string `json:"factor"`
	Severity string `json:"severity"`
	Detail   string `json:"detail"`
}

// RiskResult is the output of the fusion engine. It is never mutated after
// creation; a new analysis produces a new RiskResult.
type RiskResult struct {
	RiskScore       float64         `json:"risk_score"` // 0-100, two decimals
	RiskTier        RiskTier        `json:"risk_tier"`
	Recommendation  string          `json:"recommendation"`
	ComponentScores ComponentScores `json:"component_scores"`
}
