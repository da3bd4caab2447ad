// Package fusion combines the normalized component signals into one
// weighted risk score with a tier, a fixed recommendation and
// threshold-gated explanations.
package fusion

import (
	"fmt"
	"math"

	"github.com/jonathan/jobshield/internal/types"
)

// Fusion weights over the five normalized signals. They sum to 1.0.
const (
	mlWeight        = 0.35
	ruleWeight      = 0.25
	companyWeight   = 0.20
	salaryWeight    = 0.10
	recruiterWeight = 0.10
)

// Tier thresholds, inclusive on the lower edge of each band.
const (
	criticalThreshold = 75
	highThreshold     = 50
	moderateThreshold = 30
)

// Explanation thresholds per raw signal.
const (
	mlExplainThreshold        = 60
	ruleExplainThreshold      = 40
	companyExplainThreshold   = 50
	salaryExplainThreshold    = 30
	recruiterExplainThreshold = 40
)

// recommendations maps each tier to its fixed recommendation text.
var recommendations = map[types.RiskTier]string{
	types.TierCriticalFraud:      "IGNORE - Report immediately to authorities. Do not engage.",
	types.TierHighScamLikelihood: "AVOID - Strong indicators of fraud. Do not proceed.",
	types.TierModerateRisk:       "PROCEED WITH CAUTION - Verify company and recruiter independently.",
	types.TierLowRisk:            "SAFE TO PROCEED - Standard verification recommended.",
}

// Fuse combines the signals into a risk result. Company confidence and
// recruiter trust are inverted to risk-space first, since high trust must
// lower risk. The result is deterministic and never mutated afterwards.
func Fuse(signals types.RiskSignals) types.RiskResult {
	companyRisk := 100 - clamp(signals.CompanyConfidence)
	recruiterRisk := 100 - clamp(signals.RecruiterTrustScore)

	score := clamp(signals.MLProbability)*mlWeight +
		clamp(signals.RuleScore)*ruleWeight +
		companyRisk*companyWeight +
		clamp(signals.SalaryAnomalyScore)*salaryWeight +
		recruiterRisk*recruiterWeight
	score = math.Round(clamp(score)*100) / 100

	tier := classifyTier(score)
	return types.RiskResult{
		RiskScore:      score,
		RiskTier:       tier,
		Recommendation: recommendations[tier],
		ComponentScores: types.ComponentScores{
			MLProbability: clamp(signals.MLProbability),
			RuleScore:     clamp(signals.RuleScore),
			CompanyRisk:   companyRisk,
			SalaryAnomaly: clamp(signals.SalaryAnomalyScore),
			RecruiterRisk: recruiterRisk,
		},
	}
}

// classifyTier maps a score to its tier, highest band first. Boundary
// values belong to the higher tier.
func classifyTier(score float64) types.RiskTier {
	switch {
	case score >= criticalThreshold:
		return types.TierCriticalFraud
	case score >= highThreshold:
		return types.TierHighScamLikelihood
	case score >= moderateThreshold:
		return types.TierModerateRisk
	default:
		return types.TierLowRisk
	}
}

// Explain re-examines each raw signal against its own threshold and emits
// a severity-tagged explanation only when the threshold is crossed. The
// explanations are gates on the raw signals, not a restatement of the
// weighted contributions.
func Explain(signals types.RiskSignals, _ types.RiskResult) []types.Explanation {
	var explanations []types.Explanation

	if signals.MLProbability > mlExplainThreshold {
		explanations = append(explanations, types.Explanation{
			Factor:   "ML Model Detection",
			Severity: "high",
			Detail:   fmt.Sprintf("AI model detected %.1f%% fraud probability", signals.MLProbability),
		})
	}
	if signals.RuleScore > ruleExplainThreshold {
		explanations = append(explanations, types.Explanation{
			Factor:   "Fraud Pattern Match",
			Severity: "high",
			Detail:   fmt.Sprintf("Matched known scam patterns (score: %.0f)", signals.RuleScore),
		})
	}
	if signals.CompanyConfidence < companyExplainThreshold {
		explanations = append(explanations, types.Explanation{
			Factor:   "Company Verification Failed",
			Severity: "medium",
			Detail:   "Company not found or low confidence match in registry",
		})
	}
	if signals.SalaryAnomalyScore > salaryExplainThreshold {
		explanations = append(explanations, types.Explanation{
			Factor:   "Salary Anomaly Detected",
			Severity: "medium",
			Detail:   "Offered salary significantly deviates from market standards",
		})
	}
	if signals.RecruiterTrustScore < recruiterExplainThreshold {
		explanations = append(explanations, types.Explanation{
			Factor:   "Recruiter Credibility Issue",
			Severity: "medium",
			Detail:   "Recruiter using suspicious contact methods or unverified identity",
		})
	}

	return explanations
}

func clamp(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}
