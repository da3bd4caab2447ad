package types

// AnalysisReport is the complete result of one posting analysis, combining
// the fused risk result with each component's raw output.
type AnalysisReport struct {
	RiskScore       float64             `json:"risk_score"`
	RiskTier        RiskTier            `json:"risk_tier"`
	Recommendation  string              `json:"recommendation"`
	ComponentScores ComponentScores     `json:"component_scores"`
	MLResult        PredictionResult    `json:"ml_result"`
	RuleResult      RuleResult          `json:"rule_result"`
	SalaryAnalysis  SalaryAssessment    `json:"salary_analysis"`
	RecruiterScore  RecruiterAssessment `json:"recruiter_score"`
	Explanations    []Explanation       `json:"explanations"`
	Evidence        []Evidence          `json:"evidence"`
}
