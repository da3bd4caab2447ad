package types

// RuleMatch records a single fraud pattern hit in the posting text.
type RuleMatch struct {
	Category string `json:"category"`
	Pattern  string `json:"pattern"`
	Severity int    `json:"severity"`
}

// RuleResult is the output of the deterministic rule engine.
// Score is clamped to 100; HighConfidenceScam is derived from the
// unclamped severity sum.
type RuleResult struct {
	Triggered          []RuleMatch `json:"triggered_rules"`
	Score              int         `json:"rule_score"`
	HighConfidenceScam bool        `json:"high_confidence_scam"`
}

// Evidence is a matched phrase surfaced as a quotable excerpt.
type Evidence struct {
	Phrase   string `json:"phrase"`
	Category string `json:"category"`
	Severity int    `json:"severity"`
}
