package types

// ConfidenceHigh, ConfidenceMedium and ConfidenceLow describe how far a
// predicted probability sits from the 50% decision midpoint.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// SuspiciousLine is a single line of the input where keywords from two or
// more lexicon categories co-occur.
type SuspiciousLine struct {
	LineNumber int      `json:"line_number"`
	Text       string   `json:"text"`
	Categories []string `json:"categories"`
	Keywords   []string `json:"keywords"`
}

// PredictionResult is the output of the ML classifier for a single posting.
type PredictionResult struct {
	IsScam          bool             `json:"is_scam"`
	Probability     float64          `json:"probability"` // 0-100, two decimals
	Confidence      string           `json:"confidence"`  // high, medium, low
	Model           string           `json:"model"`
	SuspiciousLines []SuspiciousLine `json:"suspicious_lines,omitempty"`
}

// CandidateReport summarizes the evaluation of one candidate model during training.
type CandidateReport struct {
	Name      string  `json:"name"`
	CVF1Mean  float64 `json:"cv_f1_mean"`
	CVF1Std   float64 `json:"cv_f1_std"`
	HoldoutF1 float64 `json:"holdout_f1"`
}

// TrainingReport is the result of a full training pass.
type TrainingReport struct {
	Samples          int               `json:"samples"`
	ScamSamples      int               `json:"scam_samples"`
	Candidates       []CandidateReport `json:"candidates"`
	BestModel        string            `json:"best_model"`
	BestCVF1         float64           `json:"best_cv_f1"`
	EnsembleF1       float64           `json:"ensemble_f1"`
	EnsembleSelected bool              `json:"ensemble_selected"`
}
