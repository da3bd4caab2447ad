package types

// SalaryAssessment is the output of the salary anomaly detector.
// OfferedSalary and benchmark figures are in thousands per year.
type SalaryAssessment struct {
	AnomalyDetected bool    `json:"anomaly_detected"`
	AnomalyScore    int     `json:"anomaly_score"` // 0-100
	OfferedSalary   float64 `json:"offered_salary,omitempty"`
	JobLevel        string  `json:"job_level,omitempty"`
	BenchmarkRange  string  `json:"benchmark_range,omitempty"`
	ZScore          float64 `json:"z_score,omitempty"`
	Message         string  `json:"message"`
}
