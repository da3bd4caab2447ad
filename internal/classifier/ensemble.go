package classifier

// VotingEnsemble soft-votes over already-trained member models by averaging
// their predicted probabilities.
type VotingEnsemble struct {
	Names   []string `json:"names"`
	Members []Model  `json:"-"`
}

// NewVotingEnsemble creates an ensemble over trained members.
func NewVotingEnsemble(names []string, members []Model) *VotingEnsemble {
	return &VotingEnsemble{Names: names, Members: members}
}

// Kind returns the model's artifact tag.
func (m *VotingEnsemble) Kind() string { return KindVotingEnsemble }

// Fit is a no-op: members are trained individually before the ensemble is
// assembled.
func (m *VotingEnsemble) Fit(_ [][]float64, _ []int) {}

// PredictProba averages member probabilities.
func (m *VotingEnsemble) PredictProba(x []float64) float64 {
	if len(m.Members) == 0 {
		return 0.5
	}
	sum := 0.0
	for _, member := range m.Members {
		sum += member.PredictProba(x)
	}
	return sum / float64(len(m.Members))
}
