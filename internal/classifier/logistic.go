package classifier

import "math"

// LogisticRegression is a binary logistic model trained with full-batch
// gradient descent. Training is deterministic: weights start at zero and
// samples are visited in corpus order.
type LogisticRegression struct {
	Weights      []float64 `json:"weights"`
	Bias         float64   `json:"bias"`
	LearningRate float64   `json:"learning_rate"`
	Epochs       int       `json:"epochs"`
	L2           float64   `json:"l2"`
}

// NewLogisticRegression creates a logistic model with default hyperparameters.
func NewLogisticRegression() *LogisticRegression {
	return &LogisticRegression{
		LearningRate: 0.5,
		Epochs:       1000,
		L2:           1e-4,
	}
}

// Kind returns the model's artifact tag.
func (m *LogisticRegression) Kind() string { return KindLogisticRegression }

// Fit trains the model on the given matrix and labels.
func (m *LogisticRegression) Fit(X [][]float64, y []int) {
	if len(X) == 0 {
		return
	}
	dim := len(X[0])
	m.Weights = make([]float64, dim)
	m.Bias = 0

	n := float64(len(X))
	grad := make([]float64, dim)
	for epoch := 0; epoch < m.Epochs; epoch++ {
		for j := range grad {
			grad[j] = 0
		}
		gradBias := 0.0
		for i, row := range X {
			err := sigmoid(m.decision(row)) - float64(y[i])
			for j, x := range row {
				if x != 0 {
					grad[j] += err * x
				}
			}
			gradBias += err
		}
		for j := range m.Weights {
			m.Weights[j] -= m.LearningRate * (grad[j]/n + m.L2*m.Weights[j])
		}
		m.Bias -= m.LearningRate * gradBias / n
	}
}

// PredictProba returns the probability of the positive class.
func (m *LogisticRegression) PredictProba(x []float64) float64 {
	return sigmoid(m.decision(x))
}

func (m *LogisticRegression) decision(x []float64) float64 {
	z := m.Bias
	for j, w := range m.Weights {
		if j < len(x) {
			z += w * x[j]
		}
	}
	return z
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
