package classifier

import (
	"math"
	"sort"
)

// KNN is a k-nearest-neighbors classifier over Euclidean distance. The
// training matrix is retained in full; the predicted probability is the
// fraction of positive labels among the k closest training samples.
type KNN struct {
	K int           `json:"k"`
	X [][]float64   `json:"x"`
	Y []int         `json:"y"`
}

// NewKNN creates an untrained KNN model.
func NewKNN(k int) *KNN {
	return &KNN{K: k}
}

// Kind returns the model's artifact tag.
func (m *KNN) Kind() string { return KindKNN }

// Fit stores the training data.
func (m *KNN) Fit(X [][]float64, y []int) {
	m.X = X
	m.Y = y
}

// PredictProba returns the positive fraction among the k nearest neighbors.
func (m *KNN) PredictProba(x []float64) float64 {
	if len(m.X) == 0 {
		return 0.5
	}

	type neighbor struct {
		dist  float64
		label int
	}
	neighbors := make([]neighbor, len(m.X))
	for i, row := range m.X {
		neighbors[i] = neighbor{dist: euclidean(row, x), label: m.Y[i]}
	}
	sort.Slice(neighbors, func(i, j int) bool {
		return neighbors[i].dist < neighbors[j].dist
	})

	k := m.K
	if k > len(neighbors) {
		k = len(neighbors)
	}
	pos := 0
	for _, n := range neighbors[:k] {
		pos += n.label
	}
	return float64(pos) / float64(k)
}

func euclidean(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
