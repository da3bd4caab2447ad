package classifier

import (
	"math"
	"math/rand"
)

// RandomForest is a bagging ensemble of Gini decision trees, each grown on
// a bootstrap sample with sqrt(dim) candidate features per split. The seed
// fixes the bootstrap and feature draws so training is reproducible.
type RandomForest struct {
	NumTrees int             `json:"num_trees"`
	MaxDepth int             `json:"max_depth"`
	Seed     int64           `json:"seed"`
	Trees    []*DecisionTree `json:"trees"`
}

// NewRandomForest creates an untrained forest.
func NewRandomForest(numTrees, maxDepth int, seed int64) *RandomForest {
	return &RandomForest{
		NumTrees: numTrees,
		MaxDepth: maxDepth,
		Seed:     seed,
	}
}

// Kind returns the model's artifact tag.
func (m *RandomForest) Kind() string { return KindRandomForest }

// Fit grows NumTrees trees on bootstrap resamples of the training data.
func (m *RandomForest) Fit(X [][]float64, y []int) {
	if len(X) == 0 {
		return
	}
	dim := len(X[0])
	maxCandidates := int(math.Sqrt(float64(dim)))
	if maxCandidates < 1 {
		maxCandidates = 1
	}

	rng := rand.New(rand.NewSource(m.Seed))
	m.Trees = make([]*DecisionTree, m.NumTrees)
	for t := 0; t < m.NumTrees; t++ {
		sampleX := make([][]float64, len(X))
		sampleY := make([]int, len(y))
		for i := range sampleX {
			j := rng.Intn(len(X))
			sampleX[i] = X[j]
			sampleY[i] = y[j]
		}

		tree := NewDecisionTree(m.MaxDepth)
		tree.MaxCandidateFeatures = maxCandidates
		tree.rng = rand.New(rand.NewSource(rng.Int63()))
		tree.Fit(sampleX, sampleY)
		m.Trees[t] = tree
	}
}

// PredictProba averages the leaf probabilities across all trees.
func (m *RandomForest) PredictProba(x []float64) float64 {
	if len(m.Trees) == 0 {
		return 0.5
	}
	sum := 0.0
	for _, tree := range m.Trees {
		sum += tree.PredictProba(x)
	}
	return sum / float64(len(m.Trees))
}
