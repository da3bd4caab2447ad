package classifier

import (
	"math"
	"sort"
)

// RegressionNode is one node of a fitted regression tree used by the
// boosted ensemble. Leaf nodes carry an additive log-odds adjustment.
type RegressionNode struct {
	Leaf      bool            `json:"leaf,omitempty"`
	Value     float64         `json:"value,omitempty"`
	Feature   int             `json:"feature,omitempty"`
	Threshold float64         `json:"threshold,omitempty"`
	Left      *RegressionNode `json:"left,omitempty"`
	Right     *RegressionNode `json:"right,omitempty"`
}

// GradientBoosting is a boosted ensemble of shallow regression trees fit to
// the logistic-loss gradients, with Newton-step leaf values.
type GradientBoosting struct {
	NumTrees     int               `json:"num_trees"`
	MaxDepth     int               `json:"max_depth"`
	LearningRate float64           `json:"learning_rate"`
	InitScore    float64           `json:"init_score"`
	Trees        []*RegressionNode `json:"trees"`
}

// NewGradientBoosting creates an untrained boosted ensemble.
func NewGradientBoosting(numTrees, maxDepth int, learningRate float64) *GradientBoosting {
	return &GradientBoosting{
		NumTrees:     numTrees,
		MaxDepth:     maxDepth,
		LearningRate: learningRate,
	}
}

// Kind returns the model's artifact tag.
func (m *GradientBoosting) Kind() string { return KindGradientBoosting }

// Fit boosts NumTrees regression trees against the logistic loss.
func (m *GradientBoosting) Fit(X [][]float64, y []int) {
	if len(X) == 0 {
		return
	}

	pos := 0
	for _, label := range y {
		pos += label
	}
	p := float64(pos) / float64(len(y))
	// Clamp the prior away from the degenerate single-class log-odds.
	if p < 1e-6 {
		p = 1e-6
	}
	if p > 1-1e-6 {
		p = 1 - 1e-6
	}
	m.InitScore = math.Log(p / (1 - p))

	scores := make([]float64, len(X))
	for i := range scores {
		scores[i] = m.InitScore
	}

	indices := make([]int, len(X))
	for i := range indices {
		indices[i] = i
	}

	residuals := make([]float64, len(X))
	hessians := make([]float64, len(X))
	m.Trees = make([]*RegressionNode, 0, m.NumTrees)
	for t := 0; t < m.NumTrees; t++ {
		for i := range X {
			prob := sigmoid(scores[i])
			residuals[i] = float64(y[i]) - prob
			hessians[i] = prob * (1 - prob)
		}

		root := growRegression(X, residuals, hessians, indices, m.MaxDepth)
		m.Trees = append(m.Trees, root)

		for i, row := range X {
			scores[i] += m.LearningRate * predictRegression(root, row)
		}
	}
}

// PredictProba applies the boosted log-odds through the sigmoid.
func (m *GradientBoosting) PredictProba(x []float64) float64 {
	score := m.InitScore
	for _, tree := range m.Trees {
		score += m.LearningRate * predictRegression(tree, x)
	}
	return sigmoid(score)
}

func predictRegression(node *RegressionNode, x []float64) float64 {
	if node == nil {
		return 0
	}
	for !node.Leaf {
		if node.Feature < len(x) && x[node.Feature] <= node.Threshold {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node.Value
}

// growRegression fits a variance-reduction regression tree to the residuals.
// Leaf values use the Newton step sum(residual)/sum(hessian).
func growRegression(X [][]float64, residuals, hessians []float64, indices []int, depth int) *RegressionNode {
	if depth <= 0 || len(indices) < 2 {
		return &RegressionNode{Leaf: true, Value: leafValue(residuals, hessians, indices)}
	}

	feature, threshold, ok := bestRegressionSplit(X, residuals, indices)
	if !ok {
		return &RegressionNode{Leaf: true, Value: leafValue(residuals, hessians, indices)}
	}

	var left, right []int
	for _, i := range indices {
		if X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &RegressionNode{Leaf: true, Value: leafValue(residuals, hessians, indices)}
	}

	return &RegressionNode{
		Feature:   feature,
		Threshold: threshold,
		Left:      growRegression(X, residuals, hessians, left, depth-1),
		Right:     growRegression(X, residuals, hessians, right, depth-1),
	}
}

func leafValue(residuals, hessians []float64, indices []int) float64 {
	var num, den float64
	for _, i := range indices {
		num += residuals[i]
		den += hessians[i]
	}
	if den < 1e-12 {
		return 0
	}
	return num / den
}

// bestRegressionSplit minimizes the summed squared residual error of the
// two children. Thresholds are midpoints between distinct consecutive
// values, evaluated in one sorted prefix scan per feature.
func bestRegressionSplit(X [][]float64, residuals []float64, indices []int) (int, float64, bool) {
	dim := len(X[indices[0]])
	total := len(indices)

	var totalSum, totalSq float64
	for _, i := range indices {
		totalSum += residuals[i]
		totalSq += residuals[i] * residuals[i]
	}

	bestErr := totalSq - totalSum*totalSum/float64(total)
	bestFeature, bestThreshold := -1, 0.0
	found := false

	pairs := make([]splitPair, total)
	for feature := 0; feature < dim; feature++ {
		for pos, i := range indices {
			pairs[pos] = splitPair{value: X[i][feature], target: residuals[i]}
		}
		sort.Slice(pairs, func(a, b int) bool { return pairs[a].value < pairs[b].value })

		nL := 0
		var sumL, sqL float64
		for vi := 0; vi < total-1; vi++ {
			nL++
			sumL += pairs[vi].target
			sqL += pairs[vi].target * pairs[vi].target
			if pairs[vi+1].value == pairs[vi].value {
				continue
			}

			nR := total - nL
			sumR := totalSum - sumL
			sqR := totalSq - sqL
			errL := sqL - sumL*sumL/float64(nL)
			errR := sqR - sumR*sumR/float64(nR)
			if errL+errR < bestErr-1e-12 {
				bestErr = errL + errR
				bestFeature = feature
				bestThreshold = (pairs[vi].value + pairs[vi+1].value) / 2
				found = true
			}
		}
	}

	return bestFeature, bestThreshold, found
}
