package classifier

import (
	"math/rand"
	"sort"
)

// TreeNode is one node of a fitted decision tree. Leaf nodes carry the
// positive-class probability of the training samples that reached them.
type TreeNode struct {
	Leaf      bool      `json:"leaf,omitempty"`
	Proba     float64   `json:"proba,omitempty"`
	Feature   int       `json:"feature,omitempty"`
	Threshold float64   `json:"threshold,omitempty"`
	Left      *TreeNode `json:"left,omitempty"`
	Right     *TreeNode `json:"right,omitempty"`
}

// DecisionTree is a CART-style binary classification tree split on Gini
// impurity. MaxCandidateFeatures > 0 restricts each split to a random
// feature subset, which is how the random forest decorrelates its trees.
type DecisionTree struct {
	MaxDepth             int       `json:"max_depth"`
	MinSamplesSplit      int       `json:"min_samples_split"`
	MaxCandidateFeatures int       `json:"max_candidate_features,omitempty"`
	Root                 *TreeNode `json:"root"`

	rng *rand.Rand
}

// NewDecisionTree creates an untrained tree with the given depth limit.
func NewDecisionTree(maxDepth int) *DecisionTree {
	return &DecisionTree{
		MaxDepth:        maxDepth,
		MinSamplesSplit: 2,
	}
}

// Kind returns the model's artifact tag.
func (t *DecisionTree) Kind() string { return KindDecisionTree }

// Fit grows the tree on the given matrix and labels.
func (t *DecisionTree) Fit(X [][]float64, y []int) {
	if len(X) == 0 {
		t.Root = &TreeNode{Leaf: true, Proba: 0.5}
		return
	}
	indices := make([]int, len(X))
	for i := range indices {
		indices[i] = i
	}
	t.Root = t.grow(X, y, indices, 0)
}

// PredictProba walks the tree to a leaf probability.
func (t *DecisionTree) PredictProba(x []float64) float64 {
	node := t.Root
	if node == nil {
		return 0.5
	}
	for !node.Leaf {
		if node.Feature < len(x) && x[node.Feature] <= node.Threshold {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node.Proba
}

func (t *DecisionTree) grow(X [][]float64, y []int, indices []int, depth int) *TreeNode {
	proba := positiveFraction(y, indices)
	if depth >= t.MaxDepth || len(indices) < t.MinSamplesSplit || proba == 0 || proba == 1 {
		return &TreeNode{Leaf: true, Proba: proba}
	}

	feature, threshold, ok := t.bestSplit(X, y, indices)
	if !ok {
		return &TreeNode{Leaf: true, Proba: proba}
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
		return &TreeNode{Leaf: true, Proba: proba}
	}

	return &TreeNode{
		Feature:   feature,
		Threshold: threshold,
		Left:      t.grow(X, y, left, depth+1),
		Right:     t.grow(X, y, right, depth+1),
	}
}

// splitPair is one (feature value, label/target) observation, sorted by
// value during split search.
type splitPair struct {
	value  float64
	target float64
}

// bestSplit searches candidate features for the split minimizing weighted
// Gini impurity. Candidate thresholds are midpoints between consecutive
// distinct feature values; a single sorted prefix scan evaluates them all.
func (t *DecisionTree) bestSplit(X [][]float64, y []int, indices []int) (int, float64, bool) {
	dim := len(X[indices[0]])
	candidates := t.candidateFeatures(dim)

	total := len(indices)
	totalPos := 0
	for _, i := range indices {
		totalPos += y[i]
	}

	bestGini := gini(float64(totalPos) / float64(total))
	bestFeature, bestThreshold := -1, 0.0
	found := false

	pairs := make([]splitPair, total)
	for _, feature := range candidates {
		for pos, i := range indices {
			pairs[pos] = splitPair{value: X[i][feature], target: float64(y[i])}
		}
		sort.Slice(pairs, func(a, b int) bool { return pairs[a].value < pairs[b].value })

		nLeft, posLeft := 0, 0.0
		for vi := 0; vi < total-1; vi++ {
			nLeft++
			posLeft += pairs[vi].target
			if pairs[vi+1].value == pairs[vi].value {
				continue
			}

			nRight := total - nLeft
			posRight := float64(totalPos) - posLeft
			weighted := (float64(nLeft)*gini(posLeft/float64(nLeft)) +
				float64(nRight)*gini(posRight/float64(nRight))) / float64(total)
			if weighted < bestGini-1e-12 {
				bestGini = weighted
				bestFeature = feature
				bestThreshold = (pairs[vi].value + pairs[vi+1].value) / 2
				found = true
			}
		}
	}

	return bestFeature, bestThreshold, found
}

// candidateFeatures returns the feature indices considered at one split.
func (t *DecisionTree) candidateFeatures(dim int) []int {
	if t.MaxCandidateFeatures <= 0 || t.MaxCandidateFeatures >= dim || t.rng == nil {
		all := make([]int, dim)
		for i := range all {
			all[i] = i
		}
		return all
	}
	perm := t.rng.Perm(dim)
	return perm[:t.MaxCandidateFeatures]
}

func positiveFraction(y []int, indices []int) float64 {
	if len(indices) == 0 {
		return 0.5
	}
	pos := 0
	for _, i := range indices {
		pos += y[i]
	}
	return float64(pos) / float64(len(indices))
}

// gini returns the Gini impurity of a binary split with positive fraction p.
func gini(p float64) float64 {
	return 2 * p * (1 - p)
}
