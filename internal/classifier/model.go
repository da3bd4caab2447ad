// Package classifier implements the trainable multi-model fraud classifier:
// a fixed roster of candidate models evaluated by cross-validated F1, an
// optional soft-voting ensemble, and graceful neutral predictions when no
// model has been trained or loaded.
package classifier

// Model kind tags used for artifact serialization.
const (
	KindLogisticRegression = "logistic_regression"
	KindDecisionTree       = "decision_tree"
	KindKNN                = "knn"
	KindRandomForest       = "random_forest"
	KindGradientBoosting   = "gradient_boosting"
	KindVotingEnsemble     = "voting_ensemble"
)

// Display names for the candidate models.
const (
	NameLogisticRegression = "Logistic Regression"
	NameDecisionTree       = "Decision Tree"
	NameKNN                = "KNN"
	NameRandomForest       = "Random Forest"
	NameGradientBoosting   = "Gradient Boosting"
	NameVotingEnsemble     = "Voting Ensemble"
)

// Model is a trainable binary classifier over dense feature vectors.
// Labels are 0 (legitimate) and 1 (scam); PredictProba returns the
// probability of the positive class in [0,1].
type Model interface {
	Kind() string
	Fit(X [][]float64, y []int)
	PredictProba(x []float64) float64
}

// Predict applies the implicit 0.5 threshold to a model's probability.
func Predict(m Model, x []float64) int {
	if m.PredictProba(x) >= 0.5 {
		return 1
	}
	return 0
}

// candidate pairs a display name with a constructor for a fresh, untrained
// model, so cross-validation can refit from scratch per fold.
type candidate struct {
	Name string
	New  func() Model
}

// candidateRoster returns the fixed roster of candidate models in a stable
// order. The seed makes stochastic candidates reproducible.
func candidateRoster(seed int64) []candidate {
	return []candidate{
		{NameLogisticRegression, func() Model { return NewLogisticRegression() }},
		{NameDecisionTree, func() Model { return NewDecisionTree(10) }},
		{NameKNN, func() Model { return NewKNN(5) }},
		{NameRandomForest, func() Model { return NewRandomForest(100, 10, seed) }},
		{NameGradientBoosting, func() Model { return NewGradientBoosting(100, 3, 0.1) }},
	}
}
