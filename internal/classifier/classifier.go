package classifier

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/jonathan/jobshield/internal/features"
	"github.com/jonathan/jobshield/internal/types"
)

// ErrInconsistentModel signals a dimensionality mismatch between the fitted
// vectorizer and the active model. This is a consistency fault and is never
// substituted with a neutral prediction.
var ErrInconsistentModel = errors.New("classifier state is inconsistent")

// DefaultSeed fixes the stochastic parts of training so retraining on the
// same corpus reproduces the same best-model choice.
const DefaultSeed = 42

// defaultModelName is reported when no trained model is available.
const defaultModelName = "default"

// Training parameters.
const (
	testFraction = 0.2
	cvFolds      = 5
	minSamples   = 10
)

// ClassifierState is one immutable trained state: the fitted feature
// extractor, the selected best model and, when distinct, the voting
// ensemble. It is read-only after training; a retrain builds a new state.
type ClassifierState struct {
	Extractor *features.Extractor
	Best      Model
	BestName  string
	Ensemble  *VotingEnsemble
	Dim       int
}

// Classifier owns the swappable classifier state. Predictions read the
// current state through an atomic pointer, so concurrent inference needs no
// locking and an in-flight prediction keeps using the old state during a
// retrain.
type Classifier struct {
	state   atomic.Pointer[ClassifierState]
	lexicon features.Lexicon
	seed    int64
}

// New creates a classifier with no trained state. Predictions degrade to a
// neutral default until Train or Restore installs a state.
func New(lexicon features.Lexicon) *Classifier {
	return &Classifier{lexicon: lexicon, seed: DefaultSeed}
}

// State returns the active trained state, or nil when untrained.
func (c *Classifier) State() *ClassifierState {
	return c.state.Load()
}

// Restore atomically installs a previously persisted state.
func (c *Classifier) Restore(state *ClassifierState) {
	c.state.Store(state)
}

// Train fits the vectorizer on the full corpus, evaluates the candidate
// roster with stratified cross-validation, selects the best model (or the
// soft-voting ensemble when its held-out F1 is higher) and atomically swaps
// it in as the active state.
func (c *Classifier) Train(texts []string, labels []int) (*types.TrainingReport, error) {
	if len(texts) != len(labels) {
		return nil, fmt.Errorf("corpus size mismatch: %d texts, %d labels", len(texts), len(labels))
	}
	if len(texts) < minSamples {
		return nil, fmt.Errorf("corpus too small: need at least %d samples, got %d", minSamples, len(texts))
	}
	scamCount := 0
	for _, label := range labels {
		if label != 0 && label != 1 {
			return nil, fmt.Errorf("labels must be 0 or 1, got %d", label)
		}
		scamCount += label
	}
	if scamCount == 0 || scamCount == len(labels) {
		return nil, errors.New("corpus must contain both scam and legitimate samples")
	}

	extractor := features.NewExtractor(c.lexicon)
	extractor.Fit(texts)

	X := make([][]float64, len(texts))
	for i, text := range texts {
		vec, err := extractor.Vector(text)
		if err != nil {
			return nil, fmt.Errorf("failed to extract features: %w", err)
		}
		X[i] = vec
	}

	rng := rand.New(rand.NewSource(c.seed))
	trainIdx, testIdx := stratifiedSplit(labels, testFraction, rng)
	trainX, trainY := subset(X, labels, trainIdx)
	testX, testY := subset(X, labels, testIdx)
	folds := stratifiedFolds(trainY, cvFolds, rand.New(rand.NewSource(c.seed)))

	report := &types.TrainingReport{
		Samples:     len(texts),
		ScamSamples: scamCount,
	}

	var (
		bestIdx  = -1
		bestCV   = math.Inf(-1)
		trained  []Model
		names    []string
		holdouts []float64
	)
	for _, cand := range candidateRoster(c.seed) {
		mean, std := crossValF1(cand.New, trainX, trainY, folds)

		model := cand.New()
		model.Fit(trainX, trainY)
		holdout := holdoutF1(model, testX, testY)

		trained = append(trained, model)
		names = append(names, cand.Name)
		holdouts = append(holdouts, holdout)
		report.Candidates = append(report.Candidates, types.CandidateReport{
			Name:      cand.Name,
			CVF1Mean:  mean,
			CVF1Std:   std,
			HoldoutF1: holdout,
		})

		if mean > bestCV {
			bestCV = mean
			bestIdx = len(trained) - 1
		}
	}

	ensemble := NewVotingEnsemble(names, trained)
	ensembleF1 := holdoutF1(ensemble, testX, testY)

	state := &ClassifierState{
		Extractor: extractor,
		Best:      trained[bestIdx],
		BestName:  names[bestIdx],
		Ensemble:  ensemble,
		Dim:       extractor.Dim(),
	}
	report.BestModel = names[bestIdx]
	report.BestCVF1 = bestCV
	report.EnsembleF1 = ensembleF1
	if ensembleF1 > holdouts[bestIdx] {
		state.Best = ensemble
		state.BestName = NameVotingEnsemble
		report.BestModel = NameVotingEnsemble
		report.EnsembleSelected = true
	}

	c.state.Store(state)
	return report, nil
}

// Predict returns the fraud probability for one posting. When no model has
// been trained or loaded it returns the documented neutral default instead
// of failing; a dimensionality mismatch returns ErrInconsistentModel.
func (c *Classifier) Predict(text string) (types.PredictionResult, error) {
	state := c.state.Load()
	if state == nil {
		return types.PredictionResult{
			Probability: 50.0,
			Confidence:  types.ConfidenceLow,
			Model:       defaultModelName,
		}, nil
	}

	vec, err := state.Extractor.Vector(text)
	if err != nil {
		return types.PredictionResult{}, fmt.Errorf("%w: %v", ErrInconsistentModel, err)
	}
	if len(vec) != state.Dim {
		return types.PredictionResult{}, fmt.Errorf("%w: feature vector has %d dimensions, model expects %d",
			ErrInconsistentModel, len(vec), state.Dim)
	}

	probability := round2(state.Best.PredictProba(vec) * 100)
	return types.PredictionResult{
		IsScam:          probability >= 50,
		Probability:     probability,
		Confidence:      confidenceTier(probability),
		Model:           state.BestName,
		SuspiciousLines: SuspiciousLines(text, c.lexicon),
	}, nil
}

// confidenceTier buckets a probability by its distance from the 50-point
// midpoint into three non-overlapping bands.
func confidenceTier(probability float64) string {
	distance := math.Abs(probability - 50)
	switch {
	case distance >= 30:
		return types.ConfidenceHigh
	case distance >= 10:
		return types.ConfidenceMedium
	default:
		return types.ConfidenceLow
	}
}

// crossValF1 runs k-fold cross-validation with a fresh model per fold and
// returns the mean and standard deviation of the fold F1 scores.
func crossValF1(newModel func() Model, X [][]float64, y []int, folds [][]int) (mean, std float64) {
	scores := make([]float64, 0, len(folds))
	for f, valIdx := range folds {
		if len(valIdx) == 0 {
			continue
		}
		var trainIdx []int
		for g, fold := range folds {
			if g != f {
				trainIdx = append(trainIdx, fold...)
			}
		}
		trainX, trainY := subset(X, y, trainIdx)
		valX, valY := subset(X, y, valIdx)

		model := newModel()
		model.Fit(trainX, trainY)
		scores = append(scores, holdoutF1(model, valX, valY))
	}

	if len(scores) == 0 {
		return 0, 0
	}
	for _, s := range scores {
		mean += s
	}
	mean /= float64(len(scores))
	for _, s := range scores {
		std += (s - mean) * (s - mean)
	}
	std = math.Sqrt(std / float64(len(scores)))
	return mean, std
}

// holdoutF1 evaluates a trained model's F1 on a held-out set.
func holdoutF1(model Model, X [][]float64, y []int) float64 {
	preds := make([]int, len(X))
	for i, row := range X {
		preds[i] = Predict(model, row)
	}
	return f1Score(y, preds)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
