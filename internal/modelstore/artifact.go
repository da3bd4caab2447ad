// Package modelstore persists trained classifier state as a JSON artifact:
// the fitted feature extractor plus the selected model (and the voting
// ensemble when it is distinct), written atomically and validated against a
// JSON Schema before use.
package modelstore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/jobshield/internal/classifier"
	"github.com/jonathan/jobshield/internal/features"
)

// ArtifactVersion is bumped when the artifact layout changes incompatibly.
const ArtifactVersion = 1

// NamedModel is a tagged serialized model variant: the kind selects the
// concrete parameter type at decode time.
type NamedModel struct {
	Kind   string          `json:"kind"`
	Name   string          `json:"name"`
	Params json.RawMessage `json:"params"`
}

// Artifact is the on-disk representation of one trained classifier state.
type Artifact struct {
	Version   int                 `json:"version"`
	TrainedAt time.Time           `json:"trained_at"`
	Extractor *features.Extractor `json:"extractor"`
	BestName  string              `json:"best_model_name"`
	Best      NamedModel          `json:"best_model"`
	Ensemble  *NamedModel         `json:"ensemble,omitempty"`
}

// ensembleParams is the serialized payload of a voting ensemble.
type ensembleParams struct {
	Names   []string     `json:"names"`
	Members []NamedModel `json:"members"`
}

// FromState builds a persistable artifact from a trained state. The
// ensemble is stored separately only when it is not already the best model.
func FromState(state *classifier.ClassifierState) (*Artifact, error) {
	if state == nil || state.Best == nil {
		return nil, fmt.Errorf("cannot persist a nil classifier state")
	}

	best, err := encodeModel(state.BestName, state.Best)
	if err != nil {
		return nil, fmt.Errorf("failed to encode best model: %w", err)
	}

	artifact := &Artifact{
		Version:   ArtifactVersion,
		TrainedAt: time.Now().UTC(),
		Extractor: state.Extractor,
		BestName:  state.BestName,
		Best:      best,
	}

	if state.Ensemble != nil && state.Best.Kind() != classifier.KindVotingEnsemble {
		ensemble, err := encodeModel(classifier.NameVotingEnsemble, state.Ensemble)
		if err != nil {
			return nil, fmt.Errorf("failed to encode ensemble: %w", err)
		}
		artifact.Ensemble = &ensemble
	}

	return artifact, nil
}

// State reconstructs a classifier state from the artifact.
func (a *Artifact) State() (*classifier.ClassifierState, error) {
	if a.Extractor == nil || !a.Extractor.Fitted() {
		return nil, fmt.Errorf("artifact has no fitted extractor")
	}

	best, err := decodeModel(a.Best)
	if err != nil {
		return nil, fmt.Errorf("failed to decode best model: %w", err)
	}

	state := &classifier.ClassifierState{
		Extractor: a.Extractor,
		Best:      best,
		BestName:  a.BestName,
		Dim:       a.Extractor.Dim(),
	}

	if ensemble, ok := best.(*classifier.VotingEnsemble); ok {
		state.Ensemble = ensemble
	} else if a.Ensemble != nil {
		decoded, err := decodeModel(*a.Ensemble)
		if err != nil {
			return nil, fmt.Errorf("failed to decode ensemble: %w", err)
		}
		if ensemble, ok := decoded.(*classifier.VotingEnsemble); ok {
			state.Ensemble = ensemble
		}
	}

	return state, nil
}

// encodeModel serializes a trained model into its tagged variant.
func encodeModel(name string, m classifier.Model) (NamedModel, error) {
	var payload any = m
	if ensemble, ok := m.(*classifier.VotingEnsemble); ok {
		members := make([]NamedModel, len(ensemble.Members))
		for i, member := range ensemble.Members {
			memberName := ""
			if i < len(ensemble.Names) {
				memberName = ensemble.Names[i]
			}
			encoded, err := encodeModel(memberName, member)
			if err != nil {
				return NamedModel{}, err
			}
			members[i] = encoded
		}
		payload = ensembleParams{Names: ensemble.Names, Members: members}
	}

	params, err := json.Marshal(payload)
	if err != nil {
		return NamedModel{}, fmt.Errorf("failed to marshal %s params: %w", m.Kind(), err)
	}
	return NamedModel{Kind: m.Kind(), Name: name, Params: params}, nil
}

// decodeModel reconstructs a model from its tagged variant.
func decodeModel(nm NamedModel) (classifier.Model, error) {
	switch nm.Kind {
	case classifier.KindLogisticRegression:
		var m classifier.LogisticRegression
		if err := json.Unmarshal(nm.Params, &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal logistic regression: %w", err)
		}
		return &m, nil
	case classifier.KindDecisionTree:
		var m classifier.DecisionTree
		if err := json.Unmarshal(nm.Params, &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal decision tree: %w", err)
		}
		return &m, nil
	case classifier.KindKNN:
		var m classifier.KNN
		if err := json.Unmarshal(nm.Params, &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal knn: %w", err)
		}
		return &m, nil
	case classifier.KindRandomForest:
		var m classifier.RandomForest
		if err := json.Unmarshal(nm.Params, &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal random forest: %w", err)
		}
		return &m, nil
	case classifier.KindGradientBoosting:
		var m classifier.GradientBoosting
		if err := json.Unmarshal(nm.Params, &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal gradient boosting: %w", err)
		}
		return &m, nil
	case classifier.KindVotingEnsemble:
		var params ensembleParams
		if err := json.Unmarshal(nm.Params, &params); err != nil {
			return nil, fmt.Errorf("failed to unmarshal voting ensemble: %w", err)
		}
		members := make([]classifier.Model, len(params.Members))
		for i, member := range params.Members {
			decoded, err := decodeModel(member)
			if err != nil {
				return nil, err
			}
			members[i] = decoded
		}
		return classifier.NewVotingEnsemble(params.Names, members), nil
	default:
		return nil, fmt.Errorf("unknown model kind %q", nm.Kind)
	}
}
