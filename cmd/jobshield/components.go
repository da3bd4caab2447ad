package main

import (
	"fmt"

	"github.com/jonathan/jobshield/internal/classifier"
	"github.com/jonathan/jobshield/internal/config"
	"github.com/jonathan/jobshield/internal/features"
	"github.com/jonathan/jobshield/internal/modelstore"
	"github.com/jonathan/jobshield/internal/pipeline"
	"github.com/jonathan/jobshield/internal/recruiter"
	"github.com/jonathan/jobshield/internal/rules"
	"github.com/jonathan/jobshield/internal/salary"
)

// resolveConfig merges an optional config file with flag values. Flags win;
// the config file supplies defaults.
func resolveConfig(path string, flags config.Config) (config.Config, error) {
	if path == "" {
		return flags, nil
	}
	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := fileCfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return flags.MergeWithDefaults(*fileCfg), nil
}

// buildLexicon loads the keyword lexicon, falling back to the built-in one.
func buildLexicon(path string) (features.Lexicon, error) {
	if path == "" {
		return features.DefaultLexicon(), nil
	}
	lexicon, err := features.LoadLexicon(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}
	return lexicon, nil
}

// buildClassifier creates the classifier and restores a persisted artifact
// from modelDir when one exists. A missing artifact is not an error; the
// classifier degrades to its neutral default until trained.
func buildClassifier(lexicon features.Lexicon, modelDir string) (*classifier.Classifier, error) {
	cls := classifier.New(lexicon)
	if modelDir == "" {
		return cls, nil
	}

	store := modelstore.NewStore(modelDir)
	artifact, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load classifier artifact: %w", err)
	}
	if artifact != nil {
		state, err := artifact.State()
		if err != nil {
			return nil, fmt.Errorf("failed to restore classifier state: %w", err)
		}
		cls.Restore(state)
	}
	return cls, nil
}

// buildAnalyzer assembles the full detection pipeline from a resolved config.
func buildAnalyzer(cfg config.Config) (*pipeline.Analyzer, error) {
	lexicon, err := buildLexicon(cfg.LexiconFile)
	if err != nil {
		return nil, err
	}

	cls, err := buildClassifier(lexicon, cfg.ModelDir)
	if err != nil {
		return nil, err
	}

	engine := rules.NewEngine()
	if cfg.RulesFile != "" {
		engine, err = rules.LoadEngine(cfg.RulesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load rule table: %w", err)
		}
	}

	analyzer := salary.NewAnalyzer()
	if cfg.BenchmarksFile != "" {
		analyzer, err = salary.LoadAnalyzer(cfg.BenchmarksFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load salary benchmarks: %w", err)
		}
	}

	return pipeline.NewAnalyzer(cls, engine, analyzer, recruiter.NewScorer()), nil
}
