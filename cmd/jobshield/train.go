package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobshield/internal/config"
	"github.com/jonathan/jobshield/internal/dataset"
	"github.com/jonathan/jobshield/internal/db"
	"github.com/jonathan/jobshield/internal/modelstore"
	"github.com/jonathan/jobshield/internal/observability"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the fraud classifier and persist the model artifact",
	Long:  "Trains the classifier roster on the built-in corpus, an external JSON corpus, or samples stored in the database, selects the best model by cross-validated F1 and writes the artifact atomically to the model directory.",
	RunE:  runTrain,
}

var (
	trainCorpusFile  string
	trainModelDir    string
	trainLexiconFile string
	trainConfigFile  string
	trainDatabaseURL string
	trainJSON        bool
)

func init() {
	trainCmd.Flags().StringVar(&trainCorpusFile, "corpus", "", "Path to a JSON corpus file (defaults to the built-in corpus)")
	trainCmd.Flags().StringVarP(&trainModelDir, "model-dir", "m", "", "Directory to write the classifier artifact to (required)")
	trainCmd.Flags().StringVar(&trainLexiconFile, "lexicon", "", "Path to a YAML keyword lexicon")
	trainCmd.Flags().StringVarP(&trainConfigFile, "config", "c", "", "Path to a JSON config file")
	trainCmd.Flags().StringVar(&trainDatabaseURL, "db", "", "PostgreSQL URL to load additional stored samples from")
	trainCmd.Flags().BoolVar(&trainJSON, "json", false, "Emit the training report as JSON")

	if err := trainCmd.MarkFlagRequired("model-dir"); err != nil {
		panic(fmt.Sprintf("failed to mark model-dir flag as required: %v", err))
	}

	rootCmd.AddCommand(trainCmd)
}

func runTrain(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(trainConfigFile, config.Config{
		ModelDir:    trainModelDir,
		LexiconFile: trainLexiconFile,
		CorpusFile:  trainCorpusFile,
		DatabaseURL: trainDatabaseURL,
	})
	if err != nil {
		return err
	}

	samples, err := loadCorpus(cfg)
	if err != nil {
		return err
	}

	lexicon, err := buildLexicon(cfg.LexiconFile)
	if err != nil {
		return err
	}

	cls, err := buildClassifier(lexicon, "")
	if err != nil {
		return err
	}

	texts, labels := dataset.Split(samples)
	report, err := cls.Train(texts, labels)
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	artifact, err := modelstore.FromState(cls.State())
	if err != nil {
		return fmt.Errorf("failed to encode classifier artifact: %w", err)
	}
	store := modelstore.NewStore(cfg.ModelDir)
	if err := store.Save(artifact); err != nil {
		return fmt.Errorf("failed to save classifier artifact: %w", err)
	}

	if trainJSON {
		output, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal training report: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintTrainingReport(report)
	fmt.Printf("Model artifact written to %s\n", store.Path())
	return nil
}

// loadCorpus assembles the training corpus: an explicit corpus file replaces
// the built-in samples, and database samples are appended when configured.
func loadCorpus(cfg config.Config) ([]dataset.Sample, error) {
	var samples []dataset.Sample
	if cfg.CorpusFile != "" {
		loaded, err := dataset.Load(cfg.CorpusFile)
		if err != nil {
			return nil, err
		}
		samples = loaded
	} else {
		samples = dataset.BuiltIn()
	}

	if cfg.DatabaseURL != "" {
		ctx := context.Background()
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer database.Close()

		if err := database.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		stored, err := database.LoadCorpus(ctx)
		if err != nil {
			return nil, err
		}
		samples = append(samples, stored...)
	}

	return samples, nil
}
