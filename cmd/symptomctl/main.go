package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Skufu/symptomcheck/internal/dataset"
	"github.com/Skufu/symptomcheck/internal/diagnosis"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "symptomctl",
		Short:        "Rank likely conditions for a set of symptoms",
		Long:         "symptomctl trains the symptom classifier in memory and queries it from the command line.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				color.NoColor = true
			}
		},
	}
	root.PersistentFlags().String("corpus", "", "TOML corpus file (default: built-in corpus)")
	root.PersistentFlags().Bool("keep-duplicates", false, "count a symptom repeated within one example more than once")
	root.PersistentFlags().Bool("no-color", false, "disable colored output")

	root.AddCommand(newPredictCmd())
	root.AddCommand(newSymptomsCmd())
	root.AddCommand(newConditionsCmd())
	return root
}

// loadModel builds the model from --corpus or the built-in corpus.
func loadModel(cmd *cobra.Command) (*diagnosis.Model, error) {
	path, _ := cmd.Flags().GetString("corpus")
	keep, _ := cmd.Flags().GetBool("keep-duplicates")

	corpus := dataset.DefaultCorpus()
	if path != "" {
		var err error
		corpus, err = dataset.LoadCorpusFile(path)
		if err != nil {
			return nil, err
		}
	}
	model, err := diagnosis.Build(corpus, diagnosis.KeepDuplicateSymptoms(keep))
	if err != nil {
		return nil, fmt.Errorf("build model: %w", err)
	}
	return model, nil
}
