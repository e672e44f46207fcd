package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Skufu/symptomcheck/internal/dataset"
)

func newSymptomsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symptoms",
		Short: "Browse the symptom catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			category, _ := cmd.Flags().GetString("category")
			search, _ := cmd.Flags().GetString("search")

			model, err := loadModel(cmd)
			if err != nil {
				return err
			}
			catalog := dataset.DefaultCatalog()
			entries := catalog.Search(search, category)
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No symptoms found.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "SYMPTOM\tCATEGORY\tTRAINED")
			for _, e := range entries {
				trained := "no"
				if model.KnowsSymptom(e.Symptom) {
					trained = "yes"
				}
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Symptom, e.Category, trained)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().String("category", "", "only list this category")
	cmd.Flags().String("search", "", "substring to match, case-insensitive")
	return cmd
}

func newConditionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conditions",
		Short: "List the conditions the model was trained on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			model, err := loadModel(cmd)
			if err != nil {
				return err
			}
			stats := model.Stats()
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%d samples, %d conditions, %d symptoms\n\n", stats.Samples, stats.Conditions, stats.Symptoms)

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "CONDITION\tEXAMPLES\tSPECIALIST")
			for _, c := range model.Conditions() {
				_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\n", c.Condition, c.Examples, model.Advisory(c.Condition).Specialist.Type)
			}
			return tw.Flush()
		},
	}
}
