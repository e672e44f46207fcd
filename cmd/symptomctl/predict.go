package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Skufu/symptomcheck/internal/diagnosis"
)

var (
	conditionColor = color.New(color.FgCyan, color.Bold)
	highColor      = color.New(color.FgGreen)
	midColor       = color.New(color.FgYellow)
	lowColor       = color.New(color.FgRed)
)

func newPredictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "predict [symptom...]",
		Short:   "Predict the most likely condition",
		Example: "  symptomctl predict Fever Cough\n  symptomctl predict -s \"Shortness of breath\" -s Wheezing --top 3",
		RunE:    runPredict,
	}
	cmd.Flags().StringArrayP("symptom", "s", nil, "symptom label (repeatable)")
	cmd.Flags().Int("top", 0, "show the N best conditions instead of one")
	cmd.Flags().Bool("json", false, "print JSON")
	return cmd
}

func runPredict(cmd *cobra.Command, args []string) error {
	flagged, _ := cmd.Flags().GetStringArray("symptom")
	top, _ := cmd.Flags().GetInt("top")
	asJSON, _ := cmd.Flags().GetBool("json")
	symptoms := append(append([]string(nil), flagged...), args...)

	model, err := loadModel(cmd)
	if err != nil {
		return err
	}

	var predictions []diagnosis.Prediction
	if top > 0 {
		predictions, err = model.TopN(symptoms, top)
	} else {
		var p diagnosis.Prediction
		p, err = model.Predict(symptoms)
		predictions = []diagnosis.Prediction{p}
	}
	if err != nil {
		return fmt.Errorf("predict: %w", err)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if top > 0 {
			return enc.Encode(predictions)
		}
		return enc.Encode(predictions[0])
	}

	for _, s := range symptoms {
		if s != "" && !model.KnowsSymptom(s) {
			_, _ = fmt.Fprintf(out, "warning: %q is not in the training vocabulary\n", s)
		}
	}
	for i, p := range predictions {
		if i > 0 {
			_, _ = fmt.Fprintln(out)
		}
		printPrediction(out, i+1, p, top > 0)
	}
	return nil
}

func printPrediction(w io.Writer, rank int, p diagnosis.Prediction, ranked bool) {
	prefix := ""
	if ranked {
		prefix = fmt.Sprintf("%d. ", rank)
	}
	_, _ = fmt.Fprintf(w, "%s%s  %s\n", prefix, conditionColor.Sprint(p.Condition), confidenceColor(p.Confidence).Sprintf("%d%%", p.Confidence))
	_, _ = fmt.Fprintf(w, "   see: %s (%s)\n", p.Advisory.Specialist.Type, p.Advisory.Specialist.Description)
	_, _ = fmt.Fprintf(w, "   medicines: %s\n", strings.Join(p.Advisory.Medicines, "; "))
	if len(p.Advisory.Prevention) > 0 {
		_, _ = fmt.Fprintf(w, "   prevention: %s\n", strings.Join(p.Advisory.Prevention, "; "))
	}
}

func confidenceColor(confidence int) *color.Color {
	switch {
	case confidence >= 70:
		return highColor
	case confidence >= 45:
		return midColor
	default:
		return lowColor
	}
}
