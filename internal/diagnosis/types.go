package diagnosis

import (
	"encoding/json"
	"math"
)

// TrainingExample is one labeled record of the corpus. ReferenceConfidence is
// carried through for display and never read by the scorer.
type TrainingExample struct {
	Symptoms            []string `json:"symptoms" toml:"symptoms"`
	Condition           string   `json:"condition" toml:"condition"`
	ReferenceConfidence float64  `json:"confidence" toml:"confidence"`
}

type Specialist struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

type Advisory struct {
	Specialist Specialist `json:"doctor"`
	Medicines  []string   `json:"medicines"`
	Info       string     `json:"info,omitempty"`
	Prevention []string   `json:"prevention,omitempty"`
}

// Score is a log-scale evidence score. Conditions without evidence score -Inf,
// which encodes as JSON null.
type Score float64

func (s Score) MarshalJSON() ([]byte, error) {
	f := float64(s)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

func (s Score) Finite() bool {
	return !math.IsInf(float64(s), 0) && !math.IsNaN(float64(s))
}

type Prediction struct {
	Condition         string           `json:"disease"`
	Confidence        int              `json:"confidence"`
	Score             Score            `json:"score"`
	MatchedSymptoms   int              `json:"matchedSymptoms"`
	Advisory          Advisory         `json:"advisory"`
	ProbabilityScores map[string]Score `json:"probabilityScores,omitempty"`
}

type ConditionCount struct {
	Condition string `json:"condition"`
	Examples  int    `json:"examples"`
}

type Stats struct {
	Samples    int `json:"samples"`
	Conditions int `json:"conditions"`
	Symptoms   int `json:"symptoms"`
}
