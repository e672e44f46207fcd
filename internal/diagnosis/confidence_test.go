package diagnosis

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalibrateUnknownCondition(t *testing.T) {
	m := mustBuild(t, fluAllergyCorpus())
	assert.Equal(t, 35, m.Calibrate([]string{"Fever"}, "Measles"))
	assert.Equal(t, 35, m.Calibrate([]string{"Fever"}, ""))
}

func TestCalibrateNoMatch(t *testing.T) {
	m := mustBuild(t, fluAllergyCorpus())
	assert.Equal(t, MinConfidence, m.Calibrate([]string{"Rash"}, "Flu"))
	assert.Equal(t, MinConfidence, m.Calibrate([]string{"Glowing ears"}, "Flu"))
	assert.Equal(t, MinConfidence, m.Calibrate(nil, "Flu"))
}

func TestCalibrateSingleVagueSymptom(t *testing.T) {
	m := mustBuild(t, []TrainingExample{
		{Symptoms: []string{"Fatigue", "Rash"}, Condition: "A"},
		{Symptoms: []string{"Fatigue", "Cough"}, Condition: "B"},
		{Symptoms: []string{"Fatigue", "Thirst"}, Condition: "C"},
		{Symptoms: []string{"Fatigue", "Itch"}, Condition: "D"},
	})

	// capped at 40, x0.7 for a common symptom, +5 popularity
	got := m.Calibrate([]string{"Fatigue"}, "A")
	assert.Equal(t, 33, got)
	assert.LessOrEqual(t, got, 40)
}

func TestCalibrateStaysInRange(t *testing.T) {
	corpus := referenceCorpus()
	m := mustBuild(t, corpus)

	vocabulary := make([]string, 0, len(m.symptomFrequency))
	for _, ex := range corpus {
		vocabulary = append(vocabulary, ex.Symptoms...)
	}
	vocabulary = append(uniqueSymptoms(vocabulary), "Glowing ears")

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		n := 1 + rng.Intn(6)
		q := make([]string, 0, n)
		for j := 0; j < n; j++ {
			q = append(q, vocabulary[rng.Intn(len(vocabulary))])
		}
		for _, c := range m.conditions {
			got := m.Calibrate(q, c)
			assert.GreaterOrEqual(t, got, MinConfidence)
			assert.LessOrEqual(t, got, MaxConfidence)
		}
	}
}

func TestCalibrateHighlySpecificMatchHitsCeiling(t *testing.T) {
	m := mustBuild(t, referenceCorpus())
	assert.Equal(t, MaxConfidence, m.Calibrate([]string{"Yellow skin", "Yellow eyes", "Dark urine"}, "Hepatitis"))
}
