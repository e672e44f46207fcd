package diagnosis

import "math"

const (
	unknownSymptomPenalty = 0.5
	unmatchedPenalty      = 1.5
	smoothingAlpha        = 0.5

	// commonThreshold is the share of examples above which a symptom counts
	// as generic.
	commonThreshold     = 0.3
	commonPenaltyWeight = 2.0

	specificityWeight = 2.0
	matchRatioOffset  = 0.1
	matchRatioWeight  = 1.5

	vagueSymptomLimit   = 0.5
	vagueSymptomPenalty = 3.0

	specificMatchCount     = 3
	specificMatchThreshold = 0.4
	specificMatchBonus     = 1.5
)

var noEvidence = Score(math.Inf(-1))

// Score computes the evidence score of condition for the given symptoms.
// Repeated and empty symptom labels are ignored. Unknown conditions and
// conditions sharing no symptom with the query score -Inf.
func (m *Model) Score(condition string, symptoms []string) Score {
	query, err := normalizeQuery(symptoms)
	if err != nil {
		return noEvidence
	}
	s, _ := m.score(condition, query)
	return s
}

// score expects a de-duplicated, non-empty query.
func (m *Model) score(condition string, query []string) (Score, int) {
	if _, ok := m.matrix[condition]; !ok {
		return noEvidence, 0
	}
	freq := float64(m.diseaseFrequency[condition])
	total := float64(m.totalSamples)
	vocabulary := float64(len(m.symptomFrequency))
	prior := freq / total

	var (
		running        float64
		commonPenalty  float64
		specificitySum float64
		matched        int
		known          int
	)
	for _, s := range query {
		occ, totalOcc, ok := m.occurrence(condition, s)
		if !ok {
			running -= unknownSymptomPenalty
			continue
		}
		known++

		specificity := float64(occ) / float64(totalOcc)
		commonness := float64(totalOcc) / total
		if commonness > commonThreshold {
			commonPenalty += (commonness - commonThreshold) * commonPenaltyWeight
		}

		if occ == 0 {
			running -= unmatchedPenalty
			continue
		}
		condProb := (float64(occ) + smoothingAlpha) / (freq + vocabulary*smoothingAlpha)
		importance := specificity*specificityWeight + (1 - commonness)
		running += math.Log(condProb) * importance
		matched++
		specificitySum += specificity
	}

	if matched == 0 {
		return noEvidence, 0
	}

	matchRatio := float64(matched) / float64(len(query))
	avgSpecificity := specificitySum / float64(matched)

	final := math.Log(prior) + running +
		avgSpecificity*specificityWeight +
		math.Log(matchRatio+matchRatioOffset)*matchRatioWeight -
		commonPenalty

	// Unknown symptoms do not lift a lone vague symptom out of this penalty.
	if known == 1 && avgSpecificity < vagueSymptomLimit {
		final -= vagueSymptomPenalty
	}
	if matched >= specificMatchCount && avgSpecificity > specificMatchThreshold {
		final += specificMatchBonus
	}
	return Score(final), matched
}

// roundScore rounds to two decimals with halves going toward +Inf.
func roundScore(s Score) Score {
	if !s.Finite() {
		return s
	}
	return Score(math.Floor(float64(s)*100+0.5) / 100)
}
