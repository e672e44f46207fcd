package diagnosis

import "math"

const (
	MinConfidence = 25
	MaxConfidence = 92

	unknownConditionConfidence = 35
	singleSymptomCap           = 40
)

// Calibrate maps how well the symptoms match condition onto a percentage in
// [MinConfidence, MaxConfidence]. It looks at match ratio, specificity and
// commonness only, never at the raw log-score.
func (m *Model) Calibrate(symptoms []string, condition string) int {
	if !m.KnowsCondition(condition) {
		return unknownConditionConfidence
	}
	query, err := normalizeQuery(symptoms)
	if err != nil {
		return MinConfidence
	}
	return m.calibrate(query, condition)
}

func (m *Model) calibrate(query []string, condition string) int {
	if !m.KnowsCondition(condition) {
		return unknownConditionConfidence
	}
	total := float64(m.totalSamples)

	var (
		matched        int
		specificitySum float64
		commonCount    int
	)
	for _, s := range query {
		occ, totalOcc, ok := m.occurrence(condition, s)
		if !ok {
			continue
		}
		if occ > 0 {
			matched++
			specificitySum += float64(occ) / float64(totalOcc)
		}
		if float64(totalOcc)/total > commonThreshold {
			commonCount++
		}
	}
	if matched == 0 {
		return MinConfidence
	}

	n := float64(len(query))
	matchRatio := float64(matched) / n
	avgSpecificity := specificitySum / float64(matched)
	commonRatio := float64(commonCount) / n

	confidence := 30 + matchRatio*40 + avgSpecificity*25 - commonRatio*15
	if matched >= specificMatchCount && avgSpecificity > specificMatchThreshold {
		confidence += 10
	}
	if matchRatio == 1 && avgSpecificity > 0.3 {
		confidence += 8
	}
	if len(query) == 1 {
		if avgSpecificity < 0.3 {
			confidence = math.Min(confidence, singleSymptomCap)
		} else {
			confidence *= 0.8
		}
	}
	if commonRatio > 0.7 {
		confidence *= 0.7
	}
	confidence += math.Min(5, float64(m.diseaseFrequency[condition])/total*50)

	rounded := int(math.Floor(confidence + 0.5))
	return min(MaxConfidence, max(MinConfidence, rounded))
}
