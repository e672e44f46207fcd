package diagnosis

import "sort"

type ranked struct {
	condition string
	score     Score
	matched   int
}

// rank scores every known condition in corpus order.
func (m *Model) rank(query []string) []ranked {
	out := make([]ranked, 0, len(m.conditions))
	for _, c := range m.conditions {
		s, matched := m.score(c, query)
		out = append(out, ranked{condition: c, score: s, matched: matched})
	}
	return out
}

// Predict returns the best-scoring condition for the symptoms, with its
// confidence, advisory and the rounded score of every condition. Ties go to
// the condition that appeared first in the corpus.
func (m *Model) Predict(symptoms []string) (Prediction, error) {
	query, err := normalizeQuery(symptoms)
	if err != nil {
		return Prediction{}, err
	}

	all := m.rank(query)
	best := all[0]
	scores := make(map[string]Score, len(all))
	for _, r := range all {
		scores[r.condition] = roundScore(r.score)
		if r.score > best.score {
			best = r
		}
	}

	p := m.prediction(query, best)
	p.ProbabilityScores = scores
	return p, nil
}

// TopN returns up to n predictions sorted by descending score, each with its
// own confidence.
func (m *Model) TopN(symptoms []string, n int) ([]Prediction, error) {
	query, err := normalizeQuery(symptoms)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return []Prediction{}, nil
	}

	all := m.rank(query)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].score > all[j].score
	})
	if n > len(all) {
		n = len(all)
	}

	out := make([]Prediction, 0, n)
	for _, r := range all[:n] {
		out = append(out, m.prediction(query, r))
	}
	return out, nil
}

func (m *Model) prediction(query []string, r ranked) Prediction {
	return Prediction{
		Condition:       r.condition,
		Confidence:      m.calibrate(query, r.condition),
		Score:           r.score,
		MatchedSymptoms: r.matched,
		Advisory:        m.Advisory(r.condition),
	}
}
