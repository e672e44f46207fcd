package diagnosis

import "fmt"

// Model holds the frequency statistics of a training corpus. It is never
// mutated after Build returns, so one Model can serve concurrent predictions.
type Model struct {
	diseaseFrequency map[string]int
	symptomFrequency map[string]int
	matrix           map[string]map[string]int
	totalSamples     int

	// conditions lists each condition once, in order of first appearance.
	conditions []string
	advisories AdvisoryTable
}

type buildOptions struct {
	keepDuplicates bool
	advisories     AdvisoryTable
}

type BuildOption func(*buildOptions)

// KeepDuplicateSymptoms counts a symptom listed twice in one example twice,
// the way the original indexer did. By default each example contributes at
// most one count per symptom.
func KeepDuplicateSymptoms(keep bool) BuildOption {
	return func(o *buildOptions) {
		o.keepDuplicates = keep
	}
}

// WithAdvisories replaces the advisory table used to enrich predictions.
func WithAdvisories(table AdvisoryTable) BuildOption {
	return func(o *buildOptions) {
		o.advisories = table
	}
}

// Build indexes the corpus in a single pass.
func Build(corpus []TrainingExample, opts ...BuildOption) (*Model, error) {
	if len(corpus) == 0 {
		return nil, ErrEmptyCorpus
	}
	o := buildOptions{advisories: DefaultAdvisories()}
	for _, opt := range opts {
		opt(&o)
	}

	m := &Model{
		diseaseFrequency: make(map[string]int),
		symptomFrequency: make(map[string]int),
		matrix:           make(map[string]map[string]int),
		totalSamples:     len(corpus),
		advisories:       o.advisories,
	}

	for i, ex := range corpus {
		if ex.Condition == "" {
			return nil, fmt.Errorf("example %d: blank condition: %w", i, ErrInvalidExample)
		}
		row, ok := m.matrix[ex.Condition]
		if !ok {
			row = make(map[string]int)
			m.matrix[ex.Condition] = row
			m.conditions = append(m.conditions, ex.Condition)
		}
		m.diseaseFrequency[ex.Condition]++

		symptoms := ex.Symptoms
		if !o.keepDuplicates {
			symptoms = uniqueSymptoms(symptoms)
		}
		for _, s := range symptoms {
			if s == "" {
				continue
			}
			m.symptomFrequency[s]++
			row[s]++
		}
	}
	return m, nil
}

func (m *Model) Stats() Stats {
	return Stats{
		Samples:    m.totalSamples,
		Conditions: len(m.conditions),
		Symptoms:   len(m.symptomFrequency),
	}
}

// Conditions returns the known conditions in corpus order with their example
// counts.
func (m *Model) Conditions() []ConditionCount {
	out := make([]ConditionCount, 0, len(m.conditions))
	for _, c := range m.conditions {
		out = append(out, ConditionCount{Condition: c, Examples: m.diseaseFrequency[c]})
	}
	return out
}

func (m *Model) KnowsSymptom(symptom string) bool {
	_, ok := m.symptomFrequency[symptom]
	return ok
}

func (m *Model) KnowsCondition(condition string) bool {
	_, ok := m.matrix[condition]
	return ok
}

// Advisory resolves the advisory entry for a condition.
func (m *Model) Advisory(condition string) Advisory {
	return m.advisories.Resolve(condition)
}

// occurrence reports the co-occurrence count of symptom with condition and the
// symptom's corpus-wide count. known is false for out-of-vocabulary symptoms.
func (m *Model) occurrence(condition, symptom string) (occ, total int, known bool) {
	total, known = m.symptomFrequency[symptom]
	if !known {
		return 0, 0, false
	}
	return m.matrix[condition][symptom], total, true
}

func uniqueSymptoms(symptoms []string) []string {
	seen := make(map[string]struct{}, len(symptoms))
	out := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// normalizeQuery drops empty labels and repeats, keeping first-seen order.
func normalizeQuery(symptoms []string) ([]string, error) {
	out := make([]string, 0, len(symptoms))
	for _, s := range uniqueSymptoms(symptoms) {
		if s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, ErrEmptyQuery
	}
	return out, nil
}
