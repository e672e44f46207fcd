package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skufu/symptomcheck/internal/diagnosis"
)

func TestDefaultCorpusBuilds(t *testing.T) {
	corpus := DefaultCorpus()
	require.Len(t, corpus, 50)

	m, err := diagnosis.Build(corpus)
	require.NoError(t, err)
	assert.Equal(t, 50, m.Stats().Samples)
	assert.Equal(t, 30, m.Stats().Conditions)
	assert.Equal(t, "Common Cold", m.Conditions()[0].Condition)
}

func TestDefaultCorpusIsFresh(t *testing.T) {
	a := DefaultCorpus()
	a[0].Condition = "changed"
	assert.Equal(t, "Common Cold", DefaultCorpus()[0].Condition)
}

func TestCatalogSearch(t *testing.T) {
	c := DefaultCatalog()
	assert.Equal(t, 274, c.Len())
	assert.Contains(t, c.Categories(), "Respiratory")

	tests := []struct {
		name     string
		query    string
		category string
		want     []string
	}{
		{"case insensitive", "HEADACHE", "", []string{"Headache"}},
		{"full width", "ｈｅａｄａｃｈｅ", "", []string{"Headache"}},
		{"category filter", "pain", "genitourinary", []string{"Painful urination", "Kidney pain", "Bladder pain", "Pelvic pain"}},
		{"no match", "pain", "Cardiovascular", nil},
		{"category only", "", "Lymphatic and immune", []string{
			"Enlarged lymph nodes", "Easy bruising", "Excessive bleeding", "Delayed healing",
			"Frequent infections", "Chronic fatigue", "Autoimmune reactions", "Allergic reactions",
			"Hypersensitivity",
		}},
		{"substring", "hiccup", "", []string{"Hiccups", "Persistent hiccups"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, e := range c.Search(tt.query, tt.category) {
				got = append(got, e.Symptom)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalogLookup(t *testing.T) {
	c := DefaultCatalog()
	e, ok := c.Lookup("Wheezing")
	require.True(t, ok)
	assert.Equal(t, "Respiratory", e.Category)

	_, ok = c.Lookup("wheezing")
	assert.False(t, ok)
}

func TestNewCatalogKeepsFirstCategory(t *testing.T) {
	c := NewCatalog([]Category{
		{Name: "A", Symptoms: []string{"Fever", "Cough"}},
		{Name: "B", Symptoms: []string{"Cough", "Rash"}},
	})
	assert.Equal(t, 3, c.Len())
	e, _ := c.Lookup("Cough")
	assert.Equal(t, "A", e.Category)
}

func TestLoadCorpusFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[example]]
condition = "Flu"
symptoms = ["Fever", "Cough", "Headache"]
confidence = 80

[[example]]
condition = "Allergy"
symptoms = ["Rash", "Itching"]
`), 0o644))

	got, err := LoadCorpusFile(path)
	require.NoError(t, err)
	assert.Equal(t, []diagnosis.TrainingExample{
		{Symptoms: []string{"Fever", "Cough", "Headache"}, Condition: "Flu", ReferenceConfidence: 80},
		{Symptoms: []string{"Rash", "Itching"}, Condition: "Allergy"},
	}, got)
}

func TestDecodeCorpusErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantMsg string
	}{
		{"empty", ``, diagnosis.ErrEmptyCorpus, "missing [[example]]"},
		{"missing condition", "[[example]]\nsymptoms = [\"Fever\"]\n", diagnosis.ErrInvalidExample, "example 0"},
		{"missing symptoms", "[[example]]\ncondition = \"Flu\"\n", diagnosis.ErrInvalidExample, "missing symptoms"},
		{"unknown key", "[[example]]\ncondition = \"Flu\"\nsymptoms = [\"Fever\"]\nseverity = 3\n", nil, "unknown key"},
		{"bad syntax", "[[example]\n", nil, "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCorpus(strings.NewReader(tt.input))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadCorpusFileMissing(t *testing.T) {
	_, err := LoadCorpusFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.toml")
}
