package dataset

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Skufu/symptomcheck/internal/diagnosis"
)

type corpusFile struct {
	Examples []diagnosis.TrainingExample `toml:"example"`
}

// LoadCorpusFile reads a TOML corpus made of [[example]] tables:
//
//	[[example]]
//	condition = "Influenza"
//	symptoms = ["Fever", "Chills"]
//	confidence = 90
func LoadCorpusFile(path string) ([]diagnosis.TrainingExample, error) {
	var f corpusFile
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	examples, err := checkCorpus(meta, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return examples, nil
}

func DecodeCorpus(r io.Reader) ([]diagnosis.TrainingExample, error) {
	var f corpusFile
	meta, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return checkCorpus(meta, f)
}

func checkCorpus(meta toml.MetaData, f corpusFile) ([]diagnosis.TrainingExample, error) {
	if !meta.IsDefined("example") || len(f.Examples) == 0 {
		return nil, fmt.Errorf("missing [[example]] entries: %w", diagnosis.ErrEmptyCorpus)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	for i, ex := range f.Examples {
		if strings.TrimSpace(ex.Condition) == "" {
			return nil, fmt.Errorf("example %d: missing condition: %w", i, diagnosis.ErrInvalidExample)
		}
		if len(ex.Symptoms) == 0 {
			return nil, fmt.Errorf("example %d (%s): missing symptoms: %w", i, ex.Condition, diagnosis.ErrInvalidExample)
		}
	}
	return f.Examples, nil
}
