package diagnosis

import "errors"

var (
	// ErrEmptyCorpus is returned when a model is built from a corpus with no
	// examples.
	ErrEmptyCorpus = errors.New("training corpus is empty")

	// ErrInvalidExample marks an example that cannot be indexed, such as one
	// with a blank condition label.
	ErrInvalidExample = errors.New("invalid training example")

	// ErrEmptyQuery is returned by prediction calls given no symptoms.
	ErrEmptyQuery = errors.New("no symptoms provided")
)
