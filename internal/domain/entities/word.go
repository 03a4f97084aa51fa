// Package entities contains domain entities used across the application.
package entities

import (
	"errors"
	"strings"
)

var (
	ErrEmptyWordID  = errors.New("word id is empty")
	ErrEmptyMeaning = errors.New("word native meaning is empty")
)

// Word is one vocabulary entry of the dataset.
// ID is the headword and is unique within a loaded dataset.
// Options in a quiz are considered duplicates when their NativeMeaning matches,
// regardless of ID.
type Word struct {
	ID                string   // headword, unique key
	PartOfSpeech      string   // noun, verb, ...
	NativeMeaning     string   // meaning in the learner's language, the quiz answer
	Definition        string   // definition in the studied language
	ExampleNative     string   // usage example in the studied language
	ExampleTranslated string   // translation of the example
	Synonyms          []string // possibly empty
}

// NewWord builds a validated Word. Text fields are trimmed; an empty id or
// meaning is rejected.
func NewWord(id, partOfSpeech, nativeMeaning, definition, exampleNative, exampleTranslated string, synonyms []string) (*Word, error) {
	w := &Word{
		ID:                strings.TrimSpace(id),
		PartOfSpeech:      strings.TrimSpace(partOfSpeech),
		NativeMeaning:     strings.TrimSpace(nativeMeaning),
		Definition:        strings.TrimSpace(definition),
		ExampleNative:     strings.TrimSpace(exampleNative),
		ExampleTranslated: strings.TrimSpace(exampleTranslated),
	}

	if w.ID == "" {
		return nil, ErrEmptyWordID
	}
	if w.NativeMeaning == "" {
		return nil, ErrEmptyMeaning
	}

	for _, s := range synonyms {
		s = strings.TrimSpace(s)
		if s != "" {
			w.Synonyms = append(w.Synonyms, s)
		}
	}

	return w, nil
}

// DistinctMeanings counts the different native meanings among words.
func DistinctMeanings(words []*Word) int {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[w.NativeMeaning] = struct{}{}
	}
	return len(seen)
}
