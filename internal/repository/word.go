package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"math/rand"
	"os"

	"github.com/microcosm-cc/bluemonday"

	"github.com/aliskhannn/vocab-master/internal/domain/entities"
)

var (
	ErrWordNotFound  = errors.New("word not found")
	ErrEmptyDataset  = errors.New("dataset is empty")
	ErrDuplicateWord = errors.New("duplicate word id")
)

// DatasetLoadError reports a dataset that could not be read or validated.
type DatasetLoadError struct {
	Path string
	Err  error
}

func (e *DatasetLoadError) Error() string {
	return fmt.Sprintf("load dataset %s: %v", e.Path, e.Err)
}

func (e *DatasetLoadError) Unwrap() error {
	return e.Err
}

// WordRepository provides read-only access to the vocabulary dataset.
// The dataset is loaded and validated once; lookups never fail on I/O.
type WordRepository struct {
	words []*entities.Word
	byID  map[string]*entities.Word
}

// NewWordRepository loads the dataset from a JSON file.
func NewWordRepository(path string) (*WordRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DatasetLoadError{Path: path, Err: err}
	}

	words, err := parseWords(data)
	if err != nil {
		return nil, &DatasetLoadError{Path: path, Err: err}
	}

	repo, err := NewWordRepositoryFromWords(words)
	if err != nil {
		return nil, &DatasetLoadError{Path: path, Err: err}
	}

	return repo, nil
}

// NewWordRepositoryFromWords builds a repository over already validated words.
func NewWordRepositoryFromWords(words []*entities.Word) (*WordRepository, error) {
	if len(words) == 0 {
		return nil, ErrEmptyDataset
	}

	byID := make(map[string]*entities.Word, len(words))
	for _, w := range words {
		if _, ok := byID[w.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateWord, w.ID)
		}
		byID[w.ID] = w
	}

	return &WordRepository{
		words: words,
		byID:  byID,
	}, nil
}

// NewPlaceholderRepository returns the built-in one-word dataset used when the
// real dataset cannot be loaded.
func NewPlaceholderRepository() *WordRepository {
	w := &entities.Word{
		ID:                "sample",
		PartOfSpeech:      "noun",
		NativeMeaning:     "নমুনা",
		Definition:        "a small part or quantity intended to show what the whole is like",
		ExampleNative:     "This is just a sample.",
		ExampleTranslated: "এটি কেবলমাত্র একটি নমুনা।",
		Synonyms:          []string{"specimen", "example"},
	}

	return &WordRepository{
		words: []*entities.Word{w},
		byID:  map[string]*entities.Word{w.ID: w},
	}
}

// GetAll returns every word in dataset order. The slice must not be modified.
func (r *WordRepository) GetAll() []*entities.Word {
	return r.words
}

// GetByID returns the word with the given headword.
func (r *WordRepository) GetByID(id string) (*entities.Word, error) {
	w, ok := r.byID[id]
	if !ok {
		return nil, ErrWordNotFound
	}
	return w, nil
}

// GetByIDs returns the known words among ids, in dataset order.
func (r *WordRepository) GetByIDs(ids map[string]struct{}) []*entities.Word {
	out := make([]*entities.Word, 0, len(ids))
	for _, w := range r.words {
		if _, ok := ids[w.ID]; ok {
			out = append(out, w)
		}
	}
	return out
}

// GetRandom returns a uniformly chosen word.
func (r *WordRepository) GetRandom() *entities.Word {
	return r.words[rand.Intn(len(r.words))]
}

// Len returns the dataset size.
func (r *WordRepository) Len() int {
	return len(r.words)
}

// rawWord accepts the key variants found in the published word lists.
type rawWord struct {
	Word         string   `json:"word"`
	POS          string   `json:"pos"`
	PartOfSpeech string   `json:"part_of_speech"`
	MeaningBN    string   `json:"meaning_bn"`
	DefinitionBN string   `json:"definition_bn"`
	Definition   string   `json:"definition"`
	DefinitionEN string   `json:"definition_en"`
	ExampleEN    string   `json:"example_en"`
	ExampleBN    string   `json:"example_bn"`
	Synonyms     []string `json:"synonyms"`
}

func parseWords(data []byte) ([]*entities.Word, error) {
	var raw []rawWord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal words JSON: %w", err)
	}

	if len(raw) == 0 {
		return nil, ErrEmptyDataset
	}

	policy := bluemonday.StrictPolicy()
	clean := func(s string) string {
		return html.UnescapeString(policy.Sanitize(s))
	}

	words := make([]*entities.Word, 0, len(raw))
	for i, rw := range raw {
		synonyms := make([]string, 0, len(rw.Synonyms))
		for _, s := range rw.Synonyms {
			synonyms = append(synonyms, clean(s))
		}

		w, err := entities.NewWord(
			clean(rw.Word),
			clean(firstNonEmpty(rw.POS, rw.PartOfSpeech)),
			clean(firstNonEmpty(rw.MeaningBN, rw.DefinitionBN)),
			clean(firstNonEmpty(rw.Definition, rw.DefinitionEN)),
			clean(rw.ExampleEN),
			clean(rw.ExampleBN),
			synonyms,
		)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		words = append(words, w)
	}

	return words, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
