package service

import (
	"context"
	"errors"
	"slices"

	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-master/internal/domain/entities"
)

// ErrNoWords is returned when the browsed list is empty.
var ErrNoWords = errors.New("no words to show")

// Filter selects the list a user browses.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterLearned Filter = "learned"
)

// ParseFilter maps a raw value to a Filter; unknown values select FilterAll.
func ParseFilter(s string) Filter {
	if Filter(s) == FilterLearned {
		return FilterLearned
	}
	return FilterAll
}

// WordCard is one page of the word browser.
type WordCard struct {
	Word    *entities.Word
	Index   int // clamped position in the filtered list
	Total   int
	Learned bool
	Filter  Filter
}

func (c *WordCard) HasPrev() bool { return c.Index > 0 }
func (c *WordCard) HasNext() bool { return c.Index < c.Total-1 }

// WordService pages through the dataset or the learned subset.
type WordService struct {
	words   WordRepository
	learned *LearnedService
	logger  *zap.Logger
}

func NewWordService(words WordRepository, learned *LearnedService, logger *zap.Logger) *WordService {
	return &WordService{
		words:   words,
		learned: learned,
		logger:  logger,
	}
}

// Card returns the word at index in the filtered list. Out of range indexes
// are clamped to the list bounds.
func (s *WordService) Card(ctx context.Context, userID int64, filter Filter, index int) (*WordCard, error) {
	set := s.learned.Load(ctx, userID)
	list := s.list(filter, set)
	if len(list) == 0 {
		return nil, ErrNoWords
	}

	index = clamp(index, len(list))
	w := list[index]

	return &WordCard{
		Word:    w,
		Index:   index,
		Total:   len(list),
		Learned: set.Contains(w.ID),
		Filter:  filter,
	}, nil
}

// RandomCard opens a random word of the whole list.
func (s *WordService) RandomCard(ctx context.Context, userID int64) (*WordCard, error) {
	if s.words.Len() == 0 {
		return nil, ErrNoWords
	}

	w := s.words.GetRandom()
	index := slices.Index(s.words.GetAll(), w)

	return s.Card(ctx, userID, FilterAll, index)
}

// ToggleLearned flips the learned flag of the word at index and returns the
// card to show next. In the learned filter an unmarked word leaves the list,
// so the same index now points at its successor.
func (s *WordService) ToggleLearned(ctx context.Context, userID int64, filter Filter, index int) (*WordCard, error) {
	card, err := s.Card(ctx, userID, filter, index)
	if err != nil {
		return nil, err
	}

	learned, err := s.learned.Toggle(ctx, userID, card.Word.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("learned flag toggled",
		zap.Int64("user_id", userID),
		zap.String("word_id", card.Word.ID),
		zap.Bool("learned", learned),
	)

	if filter == FilterLearned && !learned {
		return s.Card(ctx, userID, filter, card.Index)
	}

	card.Learned = learned
	return card, nil
}

func (s *WordService) list(filter Filter, set entities.LearnedSet) []*entities.Word {
	if filter == FilterLearned {
		return s.words.GetByIDs(set)
	}
	return s.words.GetAll()
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
