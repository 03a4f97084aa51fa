package service

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-master/internal/domain/entities"
)

const (
	// MinWords is the smallest pool a quiz can start from.
	MinWords = 4
	// distractorsPerQuestion is the number of wrong options wanted per question.
	distractorsPerQuestion = 3
)

// QuestionGenerator builds multiple choice questions for quiz words.
type QuestionGenerator struct {
	logger *zap.Logger

	rng *rand.Rand
}

// NewQuestionGenerator creates a new question generator.
func NewQuestionGenerator(logger *zap.Logger) *QuestionGenerator {
	return &QuestionGenerator{
		logger: logger,
	}
}

// ValidatePool checks that the pool can fill four options with distinct meanings.
func ValidatePool(pool []*entities.Word) error {
	if n := entities.DistinctMeanings(pool); n < MinWords {
		return fmt.Errorf("%w: %d distinct meanings, need %d", ErrInsufficientWords, n, MinWords)
	}
	return nil
}

// BuildQuestions creates one question per word, keeping the order of words.
// Distractors are drawn from fullPool.
func (g *QuestionGenerator) BuildQuestions(words, fullPool []*entities.Word) []entities.Question {
	questions := make([]entities.Question, 0, len(words))
	for _, w := range words {
		questions = append(questions, g.buildQuestion(w, fullPool))
	}
	return questions
}

func (g *QuestionGenerator) buildQuestion(prompt *entities.Word, fullPool []*entities.Word) entities.Question {
	distractors := g.pickDistractors(prompt, fullPool, distractorsPerQuestion)
	if len(distractors) < distractorsPerQuestion {
		g.logger.Debug("distractor shortage",
			zap.String("word_id", prompt.ID),
			zap.Int("distractors", len(distractors)),
		)
	}

	options := make([]*entities.Word, 0, 1+len(distractors))
	options = append(options, prompt)
	options = append(options, distractors...)
	shuffle(g.rng, options)

	return entities.Question{
		Prompt:        prompt,
		Options:       options,
		CorrectAnswer: prompt.NativeMeaning,
	}
}

// pickDistractors draws up to count words whose meanings differ from the
// prompt and from each other. Candidates are consumed in one partial
// Fisher-Yates pass, so every candidate is equally likely at each step.
func (g *QuestionGenerator) pickDistractors(prompt *entities.Word, pool []*entities.Word, count int) []*entities.Word {
	candidates := make([]*entities.Word, 0, len(pool))
	for _, w := range pool {
		if w.ID != prompt.ID && w.NativeMeaning != prompt.NativeMeaning {
			candidates = append(candidates, w)
		}
	}

	seen := map[string]struct{}{prompt.NativeMeaning: {}}
	chosen := make([]*entities.Word, 0, count)

	for i := 0; i < len(candidates) && len(chosen) < count; i++ {
		j := i + intn(g.rng, len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]

		c := candidates[i]
		if _, dup := seen[c.NativeMeaning]; dup {
			continue
		}
		seen[c.NativeMeaning] = struct{}{}
		chosen = append(chosen, c)
	}

	return chosen
}
