package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-master/internal/domain/entities"
)

// DefaultQuestionCount is the exam length used when none is configured.
const DefaultQuestionCount = 10

var (
	ErrInsufficientWords = errors.New("not enough words to start a quiz")
	ErrUnknownMode       = errors.New("unknown quiz mode")
)

// QuizService selects words for an exam and turns them into questions.
// It carries everything an exam needs, so independent exams can share it.
type QuizService struct {
	words         WordRepository
	learned       *LearnedService
	rotation      *RotationTracker
	generator     *QuestionGenerator
	questionCount int
	logger        *zap.Logger

	rng *rand.Rand
}

func NewQuizService(
	words WordRepository,
	learned *LearnedService,
	rotation *RotationTracker,
	generator *QuestionGenerator,
	questionCount int,
	logger *zap.Logger,
) *QuizService {
	if questionCount <= 0 {
		questionCount = DefaultQuestionCount
	}
	return &QuizService{
		words:         words,
		learned:       learned,
		rotation:      rotation,
		generator:     generator,
		questionCount: questionCount,
		logger:        logger,
	}
}

// GenerateQuiz builds the questions of a new exam for the user.
// It fails with ErrInsufficientWords when the mode has fewer than MinWords
// eligible words or the dataset cannot provide four distinct meanings.
func (s *QuizService) GenerateQuiz(
	ctx context.Context, userID int64, mode entities.QuizMode,
) ([]entities.Question, error) {
	pool := s.words.GetAll()

	var selected []*entities.Word

	switch mode {
	case entities.ModeLearned:
		learned := s.learned.Words(ctx, userID)
		if len(learned) < MinWords {
			return nil, fmt.Errorf("%w: %d learned words, need %d", ErrInsufficientWords, len(learned), MinWords)
		}
		if err := ValidatePool(pool); err != nil {
			return nil, err
		}
		selected = sample(s.rng, learned, s.questionCount)

	case entities.ModeFull:
		if len(pool) < MinWords {
			return nil, fmt.Errorf("%w: %d words in dataset, need %d", ErrInsufficientWords, len(pool), MinWords)
		}
		if err := ValidatePool(pool); err != nil {
			return nil, err
		}
		selected = s.rotation.SelectBatch(ctx, userID, pool, s.questionCount)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}

	questions := s.generator.BuildQuestions(selected, pool)

	s.logger.Debug("quiz generated",
		zap.Int64("user_id", userID),
		zap.String("mode", string(mode)),
		zap.Int("questions", len(questions)),
	)

	return questions, nil
}
