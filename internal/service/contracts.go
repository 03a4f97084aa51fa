package service

import (
	"context"

	"github.com/aliskhannn/vocab-master/internal/domain/entities"
)

// Keys of the per-user id sets.
const (
	KeyLearnedWords  = "learned_words"
	KeyUsedExamWords = "used_exam_words"
)

type WordRepository interface {
	GetAll() []*entities.Word
	GetByID(id string) (*entities.Word, error)
	GetByIDs(ids map[string]struct{}) []*entities.Word
	GetRandom() *entities.Word
	Len() int
}

// IDSetStore persists flat sets of word ids per user and key.
type IDSetStore interface {
	Load(ctx context.Context, userID int64, key string) ([]string, error)
	Save(ctx context.Context, userID int64, key string, ids []string) error
	Delete(ctx context.Context, userID int64, key string) error
}

// StatsRepository is an append-only quiz attempt counter.
type StatsRepository interface {
	RecordAttempt(ctx context.Context, userID int64, correct, total int) error
	Get(ctx context.Context, userID int64) (entities.Stats, error)
	Reset(ctx context.Context, userID int64) error
}

// QuizGenerator builds the questions of a new exam.
type QuizGenerator interface {
	GenerateQuiz(ctx context.Context, userID int64, mode entities.QuizMode) ([]entities.Question, error)
}
