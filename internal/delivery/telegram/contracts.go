package telegram

import (
	"context"

	"github.com/aliskhannn/vocab-master/internal/domain/entities"
	"github.com/aliskhannn/vocab-master/internal/service"
)

type WordBrowser interface {
	Card(ctx context.Context, userID int64, filter service.Filter, index int) (*service.WordCard, error)
	ToggleLearned(ctx context.Context, userID int64, filter service.Filter, index int) (*service.WordCard, error)
	RandomCard(ctx context.Context, userID int64) (*service.WordCard, error)
}

type LearnedService interface {
	Words(ctx context.Context, userID int64) []*entities.Word
	Search(ctx context.Context, userID int64, query string) []*entities.Word
	Unmark(ctx context.Context, userID int64, wordID string) bool
}

type ProgressService interface {
	Summary(ctx context.Context, userID int64) *service.ProgressSummary
	RecordAttempt(ctx context.Context, userID int64, correct, total int)
	Reset(ctx context.Context, userID int64)
}

// ExamStorage holds the running exam of each user in each chat.
type ExamStorage interface {
	Store(key service.ExamKey, exam *service.Exam)
	Get(key service.ExamKey) (*service.Exam, bool)
	Delete(key service.ExamKey)
}
