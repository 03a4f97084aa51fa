package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-master/internal/domain/entities"
	"github.com/aliskhannn/vocab-master/internal/repository"
	"github.com/aliskhannn/vocab-master/internal/storage"
)

var errStoreDown = errors.New("store down")

// failingStore rejects every operation.
type failingStore struct{}

func (failingStore) Load(context.Context, int64, string) ([]string, error) { return nil, errStoreDown }
func (failingStore) Save(context.Context, int64, string, []string) error  { return errStoreDown }
func (failingStore) Delete(context.Context, int64, string) error          { return errStoreDown }

func mustWord(t *testing.T, id, meaning string) *entities.Word {
	t.Helper()
	w, err := entities.NewWord(id, "noun", meaning, "", "", "", nil)
	if err != nil {
		t.Fatalf("new word %q: %v", id, err)
	}
	return w
}

func mustRepo(t *testing.T, words ...*entities.Word) *repository.WordRepository {
	t.Helper()
	repo, err := repository.NewWordRepositoryFromWords(words)
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	return repo
}

// numberedWords returns n words with distinct ids and meanings.
func numberedWords(t *testing.T, n int) []*entities.Word {
	t.Helper()
	out := make([]*entities.Word, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, mustWord(t, fmt.Sprintf("w%02d", i), fmt.Sprintf("m%02d", i)))
	}
	return out
}

func vocabulary(t *testing.T) []*entities.Word {
	t.Helper()
	return []*entities.Word{
		mustWord(t, "abandon", "ত্যাগ করা"),
		mustWord(t, "ability", "সামর্থ্য"),
		mustWord(t, "brave", "সাহসী"),
		mustWord(t, "calm", "শান্ত"),
		mustWord(t, "skill", "দক্ষতা"),
		mustWord(t, "talent", "প্রতিভা"),
	}
}

type fixture struct {
	words     *repository.WordRepository
	store     *storage.IDSetStore
	stats     *storage.StatsStore
	learned   *LearnedService
	rotation  *RotationTracker
	generator *QuestionGenerator
	quiz      *QuizService
	progress  *ProgressService
	browser   *WordService
}

func newFixture(t *testing.T, words ...*entities.Word) *fixture {
	t.Helper()

	logger := zap.NewNop()
	f := &fixture{
		words: mustRepo(t, words...),
		store: storage.NewIDSetStore(),
		stats: storage.NewStatsStore(),
	}

	f.learned = NewLearnedService(f.store, f.words, logger)
	f.rotation = NewRotationTracker(f.store, DefaultRotationBuffer, logger)
	f.rotation.rng = rand.New(rand.NewSource(1))
	f.generator = NewQuestionGenerator(logger)
	f.generator.rng = rand.New(rand.NewSource(2))
	f.quiz = NewQuizService(f.words, f.learned, f.rotation, f.generator, DefaultQuestionCount, logger)
	f.quiz.rng = rand.New(rand.NewSource(3))
	f.progress = NewProgressService(f.stats, f.learned, f.rotation, f.words, logger)
	f.browser = NewWordService(f.words, f.learned, logger)

	return f
}

func (f *fixture) markLearned(t *testing.T, userID int64, ids ...string) {
	t.Helper()
	for _, id := range ids {
		if _, err := f.learned.Mark(context.Background(), userID, id); err != nil {
			t.Fatalf("mark %q: %v", id, err)
		}
	}
}

func wordIDs(words []*entities.Word) []string {
	ids := make([]string, 0, len(words))
	for _, w := range words {
		ids = append(ids, w.ID)
	}
	return ids
}
