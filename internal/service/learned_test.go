package service

import (
	"context"
	"errors"
	"slices"
	"testing"

	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-master/internal/repository"
)

func TestLearnedService_MarkUnmarkToggle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, vocabulary(t)...)

	changed, err := f.learned.Mark(ctx, 1, "skill")
	if err != nil || !changed {
		t.Fatalf("expected mark to change the set, got %v, %v", changed, err)
	}
	if changed, _ := f.learned.Mark(ctx, 1, "skill"); changed {
		t.Error("expected second mark to be a no-op")
	}
	if !f.learned.IsLearned(ctx, 1, "skill") {
		t.Error("expected skill to be learned")
	}
	if f.learned.IsLearned(ctx, 2, "skill") {
		t.Error("expected learned sets to be per user")
	}

	learned, err := f.learned.Toggle(ctx, 1, "skill")
	if err != nil || learned {
		t.Fatalf("expected toggle to unmark, got %v, %v", learned, err)
	}
	learned, err = f.learned.Toggle(ctx, 1, "skill")
	if err != nil || !learned {
		t.Fatalf("expected toggle to mark, got %v, %v", learned, err)
	}

	if !f.learned.Unmark(ctx, 1, "skill") {
		t.Error("expected unmark to change the set")
	}
	if f.learned.Unmark(ctx, 1, "skill") {
		t.Error("expected second unmark to be a no-op")
	}
}

func TestLearnedService_MarkUnknownWord(t *testing.T) {
	f := newFixture(t, vocabulary(t)...)

	_, err := f.learned.Mark(context.Background(), 1, "zebra")
	if !errors.Is(err, repository.ErrWordNotFound) {
		t.Fatalf("expected ErrWordNotFound, got %v", err)
	}
	if f.learned.Count(context.Background(), 1) != 0 {
		t.Error("expected nothing learned")
	}
}

func TestLearnedService_WordsInDatasetOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, vocabulary(t)...)
	f.markLearned(t, 1, "talent", "abandon", "calm")

	// ids that left the dataset are skipped
	_ = f.store.Save(ctx, 1, KeyLearnedWords, []string{"talent", "abandon", "calm", "gone"})

	got := wordIDs(f.learned.Words(ctx, 1))
	want := []string{"abandon", "calm", "talent"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if n := f.learned.Count(ctx, 1); n != 3 {
		t.Errorf("expected count 3, got %d", n)
	}
}

func TestLearnedService_Search(t *testing.T) {
	f := newFixture(t, vocabulary(t)...)
	f.markLearned(t, 1, "abandon", "ability", "skill", "talent")

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query returns all", "  ", []string{"abandon", "ability", "skill", "talent"}},
		{"by headword prefix", "AB", []string{"abandon", "ability"}},
		{"by meaning", "দক্ষ", []string{"skill"}},
		{"unlearned words are not searched", "brave", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wordIDs(f.learned.Search(context.Background(), 1, tt.query))
			if !slices.Equal(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLearnedService_Reset(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, vocabulary(t)...)
	f.markLearned(t, 1, "abandon", "skill")

	f.learned.Reset(ctx, 1)

	if n := f.learned.Count(ctx, 1); n != 0 {
		t.Errorf("expected empty set after reset, got %d", n)
	}
}

func TestLearnedService_StoreFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	s := NewLearnedService(failingStore{}, mustRepo(t, vocabulary(t)...), zap.NewNop())

	if set := s.Load(ctx, 1); len(set) != 0 {
		t.Errorf("expected empty set, got %v", set)
	}
	if _, err := s.Mark(ctx, 1, "skill"); err != nil {
		t.Errorf("expected store failure to be swallowed, got %v", err)
	}
	s.Reset(ctx, 1)
}
