package service

import (
	"context"
	"errors"
	"testing"
)

func TestWordService_CardClamps(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, vocabulary(t)...)

	tests := []struct {
		name      string
		index     int
		wantIndex int
		wantID    string
	}{
		{"first", 0, 0, "abandon"},
		{"middle", 2, 2, "brave"},
		{"before start", -3, 0, "abandon"},
		{"past end", 40, 5, "talent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := f.browser.Card(ctx, 1, FilterAll, tt.index)
			if err != nil {
				t.Fatalf("card: %v", err)
			}
			if card.Index != tt.wantIndex || card.Word.ID != tt.wantID {
				t.Errorf("expected %s at %d, got %s at %d", tt.wantID, tt.wantIndex, card.Word.ID, card.Index)
			}
			if card.Total != 6 {
				t.Errorf("expected total 6, got %d", card.Total)
			}
		})
	}
}

func TestWordService_Paging(t *testing.T) {
	f := newFixture(t, vocabulary(t)...)

	first, _ := f.browser.Card(context.Background(), 1, FilterAll, 0)
	if first.HasPrev() || !first.HasNext() {
		t.Errorf("unexpected paging on first card: prev=%v next=%v", first.HasPrev(), first.HasNext())
	}

	last, _ := f.browser.Card(context.Background(), 1, FilterAll, 5)
	if !last.HasPrev() || last.HasNext() {
		t.Errorf("unexpected paging on last card: prev=%v next=%v", last.HasPrev(), last.HasNext())
	}
}

func TestWordService_EmptyLearnedFilter(t *testing.T) {
	f := newFixture(t, vocabulary(t)...)

	_, err := f.browser.Card(context.Background(), 1, FilterLearned, 0)
	if !errors.Is(err, ErrNoWords) {
		t.Fatalf("expected ErrNoWords, got %v", err)
	}
}

func TestWordService_ToggleInAllFilter(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, vocabulary(t)...)

	card, err := f.browser.ToggleLearned(ctx, 1, FilterAll, 1)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if card.Word.ID != "ability" || !card.Learned {
		t.Errorf("expected ability to become learned, got %s learned=%v", card.Word.ID, card.Learned)
	}

	card, _ = f.browser.ToggleLearned(ctx, 1, FilterAll, 1)
	if card.Learned || card.Index != 1 {
		t.Errorf("expected ability unmarked at index 1, got %+v", card)
	}
}

func TestWordService_ToggleInLearnedFilter(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, vocabulary(t)...)
	f.markLearned(t, 1, "abandon", "skill", "talent")

	// unmarking the last learned word moves to the new last one
	card, err := f.browser.ToggleLearned(ctx, 1, FilterLearned, 2)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if card.Word.ID != "skill" || card.Index != 1 || card.Total != 2 {
		t.Errorf("expected skill at 1 of 2, got %s at %d of %d", card.Word.ID, card.Index, card.Total)
	}

	// unmarking the first one shows its successor at the same index
	card, _ = f.browser.ToggleLearned(ctx, 1, FilterLearned, 0)
	if card.Word.ID != "skill" || card.Index != 0 || card.Total != 1 {
		t.Errorf("expected skill at 0 of 1, got %s at %d of %d", card.Word.ID, card.Index, card.Total)
	}

	if _, err := f.browser.ToggleLearned(ctx, 1, FilterLearned, 0); !errors.Is(err, ErrNoWords) {
		t.Errorf("expected ErrNoWords once the list is empty, got %v", err)
	}
}

func TestParseFilter(t *testing.T) {
	if ParseFilter("learned") != FilterLearned {
		t.Error("expected learned filter")
	}
	if ParseFilter("bogus") != FilterAll {
		t.Error("expected unknown filter to fall back to all")
	}
}

func TestWordService_RandomCard(t *testing.T) {
	f := newFixture(t, vocabulary(t)...)

	for i := 0; i < 10; i++ {
		card, err := f.browser.RandomCard(context.Background(), 1)
		if err != nil {
			t.Fatalf("random card: %v", err)
		}
		if card.Filter != FilterAll || f.words.GetAll()[card.Index] != card.Word {
			t.Errorf("expected card index to point at the word, got %s at %d", card.Word.ID, card.Index)
		}
	}
}
