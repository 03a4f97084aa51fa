package service

import (
	"context"
	"math/rand"
	"testing"

	"go.uber.org/zap"
)

func TestSelectBatch_ResetsWhenBufferReached(t *testing.T) {
	pool := numberedWords(t, 10)
	used := map[string]struct{}{}
	for _, w := range pool[:6] {
		used[w.ID] = struct{}{}
	}

	selected, next := selectBatch(rand.New(rand.NewSource(1)), used, pool, 10, 5)

	if len(selected) != 10 {
		t.Fatalf("expected full batch of 10, got %d", len(selected))
	}
	if len(next) != 10 {
		t.Errorf("expected used set to hold only the new batch, got %d ids", len(next))
	}
}

func TestSelectBatch_IgnoresIDsMissingFromPool(t *testing.T) {
	pool := numberedWords(t, 20)
	used := map[string]struct{}{}
	for _, w := range pool[:10] {
		used[w.ID] = struct{}{}
	}
	for _, id := range []string{"gone-1", "gone-2", "gone-3", "gone-4", "gone-5"} {
		used[id] = struct{}{}
	}

	selected, next := selectBatch(rand.New(rand.NewSource(3)), used, pool, 10, 5)

	if len(selected) != 10 {
		t.Fatalf("expected batch of 10, got %d", len(selected))
	}
	for _, w := range selected {
		for _, old := range pool[:10] {
			if w.ID == old.ID {
				t.Errorf("word %q repeated while 10 fresh words remained", w.ID)
			}
		}
	}
	if _, ok := next["gone-1"]; ok {
		t.Error("expected ids missing from the pool to be dropped")
	}
	if len(next) != 20 {
		t.Errorf("expected 20 used ids, got %d", len(next))
	}
}

func TestSelectBatch_NoRepeatsWithinRotation(t *testing.T) {
	pool := numberedWords(t, 20)
	rng := rand.New(rand.NewSource(7))

	first, used := selectBatch(rng, map[string]struct{}{}, pool, 10, 5)
	second, used := selectBatch(rng, used, pool, 10, 5)

	if len(first) != 10 || len(second) != 10 {
		t.Fatalf("expected two batches of 10, got %d and %d", len(first), len(second))
	}

	seen := map[string]struct{}{}
	for _, w := range first {
		seen[w.ID] = struct{}{}
	}
	for _, w := range second {
		if _, ok := seen[w.ID]; ok {
			t.Errorf("word %q repeated before the rotation was exhausted", w.ID)
		}
	}
	if len(used) != 20 {
		t.Errorf("expected 20 used ids, got %d", len(used))
	}

	third, used := selectBatch(rng, used, pool, 10, 5)
	if len(third) != 10 || len(used) != 10 {
		t.Errorf("expected a fresh rotation, got batch %d used %d", len(third), len(used))
	}
}

func TestSelectBatch_NeverShort(t *testing.T) {
	tests := []struct {
		name      string
		poolSize  int
		requested int
		want      int
	}{
		{"pool equals request", 10, 10, 10},
		{"pool slightly larger", 12, 10, 10},
		{"pool far larger", 50, 10, 10},
		{"pool smaller than request", 3, 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := numberedWords(t, tt.poolSize)
			rng := rand.New(rand.NewSource(11))
			used := map[string]struct{}{}

			for i := 0; i < 8; i++ {
				selected, next := selectBatch(rng, used, pool, tt.requested, 5)
				used = next
				if len(selected) != tt.want {
					t.Fatalf("call %d: expected %d words, got %d", i, tt.want, len(selected))
				}

				ids := map[string]struct{}{}
				for _, w := range selected {
					if _, dup := ids[w.ID]; dup {
						t.Fatalf("call %d: word %q drawn twice", i, w.ID)
					}
					ids[w.ID] = struct{}{}
				}
			}
		})
	}
}

func TestRotationTracker_PersistsAndResets(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, numberedWords(t, 30)...)

	batch := f.rotation.SelectBatch(ctx, 1, f.words.GetAll(), 10)
	if len(batch) != 10 {
		t.Fatalf("expected 10 words, got %d", len(batch))
	}

	used := f.rotation.Used(ctx, 1)
	if len(used) != 10 {
		t.Fatalf("expected 10 persisted ids, got %d", len(used))
	}
	for _, w := range batch {
		if _, ok := used[w.ID]; !ok {
			t.Errorf("selected word %q not persisted", w.ID)
		}
	}

	if other := f.rotation.Used(ctx, 2); len(other) != 0 {
		t.Errorf("expected rotation of another user to be empty, got %d", len(other))
	}

	f.rotation.Reset(ctx, 1)
	if used := f.rotation.Used(ctx, 1); len(used) != 0 {
		t.Errorf("expected empty rotation after reset, got %d", len(used))
	}
}

func TestRotationTracker_StoreFailureIsNotFatal(t *testing.T) {
	tracker := NewRotationTracker(failingStore{}, DefaultRotationBuffer, zap.NewNop())

	batch := tracker.SelectBatch(context.Background(), 1, numberedWords(t, 12), 10)
	if len(batch) != 10 {
		t.Errorf("expected a batch despite store failures, got %d", len(batch))
	}
}

func TestNewRotationTracker_NegativeBuffer(t *testing.T) {
	tracker := NewRotationTracker(failingStore{}, -1, zap.NewNop())
	if tracker.buffer != DefaultRotationBuffer {
		t.Errorf("expected default buffer, got %d", tracker.buffer)
	}
}
