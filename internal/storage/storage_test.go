package storage

import (
	"context"
	"testing"
	"time"
)

func TestIDSetStore_RoundTripIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewIDSetStore()

	ids, err := s.Load(ctx, 1, "learned_words")
	if err != nil || ids != nil {
		t.Fatalf("expected empty load, got %v, %v", ids, err)
	}

	in := []string{"abandon", "skill"}
	if err := s.Save(ctx, 1, "learned_words", in); err != nil {
		t.Fatalf("save: %v", err)
	}
	in[0] = "mutated"

	got, _ := s.Load(ctx, 1, "learned_words")
	if len(got) != 2 || got[0] != "abandon" {
		t.Errorf("expected stored copy, got %v", got)
	}

	if other, _ := s.Load(ctx, 2, "learned_words"); other != nil {
		t.Errorf("expected users to be isolated, got %v", other)
	}
	if other, _ := s.Load(ctx, 1, "used_exam_words"); other != nil {
		t.Errorf("expected keys to be isolated, got %v", other)
	}

	if err := s.Delete(ctx, 1, "learned_words"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, _ := s.Load(ctx, 1, "learned_words"); got != nil {
		t.Errorf("expected nothing after delete, got %v", got)
	}
}

func TestStatsStore(t *testing.T) {
	ctx := context.Background()
	s := NewStatsStore()

	_ = s.RecordAttempt(ctx, 7, 8, 10)
	_ = s.RecordAttempt(ctx, 7, 3, 4)

	st, err := s.Get(ctx, 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if st.Attempts != 2 || st.CorrectAnswers != 11 || st.TotalAnswers != 14 {
		t.Errorf("unexpected stats %+v", st)
	}

	_ = s.Reset(ctx, 7)
	if st, _ := s.Get(ctx, 7); st.Attempts != 0 {
		t.Errorf("expected reset stats, got %+v", st)
	}
}

func TestExamStorage_Sweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewExamStorage[int64, string]()
	s.now = func() time.Time { return now }

	s.Store(1, "old")
	now = now.Add(20 * time.Minute)
	s.Store(2, "fresh")
	now = now.Add(15 * time.Minute)

	if removed := s.Sweep(30 * time.Minute); removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
	if _, ok := s.Get(1); ok {
		t.Error("expected idle exam to be swept")
	}
	if v, ok := s.Get(2); !ok || v != "fresh" {
		t.Errorf("expected fresh exam to stay, got %q %v", v, ok)
	}
}

func TestExamStorage_GetRefreshes(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewExamStorage[int64, int]()
	s.now = func() time.Time { return now }

	s.Store(1, 10)
	now = now.Add(25 * time.Minute)
	s.Get(1)
	now = now.Add(25 * time.Minute)

	if removed := s.Sweep(30 * time.Minute); removed != 0 {
		t.Errorf("expected touched exam to survive, removed %d", removed)
	}

	s.Delete(1)
	if s.Len() != 0 {
		t.Errorf("expected empty storage, got %d", s.Len())
	}
}
