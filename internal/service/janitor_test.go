package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

type countingSweeper struct {
	calls atomic.Int32
	idle  atomic.Int64
}

func (s *countingSweeper) Sweep(idle time.Duration) int {
	s.calls.Add(1)
	s.idle.Store(int64(idle))
	return 2
}

func TestExamJanitor_Sweep(t *testing.T) {
	sw := &countingSweeper{}
	j := NewExamJanitor(sw, 30*time.Minute, time.Minute, zap.NewNop())

	j.sweep()

	if sw.calls.Load() != 1 {
		t.Fatalf("expected one sweep, got %d", sw.calls.Load())
	}
	if time.Duration(sw.idle.Load()) != 30*time.Minute {
		t.Errorf("expected idle ttl 30m, got %v", time.Duration(sw.idle.Load()))
	}
}

func TestExamJanitor_StopsOnCancel(t *testing.T) {
	j := NewExamJanitor(&countingSweeper{}, time.Minute, time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		j.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop after cancel")
	}
}
