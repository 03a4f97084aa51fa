package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper drops entries idle for longer than the given duration.
type Sweeper interface {
	Sweep(idle time.Duration) int
}

// ExamJanitor periodically evicts abandoned exams.
type ExamJanitor struct {
	exams    Sweeper
	idleTTL  time.Duration
	interval time.Duration
	logger   *zap.Logger
}

func NewExamJanitor(exams Sweeper, idleTTL, interval time.Duration, logger *zap.Logger) *ExamJanitor {
	return &ExamJanitor{
		exams:    exams,
		idleTTL:  idleTTL,
		interval: interval,
		logger:   logger,
	}
}

// Start runs the sweep schedule until ctx is cancelled.
func (j *ExamJanitor) Start(ctx context.Context) {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(fmt.Sprintf("@every %s", j.interval), j.sweep)
	if err != nil {
		j.logger.Error("failed to add cron job", zap.Error(err))
		return
	}

	c.Start()
	j.logger.Info("exam janitor started",
		zap.Duration("interval", j.interval),
		zap.Duration("idle_ttl", j.idleTTL),
	)

	<-ctx.Done()

	<-c.Stop().Done()
	j.logger.Info("exam janitor stopped")
}

func (j *ExamJanitor) sweep() {
	if n := j.exams.Sweep(j.idleTTL); n > 0 {
		j.logger.Info("abandoned exams evicted", zap.Int("count", n))
	}
}
