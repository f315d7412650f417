// Package scheduler wires the cron job that periodically re-runs the
// crawl. Overlapping runs against the same store are safe: dedup is
// enforced by the store itself, so the scheduler does no locking.
package scheduler

import (
	"context"
	"fmt"

	"jobscout/internal/logger"
	"jobscout/internal/scraper"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Scheduler struct {
	cron   *cron.Cron
	runner *scraper.Runner
	spec   string
	log    *zap.Logger
}

// New fires the crawl every intervalHours hours.
func New(runner *scraper.Runner, intervalHours int, log *zap.Logger) (*Scheduler, error) {
	if runner == nil {
		return nil, fmt.Errorf("nil runner")
	}
	if intervalHours <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %d", intervalHours)
	}
	return &Scheduler{
		cron:   cron.New(),
		runner: runner,
		spec:   fmt.Sprintf("@every %dh", intervalHours),
		log:    logger.OrNop(log),
	}, nil
}

// Start registers the job and begins ticking. One crawl also runs
// immediately so the store fills without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("register cron job: %w", err)
	}

	s.cron.Start()
	s.log.Info("scheduler started", zap.String("spec", s.spec))

	go s.runOnce(ctx)
	return nil
}

// Stop halts the ticker; an in-flight crawl finishes its current card
// before observing cancellation.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := s.runner.RunOnce(ctx); err != nil {
		s.log.Error("scheduled crawl failed", zap.Error(err))
	}
}
