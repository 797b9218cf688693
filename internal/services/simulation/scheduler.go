package simulation

import (
	"context"
	"log/slog"
	"time"
)

// DefaultTickInterval is the nominal simulation period.
const DefaultTickInterval = time.Second

// Scheduler drives the simulation at a fixed interval. Stopping is
// "stop scheduling": cancelling the context ends the loop after any
// in-flight tick completes.
type Scheduler struct {
	interval time.Duration
	sim      *Service
	logger   *slog.Logger
}

// NewScheduler creates a scheduler ticking at the given interval.
// A non-positive interval falls back to DefaultTickInterval.
func NewScheduler(interval time.Duration, sim *Service, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Scheduler{
		interval: interval,
		sim:      sim,
		logger:   logger,
	}
}

// Run ticks until ctx is cancelled. It blocks; run it on its own goroutine.
func (s *Scheduler) Run(ctx context.Context) {
	s.logger.Info("tick scheduler started", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	delta := s.interval.Seconds()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("tick scheduler stopped")
			return
		case <-ticker.C:
			if err := s.sim.Tick(ctx, delta); err != nil {
				s.logger.Error("game tick failed", slog.String("error", err.Error()))
			}
		}
	}
}
