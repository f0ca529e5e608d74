// Package scheduler re-runs leaderboard refreshes on a fixed interval.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/okian/tierboard/pkg/logger"
)

// ErrInvalidInterval is returned by New for a non-positive interval.
var ErrInvalidInterval = errors.New("refresh interval must be positive")

// Refresher performs one cache-bypassing reload. *service.Service satisfies it.
type Refresher interface {
	RefreshLeaderboard(ctx context.Context)
}

// Scheduler calls Refresh every interval until stopped.
// Ticks that arrive while a refresh is still running are dropped.
type Scheduler struct {
	refresher Refresher
	interval  time.Duration
	name      string

	// Shutdown control
	once     sync.Once
	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// New creates a scheduler for r.
func New(r Refresher, interval time.Duration, opts ...Option) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInterval, interval)
	}
	s := &Scheduler{
		refresher: r,
		interval:  interval,
		name:      "scheduler",
		shutdown:  make(chan struct{}),
		done:      make(chan struct{}),
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named(s.name)
	return s, nil
}

// Run blocks, refreshing on every tick until ctx is cancelled or Shutdown is called.
func (s *Scheduler) Run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info(ctx, "refresh scheduler started", logger.Duration("interval", s.interval))
	defer s.logger.Info(ctx, "refresh scheduler stopped")
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.shutdown:
			return
		case <-ticker.C:
			start := time.Now()
			s.refresher.RefreshLeaderboard(ctx)
			s.logger.Debug(ctx, "scheduled refresh finished", logger.Duration("took", time.Since(start)))
		}
	}
}

// Shutdown stops Run and waits for an in-flight refresh to finish.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	s.once.Do(func() { close(s.shutdown) })

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		s.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}
