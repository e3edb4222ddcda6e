package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// RetentionFacade exposes the subset of application functionality required by the sweeper.
type RetentionFacade interface {
	SweepExpiredOrders(ctx context.Context) (int, error)
}

// RetentionSweeper periodically removes orders older than the retention window.
type RetentionSweeper struct {
	facade   RetentionFacade
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewRetentionSweeper constructs the sweeper.
func NewRetentionSweeper(facade RetentionFacade, interval time.Duration, logger *slog.Logger) *RetentionSweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &RetentionSweeper{facade: facade, interval: interval, logger: logger}
}

// Start launches the sweep loop. Calling Start on a running sweeper is a no-op.
func (s *RetentionSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(runCtx)
}

// Stop cancels the loop and waits for an in-flight sweep to finish.
func (s *RetentionSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *RetentionSweeper) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *RetentionSweeper) sweep(ctx context.Context) {
	n, err := s.facade.SweepExpiredOrders(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Error("retention sweep failed", slog.String("error", err.Error()))
		}
		return
	}
	s.logger.Debug("retention sweep finished", slog.Int("removed", n))
}
