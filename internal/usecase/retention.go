package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/polkiloo/orderdesk/internal/domain/repository"
	"github.com/polkiloo/orderdesk/internal/pkg/clock"
)

// RetentionUseCase drops orders older than the rolling window.
type RetentionUseCase struct {
	orders repository.OrderRepository
	clock  clock.Clock
	window time.Duration
	logger *slog.Logger
}

// NewRetentionUseCase constructs RetentionUseCase.
func NewRetentionUseCase(orders repository.OrderRepository, clk clock.Clock, window time.Duration, logger *slog.Logger) *RetentionUseCase {
	return &RetentionUseCase{orders: orders, clock: clk, window: window, logger: logger}
}

// Sweep deletes orders created before now minus the window.
func (u *RetentionUseCase) Sweep(ctx context.Context) (int, error) {
	cutoff := u.clock.Now().Add(-u.window)
	n, err := u.orders.DeleteCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		u.logger.Info("expired orders removed", slog.Int("count", n), slog.Time("cutoff", cutoff))
	}
	return n, nil
}
