package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/config"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
	"github.com/polkiloo/orderdesk/internal/pkg/clock"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewCatalogUseCase,
	NewSeedUseCase,
	NewOrderUseCase,
	NewPauseUseCase,
	func(u *PauseUseCase) Admitter { return u },
	newRetentionUseCase,
	func(u *RetentionUseCase) Sweeper { return u },
	newAnalyticsUseCase,
)

type retentionParams struct {
	fx.In

	Orders repository.OrderRepository
	Clock  clock.Clock
	Config *config.Config
	Logger *slog.Logger
}

func newRetentionUseCase(p retentionParams) *RetentionUseCase {
	return NewRetentionUseCase(p.Orders, p.Clock, p.Config.RetentionWindow, p.Logger)
}

type analyticsParams struct {
	fx.In

	Orders    repository.OrderRepository
	Tables    repository.TableRepository
	Menu      repository.MenuItemRepository
	Retention Sweeper
	Clock     clock.Clock
	Config    *config.Config
}

func newAnalyticsUseCase(p analyticsParams) *AnalyticsUseCase {
	return NewAnalyticsUseCase(p.Orders, p.Tables, p.Menu, p.Retention, p.Clock, p.Config.BusinessOffset)
}
