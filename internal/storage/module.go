package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/config"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
	"github.com/polkiloo/orderdesk/internal/pkg/clock"
	"github.com/polkiloo/orderdesk/internal/storage/memory"
	"github.com/polkiloo/orderdesk/internal/storage/postgres"
)

// Module selects the storage backend and exposes its repositories.
var Module = fx.Options(
	fx.Provide(newFactory),
	fx.Provide(
		func(f repository.Factory) repository.UserRepository { return f.Users() },
		func(f repository.Factory) repository.CategoryRepository { return f.Categories() },
		func(f repository.Factory) repository.MenuItemRepository { return f.MenuItems() },
		func(f repository.Factory) repository.TableRepository { return f.Tables() },
		func(f repository.Factory) repository.OrderRepository { return f.Orders() },
		func(f repository.Factory) repository.PauseRepository { return f.Pauses() },
	),
)

type factoryParams struct {
	fx.In

	Ctx       context.Context
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	Clock     clock.Clock
}

var openPostgres = func(p postgres.Params) (repository.Factory, error) {
	return postgres.Open(p)
}

func newFactory(p factoryParams) (repository.Factory, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Info("using in-memory storage")
		return memory.New(p.Clock), nil
	}
	p.Logger.Info("using postgres storage")
	return openPostgres(postgres.Params{
		Ctx:       p.Ctx,
		Lifecycle: p.Lifecycle,
		DSN:       p.Config.DatabaseURI,
		Logger:    p.Logger,
	})
}
