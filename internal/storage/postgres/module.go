package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
)

// Params carries what the durable backend needs from the fx graph.
type Params struct {
	Ctx       context.Context
	Lifecycle fx.Lifecycle
	DSN       string
	Logger    *slog.Logger
}

// Open connects to PostgreSQL and closes the pool when the application stops.
func Open(p Params) (*Storage, error) {
	storage, err := New(p.Ctx, p.DSN, p.Logger)
	if err != nil {
		return nil, err
	}
	registerLifecycle(p.Lifecycle, storage)
	return storage, nil
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
