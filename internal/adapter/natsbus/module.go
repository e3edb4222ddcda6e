package natsbus

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/broadcast"
	"github.com/polkiloo/orderdesk/internal/config"
)

// Module provides the optional broadcast mirror. It yields a nil mirror when NATS is not configured.
var Module = fx.Provide(newMirror)

type mirrorParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newMirror(p mirrorParams) (broadcast.Mirror, error) {
	if p.Config.NATSURL == "" {
		return nil, nil
	}

	pub, err := Connect(p.Config.NATSURL, p.Logger)
	if err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return pub.Close()
		},
	})
	p.Logger.Info("mirroring live events to nats", slog.String("url", p.Config.NATSURL))
	return pub, nil
}
