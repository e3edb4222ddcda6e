package broadcast

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/config"
)

// Module wires the broadcast hub. The application lifecycle closes it on stop.
var Module = fx.Provide(
	newHub,
	func(h *Hub) Publisher { return h },
)

type hubParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Mirror Mirror `optional:"true"`
}

func newHub(p hubParams) *Hub {
	return NewHub(p.Config.WSSendBuffer, p.Mirror, p.Logger)
}
