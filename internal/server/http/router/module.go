package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/app"
	"github.com/polkiloo/orderdesk/internal/broadcast"
	"github.com/polkiloo/orderdesk/internal/config"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(newEngine)

type engineParams struct {
	fx.In

	Facade *app.OrderDeskFacade
	Hub    *broadcast.Hub
	Config *config.Config
	Logger *slog.Logger
}

func newEngine(p engineParams) *gin.Engine {
	return Setup(p.Facade, p.Hub, Options{PingInterval: p.Config.WSPingInterval}, p.Logger)
}
