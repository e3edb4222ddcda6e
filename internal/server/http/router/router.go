package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/server/http/handlers"
	"github.com/polkiloo/orderdesk/internal/server/http/middleware"
)

// Options tunes router construction.
type Options struct {
	PingInterval time.Duration
}

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.OrderDeskFacade, hub handlers.LiveHub, opts Options, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))

	authRequired := middleware.AuthRequired(facade)

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	pauseHandler := handlers.NewPauseHandler(facade)
	analyticsHandler := handlers.NewAnalyticsHandler(facade)
	liveHandler := handlers.NewLiveHandler(hub, opts.PingInterval, logger)

	engine.GET("/ws", authRequired, liveHandler.Serve)

	api := engine.Group("/api")
	api.Use(middleware.DecompressRequest())
	api.Use(gzip.Gzip(gzip.DefaultCompression))

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authRequired, authHandler.Me)

	api.GET("/menu-categories", catalogHandler.Categories)
	api.GET("/menu-items", catalogHandler.MenuItems)
	api.GET("/tables", catalogHandler.Tables)
	api.GET("/tables/:number", catalogHandler.TableByNumber)
	api.POST("/orders", orderHandler.Place)
	api.GET("/order-pause/:serviceType", pauseHandler.Status)

	staff := api.Group("")
	staff.Use(authRequired)

	staff.POST("/menu-categories", catalogHandler.CreateCategory)
	staff.PUT("/menu-categories/:id", catalogHandler.UpdateCategory)
	staff.DELETE("/menu-categories/:id", catalogHandler.DeleteCategory)

	staff.POST("/menu-items", catalogHandler.CreateMenuItem)
	staff.PUT("/menu-items/:id", catalogHandler.UpdateMenuItem)
	staff.DELETE("/menu-items/:id", catalogHandler.DeleteMenuItem)

	staff.POST("/tables", catalogHandler.CreateTable)
	staff.PUT("/tables/:id", catalogHandler.UpdateTable)
	staff.DELETE("/tables/:id", catalogHandler.DeleteTable)

	staff.GET("/orders", orderHandler.List)
	staff.POST("/orders/reset", orderHandler.Reset)
	staff.GET("/orders/:id/items", orderHandler.Items)
	staff.PUT("/orders/:id", orderHandler.UpdateStatus)
	staff.PUT("/orders/:id/payment", orderHandler.UpdatePayment)
	staff.PUT("/orders/:id/cancel", orderHandler.Cancel)

	staff.POST("/order-pause", pauseHandler.Set)

	staff.GET("/analytics", analyticsHandler.Sales)
	staff.GET("/analytics/payments", analyticsHandler.Payments)
	staff.GET("/dashboard/stats", analyticsHandler.Dashboard)

	return engine
}
