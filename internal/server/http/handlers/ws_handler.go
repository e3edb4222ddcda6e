package handlers

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/polkiloo/orderdesk/internal/broadcast"
)

const (
	wsWriteWait    = 10 * time.Second
	wsMaxFrameSize = 4096
)

// LiveHub registers live connections for event fan-out.
type LiveHub interface {
	Add(conn broadcast.Conn) (string, error)
	Remove(id string)
}

// wsConn adapts a websocket connection to the hub transport. Send is only
// called from the hub's writer goroutine for this connection.
type wsConn struct {
	ws *websocket.Conn
}

func (c *wsConn) Send(msg []byte) error {
	if err := c.ws.SetWriteDeadline(time.Now().Add(wsWriteWait)); err != nil {
		return err
	}
	return c.ws.WriteMessage(websocket.TextMessage, msg)
}

func (c *wsConn) Close() error {
	return c.ws.Close()
}

// LiveHandler upgrades staff connections and attaches them to the hub.
type LiveHandler struct {
	hub          LiveHub
	upgrader     websocket.Upgrader
	pingInterval time.Duration
	logger       *slog.Logger
}

// NewLiveHandler constructs LiveHandler.
func NewLiveHandler(hub LiveHub, pingInterval time.Duration, logger *slog.Logger) *LiveHandler {
	if pingInterval <= 0 {
		pingInterval = 30 * time.Second
	}
	return &LiveHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		pingInterval: pingInterval,
		logger:       logger,
	}
}

// Serve handles GET /ws. Inbound frames are read and discarded so that
// control frames are processed and a closed peer is detected.
func (h *LiveHandler) Serve(c *gin.Context) {
	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", slog.Any("error", err))
		return
	}

	id, err := h.hub.Add(&wsConn{ws: ws})
	if err != nil {
		_ = ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(wsWriteWait))
		_ = ws.Close()
		return
	}
	defer h.hub.Remove(id)

	done := make(chan struct{})
	defer close(done)
	go h.ping(ws, done)

	readWait := 2 * h.pingInterval
	ws.SetReadLimit(wsMaxFrameSize)
	_ = ws.SetReadDeadline(time.Now().Add(readWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(readWait))
	})

	for {
		if _, _, err := ws.NextReader(); err != nil {
			return
		}
	}
}

func (h *LiveHandler) ping(ws *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return
			}
		}
	}
}
