package broadcast

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// ErrHubClosed is returned when registering on a stopped hub.
var ErrHubClosed = errors.New("broadcast hub is closed")

// Conn is a live client transport.
type Conn interface {
	Send(msg []byte) error
	Close() error
}

// Mirror receives a copy of every broadcast frame. Nil disables mirroring.
type Mirror interface {
	Publish(ctx context.Context, subject string, msg []byte) error
}

// Publisher is what the order flows use to announce changes.
type Publisher interface {
	Broadcast(ctx context.Context, e Event)
}

// SubjectPrefix prefixes mirror subjects, the event type is appended.
const SubjectPrefix = "orderdesk.events."

type client struct {
	id    string
	conn  Conn
	queue chan []byte
	once  sync.Once
}

func (c *client) stop() {
	c.once.Do(func() { close(c.queue) })
}

// Hub fans events out to every registered client in one global order.
// Each client has a bounded queue drained by its own writer; a client whose
// queue is full or whose transport fails is dropped without affecting others.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client
	seq     uint64
	closed  bool
	bufSize int
	mirror  Mirror
	logger  *slog.Logger
	wg      sync.WaitGroup
}

// NewHub creates a hub with the given per-client queue length.
func NewHub(bufSize int, mirror Mirror, logger *slog.Logger) *Hub {
	if bufSize <= 0 {
		bufSize = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients: make(map[string]*client),
		bufSize: bufSize,
		mirror:  mirror,
		logger:  logger,
	}
}

// Add registers a transport and starts its writer.
func (h *Hub) Add(conn Conn) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return "", ErrHubClosed
	}

	c := &client{id: uuid.NewString(), conn: conn, queue: make(chan []byte, h.bufSize)}
	h.clients[c.id] = c
	h.wg.Add(1)
	go h.write(c)

	h.logger.Debug("live client connected", slog.String("client", c.id), slog.Int("clients", len(h.clients)))
	return c.id, nil
}

func (h *Hub) write(c *client) {
	defer h.wg.Done()
	defer c.conn.Close()

	for msg := range c.queue {
		if err := c.conn.Send(msg); err != nil {
			h.logger.Debug("live client send failed", slog.String("client", c.id), slog.Any("error", err))
			h.Remove(c.id)
			for range c.queue {
			}
			return
		}
	}
}

// Remove unregisters a client. Unknown ids are ignored.
func (h *Hub) Remove(id string) {
	h.mu.Lock()
	c, ok := h.clients[id]
	if ok {
		delete(h.clients, id)
	}
	h.mu.Unlock()

	if ok {
		c.stop()
		h.logger.Debug("live client disconnected", slog.String("client", id))
	}
}

// Broadcast stamps the event with the next sequence number and enqueues it
// for every client. It never blocks on a client.
func (h *Hub) Broadcast(ctx context.Context, e Event) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.seq++
	msg, err := e.encode(h.seq)
	if err != nil {
		h.seq--
		h.mu.Unlock()
		h.logger.Error("encode broadcast event", slog.String("type", string(e.Type)), slog.Any("error", err))
		return
	}

	var dropped []*client
	for id, c := range h.clients {
		select {
		case c.queue <- msg:
		default:
			delete(h.clients, id)
			dropped = append(dropped, c)
		}
	}
	h.mu.Unlock()

	for _, c := range dropped {
		c.stop()
		h.logger.Warn("dropping slow live client", slog.String("client", c.id))
	}

	if h.mirror != nil {
		if err := h.mirror.Publish(ctx, SubjectPrefix+string(e.Type), msg); err != nil {
			h.logger.Warn("mirror publish failed", slog.String("type", string(e.Type)), slog.Any("error", err))
		}
	}
}

// Len reports the number of registered clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close drops every client and waits for writers to finish. Safe to call twice.
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	clients := h.clients
	h.clients = make(map[string]*client)
	h.mu.Unlock()

	for _, c := range clients {
		c.stop()
	}
	h.wg.Wait()
}
