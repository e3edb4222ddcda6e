package natsbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
)

// ErrNotConnected is returned by a publisher without a live connection.
var ErrNotConnected = errors.New("nats publisher is not connected")

// Publisher mirrors broadcast frames onto NATS subjects.
type Publisher struct {
	conn *nats.Conn
}

var connect = nats.Connect

// Connect dials the NATS server at url.
func Connect(url string, logger *slog.Logger) (*Publisher, error) {
	conn, err := connect(url,
		nats.Name("orderdesk"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", slog.Any("error", err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", slog.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return &Publisher{conn: conn}, nil
}

// Publish sends msg to subject.
func (p *Publisher) Publish(ctx context.Context, subject string, msg []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p == nil || p.conn == nil {
		return ErrNotConnected
	}
	return p.conn.Publish(subject, msg)
}

// Close flushes pending messages and closes the connection.
func (p *Publisher) Close() error {
	if p == nil || p.conn == nil {
		return nil
	}
	return p.conn.Drain()
}
