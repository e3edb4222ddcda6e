package test

import (
	"context"
	"sync"

	"github.com/polkiloo/orderdesk/internal/broadcast"
)

// PublisherStub records broadcast events.
type PublisherStub struct {
	mu     sync.Mutex
	events []broadcast.Event
}

// Broadcast stores the event.
func (p *PublisherStub) Broadcast(_ context.Context, e broadcast.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

// Events returns a copy of recorded events.
func (p *PublisherStub) Events() []broadcast.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]broadcast.Event(nil), p.events...)
}

// Types returns recorded event types in order.
func (p *PublisherStub) Types() []broadcast.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]broadcast.EventType, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

// Reset forgets recorded events.
func (p *PublisherStub) Reset() {
	p.mu.Lock()
	p.events = nil
	p.mu.Unlock()
}

var _ broadcast.Publisher = (*PublisherStub)(nil)
