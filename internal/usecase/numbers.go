package usecase

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// orderNumbers issues UPPER(channel)+epochMillis numbers that never repeat or
// go backwards within one channel.
type orderNumbers struct {
	mu   sync.Mutex
	last map[model.Channel]int64
}

func newOrderNumbers() *orderNumbers {
	return &orderNumbers{last: make(map[model.Channel]int64)}
}

func (n *orderNumbers) next(channel model.Channel, now time.Time) string {
	n.mu.Lock()
	defer n.mu.Unlock()

	ms := now.UnixMilli()
	if last := n.last[channel]; ms <= last {
		ms = last + 1
	}
	n.last[channel] = ms
	return strings.ToUpper(string(channel)) + strconv.FormatInt(ms, 10)
}
