package usecase

import "sync"

const stripeCount = 64

// stripedLock serializes work per key without a lock per entity.
type stripedLock struct {
	stripes [stripeCount]sync.Mutex
}

func (s *stripedLock) lock(key int64) func() {
	m := &s.stripes[uint64(key)%stripeCount]
	m.Lock()
	return m.Unlock
}
