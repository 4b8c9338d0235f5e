package serviceability

import (
	"context"
	"sync"

	"serviceability/internal/domain/entity"
)

const lockShards = 64

// keyLocker hands out one mutex per merchant id. Slots are reference counted
// and dropped once no goroutine holds or waits for them, so memory tracks
// only ids with in-flight writes.
type keyLocker struct {
	shards [lockShards]lockShard
}

type lockShard struct {
	mu    sync.Mutex
	slots map[entity.MerchantID]*lockSlot
}

type lockSlot struct {
	held chan struct{}
	refs int
}

func newKeyLocker() *keyLocker {
	locker := &keyLocker{}
	for i := range locker.shards {
		locker.shards[i].slots = make(map[entity.MerchantID]*lockSlot)
	}

	return locker
}

// Lock blocks until the caller owns id or ctx is done.
func (l *keyLocker) Lock(ctx context.Context, id entity.MerchantID) (unlock func(), err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	shard := &l.shards[uint64(id)%lockShards]

	shard.mu.Lock()
	slot, ok := shard.slots[id]
	if !ok {
		slot = &lockSlot{held: make(chan struct{}, 1)}
		shard.slots[id] = slot
	}
	slot.refs++
	shard.mu.Unlock()

	select {
	case slot.held <- struct{}{}:
		return func() {
			<-slot.held
			shard.release(id, slot)
		}, nil
	case <-ctx.Done():
		shard.release(id, slot)

		return nil, ctx.Err()
	}
}

func (s *lockShard) release(id entity.MerchantID, slot *lockSlot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot.refs--
	if slot.refs == 0 {
		delete(s.slots, id)
	}
}

// inFlight returns the number of ids with a live slot.
func (l *keyLocker) inFlight() int {
	total := 0
	for i := range l.shards {
		shard := &l.shards[i]
		shard.mu.Lock()
		total += len(shard.slots)
		shard.mu.Unlock()
	}

	return total
}
